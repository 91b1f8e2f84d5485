// Package http exposes the dispatch use cases over a REST API.
// Handlers translate JSON payloads into commands and queries, and domain
// errors into HTTP status codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Error is the JSON error payload returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCourierRequest is the payload for POST /couriers.
type CreateCourierRequest struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int    `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// Courier is the courier profile representation returned by the API.
type Courier struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int    `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// PatchCourierRequest is the payload for PATCH /couriers/:id.
// Absent fields leave the profile unchanged.
type PatchCourierRequest struct {
	CourierType  *string  `json:"courier_type,omitempty"`
	Regions      []int    `json:"regions,omitempty"`
	WorkingHours []string `json:"working_hours,omitempty"`
}

// PatchCourierResponse carries the updated profile and the orders returned
// to the pool by the edit.
type PatchCourierResponse struct {
	Courier
	UnassignedOrderIDs []int64 `json:"unassigned_order_ids"`
}

// CourierStats is the payload for GET /couriers/:id/stats.
type CourierStats struct {
	Rating   float64 `json:"rating"`
	Earnings int64   `json:"earnings"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int      `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

// Order is the order representation returned by the API.
type Order struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int      `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

// AssignOrdersRequest is the payload for POST /orders/assign.
type AssignOrdersRequest struct {
	CourierID int64 `json:"courier_id"`
}

// AssignOrdersResponse reports one assignment batch.
type AssignOrdersResponse struct {
	CourierID  int64     `json:"courier_id"`
	OrderIDs   []int64   `json:"order_ids"`
	AssignedAt time.Time `json:"assigned_at"`
}

// CompleteOrderRequest is the payload for POST /orders/complete.
type CompleteOrderRequest struct {
	CourierID    int64     `json:"courier_id"`
	OrderID      int64     `json:"order_id"`
	CompleteTime time.Time `json:"complete_time"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createCourierHandler commands.CreateCourierCommandHandler
	updateCourierHandler commands.UpdateCourierCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	assignOrdersHandler  commands.AssignOrdersCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	getCourierHandler    queries.GetCourierQueryHandler
	getStatsHandler      queries.GetCourierStatsQueryHandler
	getUnassignedHandler queries.GetUnassignedOrdersQueryHandler

	now func() time.Time
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	updateCourierHandler commands.UpdateCourierCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrdersHandler commands.AssignOrdersCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getCourierHandler queries.GetCourierQueryHandler,
	getStatsHandler queries.GetCourierStatsQueryHandler,
	getUnassignedHandler queries.GetUnassignedOrdersQueryHandler,
) *Server {
	return &Server{
		createCourierHandler: createCourierHandler,
		updateCourierHandler: updateCourierHandler,
		createOrderHandler:   createOrderHandler,
		assignOrdersHandler:  assignOrdersHandler,
		completeOrderHandler: completeOrderHandler,
		getCourierHandler:    getCourierHandler,
		getStatsHandler:      getStatsHandler,
		getUnassignedHandler: getUnassignedHandler,
		now:                  time.Now,
	}
}

// RegisterRoutes attaches all endpoints and shared middleware to the echo
// instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	e.POST("/couriers", s.CreateCourier)
	e.GET("/couriers/:id", s.GetCourier)
	e.PATCH("/couriers/:id", s.PatchCourier)
	e.GET("/couriers/:id/stats", s.GetCourierStats)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/unassigned", s.GetUnassignedOrders)
	e.POST("/orders/assign", s.AssignOrders)
	e.POST("/orders/complete", s.CompleteOrder)
}

// CreateCourier handles POST /couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var request CreateCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	class, err := courier.ClassFromString(request.CourierType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	workingHours, err := kernel.NewSchedule(request.WorkingHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateCourierCommand(request.CourierID, class, request.Regions, workingHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCourier handles GET /couriers/:id.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	profile, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Courier{
		CourierID:    profile.ID,
		CourierType:  profile.CourierType,
		Regions:      profile.Regions,
		WorkingHours: profile.WorkingHours,
	})
}

// PatchCourier handles PATCH /couriers/:id.
// Each present field is applied to the profile; orders the courier no
// longer qualifies for are returned to the pool.
func (s *Server) PatchCourier(ctx echo.Context) error {
	courierID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	var request PatchCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var class *courier.Class
	if request.CourierType != nil {
		parsed, classErr := courier.ClassFromString(*request.CourierType)
		if classErr != nil {
			return badRequest(ctx, classErr.Error())
		}
		class = &parsed
	}

	var workingHours *kernel.Schedule
	if request.WorkingHours != nil {
		parsed, hoursErr := kernel.NewSchedule(request.WorkingHours)
		if hoursErr != nil {
			return badRequest(ctx, hoursErr.Error())
		}
		workingHours = &parsed
	}

	cmd, err := commands.NewUpdateCourierCommand(courierID, class, request.Regions, workingHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.updateCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := PatchCourierResponse{
		Courier: Courier{
			CourierID:    result.Courier.ID(),
			CourierType:  result.Courier.Class().String(),
			Regions:      result.Courier.Regions(),
			WorkingHours: result.Courier.Availability().Strings(),
		},
		UnassignedOrderIDs: result.UnassignedOrderIDs,
	}
	if response.UnassignedOrderIDs == nil {
		response.UnassignedOrderIDs = []int64{}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierStats handles GET /couriers/:id/stats.
func (s *Server) GetCourierStats(ctx echo.Context) error {
	courierID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewGetCourierStatsQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierStats{
		Rating:   stats.Rating,
		Earnings: stats.Earnings,
	})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	deliveryHours, err := kernel.NewSchedule(request.DeliveryHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(request.OrderID, request.Weight, request.Region, deliveryHours)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetUnassignedOrders handles GET /orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	pool, err := s.getUnassignedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Order, 0, len(pool))
	for _, o := range pool {
		response = append(response, Order{
			OrderID:       o.ID,
			Weight:        o.Weight,
			Region:        o.Region,
			DeliveryHours: o.DeliveryHours,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrders handles POST /orders/assign.
// Runs one assignment pass for the courier over the unassigned pool.
func (s *Server) AssignOrders(ctx echo.Context) error {
	var request AssignOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignOrdersCommand(request.CourierID, s.now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.assignOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := AssignOrdersResponse{
		CourierID:  request.CourierID,
		OrderIDs:   result.OrderIDs,
		AssignedAt: result.AssignedAt,
	}
	if response.OrderIDs == nil {
		response.OrderIDs = []int64{}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrder handles POST /orders/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var request CompleteOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(request.OrderID, request.CourierID, request.CompleteTime)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func pathID(ctx echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &id).BindError(); err != nil {
		return 0, err
	}
	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use-case failures onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrOrderAlreadyAssigned),
		errors.Is(err, order.ErrOrderAlreadyCompleted),
		errors.Is(err, order.ErrOrderNotAssignedToCourier),
		errors.Is(err, services.ErrNoCompletedOrders):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, courier.ErrUnknownCourierType),
		errors.Is(err, courier.ErrUnknownWeightClass):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
