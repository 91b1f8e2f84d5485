package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCourierStatsQueryHandler computes a courier's rating and earnings.
//
// Unlike the plain read queries, the statistics are not stored: the handler
// reconstructs the courier and its order history as domain aggregates and
// delegates the computation to the domain scorecard functions. Reads stay
// on the raw SQL path to keep the CQRS split with the repositories.
type GetCourierStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierStatsQueryHandler creates a handler for courier statistics.
func NewGetCourierStatsQueryHandler(db *gorm.DB) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{db: db}
}

// Handle executes the statistics query.
// Returns services.ErrNoCompletedOrders when the courier has not completed
// a single delivery, and errs.ErrObjectNotFound for an unknown courier.
func (h GetCourierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatsQuery,
) (GetCourierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierStatsQueryResponse{}, err
	}

	courierEntity, err := h.loadCourier(ctx, query.CourierID())
	if err != nil {
		return GetCourierStatsQueryResponse{}, err
	}

	orders, err := h.loadOrders(ctx, query.CourierID())
	if err != nil {
		return GetCourierStatsQueryResponse{}, err
	}

	rating, err := services.Rating(courierEntity, orders)
	if err != nil {
		return GetCourierStatsQueryResponse{}, err
	}

	earnings, err := services.Earnings(courierEntity, orders)
	if err != nil {
		return GetCourierStatsQueryResponse{}, err
	}

	return GetCourierStatsQueryResponse{Rating: rating, Earnings: earnings}, nil
}

func (h GetCourierStatsQueryHandler) loadCourier(ctx context.Context, courierID int64) (*courier.Courier, error) {
	var (
		id        int64
		maxWeight int
		regions   pq.Int64Array
		hours     pq.Int64Array
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			max_weight,
			regions,
			hours
		FROM couriers
		WHERE id = ?
	`, courierID).Row()

	if err := row.Scan(&id, &maxWeight, &regions, &hours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("courier", courierID)
		}
		return nil, err
	}

	class, err := courier.ClassFromMaxWeight(maxWeight)
	if err != nil {
		return nil, err
	}

	schedule, err := restoreScheduleFromBoundaries(hours)
	if err != nil {
		return nil, err
	}

	regionCodes := make([]int, 0, len(regions))
	for _, region := range regions {
		regionCodes = append(regionCodes, int(region))
	}

	return courier.RestoreCourier(id, class, regionCodes, schedule)
}

func (h GetCourierStatsQueryHandler) loadOrders(ctx context.Context, courierID int64) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			weight,
			region,
			hours,
			courier_id,
			assigned_at,
			completed_at
		FROM orders
		WHERE courier_id = ?
	`, courierID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var (
			id          int64
			weight      float64
			region      int
			hours       pq.Int64Array
			assignedTo  sql.NullInt64
			assignedAt  sql.NullTime
			completedAt sql.NullTime
		)

		if err = rows.Scan(&id, &weight, &region, &hours, &assignedTo, &assignedAt, &completedAt); err != nil {
			return nil, err
		}

		schedule, restoreErr := restoreScheduleFromBoundaries(hours)
		if restoreErr != nil {
			return nil, restoreErr
		}

		var courierRef *int64
		if assignedTo.Valid {
			courierRef = &assignedTo.Int64
		}
		var assigned, completed *time.Time
		if assignedAt.Valid {
			assigned = &assignedAt.Time
		}
		if completedAt.Valid {
			completed = &completedAt.Time
		}

		orderEntity, restoreErr := order.RestoreOrder(id, weight, region, schedule, courierRef, assigned, completed)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, orderEntity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func restoreScheduleFromBoundaries(boundaries pq.Int64Array) (kernel.Schedule, error) {
	times := make([]kernel.TimeOfDay, 0, len(boundaries))
	for _, b := range boundaries {
		times = append(times, kernel.TimeOfDay(b))
	}
	return kernel.RestoreSchedule(times)
}
