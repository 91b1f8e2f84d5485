package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCourierQueryHandler retrieves a courier profile from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier profile queries.
// Requires a GORM database connection for query execution.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the query to retrieve one courier profile.
// Returns errs.ErrObjectNotFound (wrapped) when the courier does not exist.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (GetCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierQueryResponse{}, err
	}

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
	`, query.CourierID()).Row()

	if err := row.Scan(&id, &maxWeight, &regions, &hours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCourierQueryResponse{}, errs.NewObjectNotFoundError("courier", query.CourierID())
		}
		return GetCourierQueryResponse{}, err
	}

	class, err := courier.ClassFromMaxWeight(maxWeight)
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	workingHours, err := restoreWindowStrings(hours)
	if err != nil {
		return GetCourierQueryResponse{}, err
	}

	response := GetCourierQueryResponse{
		ID:           id,
		CourierType:  class.String(),
		Regions:      make([]int, 0, len(regions)),
		WorkingHours: workingHours,
	}
	for _, region := range regions {
		response.Regions = append(response.Regions, int(region))
	}

	return response, nil
}

// restoreWindowStrings rebuilds "HH:MM-HH:MM" window strings from the flat
// minute boundaries stored in the database.
func restoreWindowStrings(boundaries pq.Int64Array) ([]string, error) {
	times := make([]kernel.TimeOfDay, 0, len(boundaries))
	for _, b := range boundaries {
		times = append(times, kernel.TimeOfDay(b))
	}

	schedule, err := kernel.RestoreSchedule(times)
	if err != nil {
		return nil, err
	}
	return schedule.Strings(), nil
}
