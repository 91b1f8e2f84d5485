package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves the unassigned order pool from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for pool queries.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unassigned orders, sorted by id.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			weight,
			region,
			hours
		FROM orders
		WHERE courier_id IS NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetUnassignedOrdersQueryResponse, 0)
	for rows.Next() {
		var response GetUnassignedOrdersQueryResponse
		var hours pq.Int64Array

		if err = rows.Scan(&response.ID, &response.Weight, &response.Region, &hours); err != nil {
			return nil, err
		}

		response.DeliveryHours, err = restoreWindowStrings(hours)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
