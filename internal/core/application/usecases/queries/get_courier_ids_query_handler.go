package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierIDsQueryHandler retrieves all courier ids from the database.
type GetCourierIDsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierIDsQueryHandler creates a handler for roster queries.
func NewGetCourierIDsQueryHandler(db *gorm.DB) GetCourierIDsQueryHandler {
	return GetCourierIDsQueryHandler{db: db}
}

// Handle executes the query to retrieve all courier ids, sorted ascending.
func (h GetCourierIDsQueryHandler) Handle(ctx context.Context, query GetCourierIDsQuery) ([]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0)
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id FROM couriers ORDER BY id
	`).Scan(&ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}
