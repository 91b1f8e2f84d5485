// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between the domain entity and its
// relational representation.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting orders.
//
// Delivery hours are stored as the schedule's flat minute-of-day
// boundaries. CourierID and AssignedAt are set and cleared together;
// a non-null CompletedAt marks the order as delivered.
type OrderDTO struct {
	ID          int64         `gorm:"primaryKey"`
	Weight      float64       `gorm:"type:numeric;not null"`
	Region      int           `gorm:"type:int;not null"`
	Hours       pq.Int64Array `gorm:"type:bigint[];not null"`
	CourierID   *int64        `gorm:"index"`
	AssignedAt  *time.Time
	CompletedAt *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	boundaries := aggregate.DeliveryHours().Boundaries()
	hours := make(pq.Int64Array, 0, len(boundaries))
	for _, b := range boundaries {
		hours = append(hours, int64(b.Minutes()))
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		Weight:      aggregate.Weight(),
		Region:      aggregate.Region(),
		Hours:       hours,
		CourierID:   aggregate.Courier(),
		AssignedAt:  aggregate.AssignedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	boundaries := make([]kernel.TimeOfDay, 0, len(dto.Hours))
	for _, h := range dto.Hours {
		boundaries = append(boundaries, kernel.TimeOfDay(h))
	}
	deliveryHours, err := kernel.RestoreSchedule(boundaries)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Weight,
		dto.Region,
		deliveryHours,
		dto.CourierID,
		dto.AssignedAt,
		dto.CompletedAt,
	)
}
