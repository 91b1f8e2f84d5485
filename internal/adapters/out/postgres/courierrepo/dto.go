// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. It implements the repository pattern for the
// courier aggregate, converting between the domain entity and its
// relational representation.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// CourierDTO represents the database structure for persisting couriers.
//
// The transport class is stored as its maximum carry weight; the
// class-to-weight mapping is invertible, so the class is rebuilt on load.
// Working hours are stored as the schedule's flat minute-of-day boundaries.
type CourierDTO struct {
	ID        int64         `gorm:"primaryKey"`
	MaxWeight int           `gorm:"type:int;not null"`
	Regions   pq.Int64Array `gorm:"type:bigint[];not null"`
	Hours     pq.Int64Array `gorm:"type:bigint[];not null"`
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	regions := make(pq.Int64Array, 0, len(aggregate.Regions()))
	for _, region := range aggregate.Regions() {
		regions = append(regions, int64(region))
	}

	boundaries := aggregate.Availability().Boundaries()
	hours := make(pq.Int64Array, 0, len(boundaries))
	for _, b := range boundaries {
		hours = append(hours, int64(b.Minutes()))
	}

	return CourierDTO{
		ID:        aggregate.ID(),
		MaxWeight: aggregate.Class().MaxWeight(),
		Regions:   regions,
		Hours:     hours,
	}
}

// toDomain converts a database DTO back to a courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	class, err := courier.ClassFromMaxWeight(dto.MaxWeight)
	if err != nil {
		return nil, err
	}

	boundaries := make([]kernel.TimeOfDay, 0, len(dto.Hours))
	for _, h := range dto.Hours {
		boundaries = append(boundaries, kernel.TimeOfDay(h))
	}
	availability, err := kernel.RestoreSchedule(boundaries)
	if err != nil {
		return nil, err
	}

	regions := make([]int, 0, len(dto.Regions))
	for _, region := range dto.Regions {
		regions = append(regions, int(region))
	}

	return courier.RestoreCourier(dto.ID, class, regions, availability)
}
