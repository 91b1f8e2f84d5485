package queries

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery retrieves a courier's performance score and earnings.
type GetCourierStatsQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

// NewGetCourierStatsQuery creates a query for courier rating and earnings.
func NewGetCourierStatsQuery(courierID int64) (GetCourierStatsQuery, error) {
	if courierID <= 0 {
		return GetCourierStatsQuery{}, errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("%d is not greater than 0", courierID))
	}
	return GetCourierStatsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

// CourierID returns the requested courier id.
func (q GetCourierStatsQuery) CourierID() int64 {
	return q.courierID
}

// GetCourierStatsQueryResponse carries the derived courier statistics.
// Rating is a score in [0, 1]; Earnings is the total payment across
// assignment batches.
type GetCourierStatsQueryResponse struct {
	Rating   float64
	Earnings int64
}
