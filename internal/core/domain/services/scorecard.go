package services

import (
	"errors"
	"slices"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

const (
	// maxGapSeconds caps the per-region delivery gap used by the rating
	// formula. Gaps of an hour or more score zero.
	maxGapSeconds = 3600.0

	// ratingDivisor normalizes the clamped gap into the [0, 1] score range.
	ratingDivisor = 18000.0

	// batchPayment is the base payment per assignment batch, multiplied by
	// the courier class rate.
	batchPayment = 500
)

// ErrNoCompletedOrders is returned when a rating is requested for a courier
// without any completed deliveries. The score is undefined in that case;
// callers surface this as a rejectable precondition.
var ErrNoCompletedOrders = errors.New("courier has no completed orders")

// Rating derives the courier's performance score in [0, 1] from the given
// completed orders.
//
// Completed orders are grouped by region. Within a region, orders are sorted
// by completion time; a region with a single completed order contributes the
// gap between its assignment and completion, while a region with several
// contributes the arithmetic mean of consecutive completion-time differences
// (assignment time is not used in that case). The minimum gap across regions,
// clamped to at most an hour, determines the score:
//
//	score = (3600 - min_gap_seconds) / 18000
func Rating(c *courier.Courier, orders []*order.Order) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	byRegion := make(map[int][]*order.Order)
	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		byRegion[o.Region()] = append(byRegion[o.Region()], o)
	}
	if len(byRegion) == 0 {
		return 0, ErrNoCompletedOrders
	}

	minGap := -1.0
	for _, regionOrders := range byRegion {
		gap := regionGapSeconds(regionOrders)
		if minGap < 0 || gap < minGap {
			minGap = gap
		}
	}

	// Clamp into [0, 3600]: backdated completion times must not push the
	// score above the documented range.
	if minGap > maxGapSeconds {
		minGap = maxGapSeconds
	}
	if minGap < 0 {
		minGap = 0
	}
	return (maxGapSeconds - minGap) / ratingDivisor, nil
}

// regionGapSeconds computes the delivery gap for one region's completed
// orders. The caller guarantees at least one order, each with assignment and
// completion times set.
func regionGapSeconds(orders []*order.Order) float64 {
	slices.SortFunc(orders, func(a, b *order.Order) int {
		return a.CompletedAt().Compare(*b.CompletedAt())
	})

	if len(orders) == 1 {
		return orders[0].CompletedAt().Sub(*orders[0].AssignedAt()).Seconds()
	}

	total := 0.0
	for i := 1; i < len(orders); i++ {
		total += orders[i].CompletedAt().Sub(*orders[i-1].CompletedAt()).Seconds()
	}
	return total / float64(len(orders)-1)
}

// Earnings computes the courier's total earnings from the given orders:
// the number of distinct assignment batches (orders stamped in one Dispatch
// call share a timestamp and count once) times the base payment times the
// class rate multiplier.
func Earnings(c *courier.Courier, orders []*order.Order) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	batches := make(map[int64]struct{})
	for _, o := range orders {
		if o.AssignedAt() != nil {
			batches[o.AssignedAt().UnixNano()] = struct{}{}
		}
	}

	return int64(len(batches)) * batchPayment * int64(c.Class().RateMultiplier()), nil
}
