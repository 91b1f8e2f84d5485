package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOrder(t *testing.T, c *courier.Courier, id int64, region int, assignedAt, completedAt time.Time) *order.Order {
	t.Helper()
	o := newOrder(t, id, 1, region, "00:00-23:59")
	require.NoError(t, o.Assign(c.ID(), assignedAt))
	require.NoError(t, o.Complete(c.ID(), completedAt))
	return o
}

func TestRating(t *testing.T) {
	day := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m, s int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
	}

	t.Run("single order uses assignment-to-completion gap", func(t *testing.T) {
		c := footCourier(t)
		// Assigned 09:00, completed 10:00: gap is exactly the 3600s clamp.
		o := completedOrder(t, c, 1, 1, at(9, 0, 0), at(10, 0, 0))

		score, err := services.Rating(c, []*order.Order{o})

		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 1e-9)
	})

	t.Run("multiple orders in a region use mean completion gap", func(t *testing.T) {
		c := footCourier(t)
		// Completions at 10:00 and 10:10: gap 600s, score (3600-600)/18000.
		o1 := completedOrder(t, c, 1, 1, at(9, 0, 0), at(10, 0, 0))
		o2 := completedOrder(t, c, 2, 1, at(9, 0, 0), at(10, 10, 0))

		score, err := services.Rating(c, []*order.Order{o1, o2})

		require.NoError(t, err)
		assert.InDelta(t, 1.0/6.0, score, 1e-9)
	})

	t.Run("assignment time is ignored when a region has several orders", func(t *testing.T) {
		c := footCourier(t)
		// Huge assignment-to-completion distance, but consecutive
		// completions are 60s apart.
		o1 := completedOrder(t, c, 1, 1, at(0, 0, 0), at(10, 0, 0))
		o2 := completedOrder(t, c, 2, 1, at(0, 0, 0), at(10, 1, 0))

		score, err := services.Rating(c, []*order.Order{o1, o2})

		require.NoError(t, err)
		assert.InDelta(t, (3600.0-60.0)/18000.0, score, 1e-9)
	})

	t.Run("completion order within a region does not depend on input order", func(t *testing.T) {
		c := footCourier(t)
		o1 := completedOrder(t, c, 1, 1, at(9, 0, 0), at(10, 10, 0))
		o2 := completedOrder(t, c, 2, 1, at(9, 0, 0), at(10, 0, 0))

		score, err := services.Rating(c, []*order.Order{o1, o2})

		require.NoError(t, err)
		assert.InDelta(t, 1.0/6.0, score, 1e-9)
	})

	t.Run("minimum gap across regions wins", func(t *testing.T) {
		c := footCourier(t)
		// Region 1: slow singleton. Region 2: 120s between completions.
		slow := completedOrder(t, c, 1, 1, at(9, 0, 0), at(11, 0, 0))
		q1 := completedOrder(t, c, 2, 2, at(9, 0, 0), at(9, 30, 0))
		q2 := completedOrder(t, c, 3, 2, at(9, 0, 0), at(9, 32, 0))

		score, err := services.Rating(c, []*order.Order{slow, q1, q2})

		require.NoError(t, err)
		assert.InDelta(t, (3600.0-120.0)/18000.0, score, 1e-9)
	})

	t.Run("gap above an hour clamps to zero score contribution", func(t *testing.T) {
		c := footCourier(t)
		o := completedOrder(t, c, 1, 1, at(9, 0, 0), at(15, 0, 0))

		score, err := services.Rating(c, []*order.Order{o})

		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 1e-9)
	})

	t.Run("completion backdated before assignment still caps at maximum score", func(t *testing.T) {
		c := footCourier(t)
		// Completion time is caller-supplied and may predate assignment;
		// the negative gap must not score above the instant case.
		o := completedOrder(t, c, 1, 1, at(10, 0, 0), at(9, 0, 0))

		score, err := services.Rating(c, []*order.Order{o})

		require.NoError(t, err)
		assert.InDelta(t, 0.2, score, 1e-9)
	})

	t.Run("instant completion gives maximum score", func(t *testing.T) {
		c := footCourier(t)
		o := completedOrder(t, c, 1, 1, at(9, 0, 0), at(9, 0, 0))

		score, err := services.Rating(c, []*order.Order{o})

		require.NoError(t, err)
		assert.InDelta(t, 0.2, score, 1e-9)
	})

	t.Run("no completed orders is a rejectable precondition", func(t *testing.T) {
		c := footCourier(t)
		pending := newOrder(t, 1, 1, 1, "09:00-18:00")

		_, err := services.Rating(c, []*order.Order{pending})

		require.ErrorIs(t, err, services.ErrNoCompletedOrders)

		_, err = services.Rating(c, nil)
		require.ErrorIs(t, err, services.ErrNoCompletedOrders)
	})
}

func TestEarnings(t *testing.T) {
	day := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("orders from one batch count once", func(t *testing.T) {
		c := footCourier(t)
		batch := day.Add(9 * time.Hour)
		o1 := newOrder(t, 1, 1, 1, "09:00-18:00")
		o2 := newOrder(t, 2, 1, 2, "09:00-18:00")
		require.NoError(t, o1.Assign(c.ID(), batch))
		require.NoError(t, o2.Assign(c.ID(), batch))

		total, err := services.Earnings(c, []*order.Order{o1, o2})

		require.NoError(t, err)
		// one batch * 500 * foot multiplier 2
		assert.Equal(t, int64(1000), total)
	})

	t.Run("distinct batches accumulate", func(t *testing.T) {
		c, err := courier.NewCourier(1, courier.ClassCar, []int{1}, schedule(t, "09:00-18:00"))
		require.NoError(t, err)
		o1 := newOrder(t, 1, 1, 1, "09:00-18:00")
		o2 := newOrder(t, 2, 1, 1, "09:00-18:00")
		require.NoError(t, o1.Assign(c.ID(), day.Add(9*time.Hour)))
		require.NoError(t, o2.Assign(c.ID(), day.Add(11*time.Hour)))

		total, err := services.Earnings(c, []*order.Order{o1, o2})

		require.NoError(t, err)
		// two batches * 500 * car multiplier 9
		assert.Equal(t, int64(9000), total)
	})

	t.Run("class multiplier applies", func(t *testing.T) {
		bike, err := courier.NewCourier(2, courier.ClassBike, []int{1}, schedule(t, "09:00-18:00"))
		require.NoError(t, err)
		o := newOrder(t, 1, 1, 1, "09:00-18:00")
		require.NoError(t, o.Assign(bike.ID(), day.Add(9*time.Hour)))

		total, err := services.Earnings(bike, []*order.Order{o})

		require.NoError(t, err)
		assert.Equal(t, int64(2500), total)
	})

	t.Run("no assignments means zero earnings", func(t *testing.T) {
		c := footCourier(t)

		total, err := services.Earnings(c, []*order.Order{newOrder(t, 1, 1, 1, "09:00-18:00")})

		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
