package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a courier reporting a finished delivery.
type CompleteOrderCommand struct {
	orderID   int64
	courierID int64
	at        time.Time

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to mark an order as delivered
// by the given courier at the given time.
func NewCompleteOrderCommand(orderID, courierID int64, at time.Time) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
		command.setAt(at),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order id from the command.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// CourierID returns the reporting courier's id.
func (c CompleteOrderCommand) CourierID() int64 {
	return c.courierID
}

// At returns the completion timestamp.
func (c CompleteOrderCommand) At() time.Time {
	return c.at
}

func (c *CompleteOrderCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.orderID = id
	return nil
}

func (c *CompleteOrderCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.courierID = id
	return nil
}

func (c *CompleteOrderCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	c.at = at
	return nil
}
