package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order
// with its weight, destination region, and delivery-hours window.
type CreateOrderCommand struct {
	orderID       int64
	weight        float64
	region        int
	deliveryHours kernel.Schedule

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
func NewCreateOrderCommand(
	orderID int64,
	weight float64,
	region int,
	deliveryHours kernel.Schedule,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setWeight(weight),
		command.setRegion(region),
		command.setDeliveryHours(deliveryHours),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the order id from the command.
func (c CreateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Weight returns the order weight in kilograms.
func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}

// Region returns the destination region code.
func (c CreateOrderCommand) Region() int {
	return c.region
}

// DeliveryHours returns the delivery-hours schedule from the command.
func (c CreateOrderCommand) DeliveryHours() kernel.Schedule {
	return c.deliveryHours
}

func (c *CreateOrderCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setRegion(region int) error {
	if region <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("region",
			fmt.Errorf("%d is not greater than 0", region))
	}
	c.region = region
	return nil
}

func (c *CreateOrderCommand) setDeliveryHours(deliveryHours kernel.Schedule) error {
	if err := deliveryHours.Validate(); err != nil {
		return err
	}
	c.deliveryHours = deliveryHours
	return nil
}
