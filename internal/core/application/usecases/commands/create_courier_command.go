package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier with
// its transport class, serviceable regions, and working hours.
type CreateCourierCommand struct {
	courierID    int64
	class        courier.Class
	regions      []int
	workingHours kernel.Schedule

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// The id is externally assigned and must be positive; the class and the
// working-hours schedule must be valid.
func NewCreateCourierCommand(
	courierID int64,
	class courier.Class,
	regions []int,
	workingHours kernel.Schedule,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setClass(class),
		command.setRegions(regions),
		command.setWorkingHours(workingHours),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the courier id from the command.
func (c CreateCourierCommand) CourierID() int64 {
	return c.courierID
}

// Class returns the transport class from the command.
func (c CreateCourierCommand) Class() courier.Class {
	return c.class
}

// Regions returns the serviceable region codes from the command.
func (c CreateCourierCommand) Regions() []int {
	return c.regions
}

// WorkingHours returns the working-hours schedule from the command.
func (c CreateCourierCommand) WorkingHours() kernel.Schedule {
	return c.workingHours
}

func (c *CreateCourierCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setClass(class courier.Class) error {
	if err := class.Validate(); err != nil {
		return err
	}
	c.class = class
	return nil
}

func (c *CreateCourierCommand) setRegions(regions []int) error {
	if len(regions) == 0 {
		return errs.NewValueIsRequiredError("regions")
	}
	c.regions = regions
	return nil
}

func (c *CreateCourierCommand) setWorkingHours(workingHours kernel.Schedule) error {
	if err := workingHours.Validate(); err != nil {
		return err
	}
	c.workingHours = workingHours
	return nil
}
