package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand represents a partial edit of a courier profile.
// Nil fields mean "leave unchanged"; each present field is applied and
// triggers its own reconciliation re-check of the courier's active orders.
type UpdateCourierCommand struct {
	courierID    int64
	class        *courier.Class
	regions      []int
	workingHours *kernel.Schedule

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a command to edit a courier profile.
// An edit with no fields present is a valid no-op.
func NewUpdateCourierCommand(
	courierID int64,
	class *courier.Class,
	regions []int,
	workingHours *kernel.Schedule,
) (UpdateCourierCommand, error) {
	command := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setClass(class),
		command.setRegions(regions),
		command.setWorkingHours(workingHours),
	); err != nil {
		return UpdateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the courier id from the command.
func (c UpdateCourierCommand) CourierID() int64 {
	return c.courierID
}

// Class returns the new transport class, or nil when unchanged.
func (c UpdateCourierCommand) Class() *courier.Class {
	return c.class
}

// Regions returns the new region set, or nil when unchanged.
func (c UpdateCourierCommand) Regions() []int {
	return c.regions
}

// WorkingHours returns the new working-hours schedule, or nil when unchanged.
func (c UpdateCourierCommand) WorkingHours() *kernel.Schedule {
	return c.workingHours
}

func (c *UpdateCourierCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.courierID = id
	return nil
}

func (c *UpdateCourierCommand) setClass(class *courier.Class) error {
	if class == nil {
		return nil
	}
	if err := class.Validate(); err != nil {
		return err
	}
	c.class = class
	return nil
}

func (c *UpdateCourierCommand) setRegions(regions []int) error {
	if regions == nil {
		return nil
	}
	if len(regions) == 0 {
		return errs.NewValueIsRequiredError("regions")
	}
	c.regions = regions
	return nil
}

func (c *UpdateCourierCommand) setWorkingHours(workingHours *kernel.Schedule) error {
	if workingHours == nil {
		return nil
	}
	if err := workingHours.Validate(); err != nil {
		return err
	}
	c.workingHours = workingHours
	return nil
}
