package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand represents a request to hand the current pool of
// unassigned orders to a courier. Every order the courier is eligible for
// is assigned in one batch stamped with the command's time.
type AssignOrdersCommand struct {
	courierID int64
	at        time.Time

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command to run an assignment pass for
// the given courier. The at time becomes the shared batch timestamp.
func NewAssignOrdersCommand(courierID int64, at time.Time) (AssignOrdersCommand, error) {
	command := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setAt(at),
	); err != nil {
		return AssignOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier id from the command.
func (c AssignOrdersCommand) CourierID() int64 {
	return c.courierID
}

// At returns the batch timestamp for the assignment pass.
func (c AssignOrdersCommand) At() time.Time {
	return c.at
}

func (c *AssignOrdersCommand) setCourierID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.courierID = id
	return nil
}

func (c *AssignOrdersCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	c.at = at
	return nil
}
