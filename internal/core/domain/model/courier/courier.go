package courier

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier. It is an aggregate root holding the
// courier's identity and the three eligibility constraints used for order
// matching:
//   - transport class, which caps the order weight the courier can carry
//   - the set of region codes the courier serves
//   - the availability schedule that must overlap an order's delivery hours
//
// The profile fields (class, regions, availability) are mutable through
// setters; edits trigger reconciliation of the courier's active assignments
// at the application layer. The identity is immutable once created.
type Courier struct {
	// id is the externally assigned courier identifier
	id int64

	// class determines max carry weight and the earnings rate
	class Class

	// regions is the sorted, deduplicated set of serviceable region codes
	regions []int

	// availability is the courier's working-hours window set
	availability kernel.Schedule

	// isConstructed ensures the courier was created via a constructor
	isConstructed bool
}

// NewCourier creates a Courier with validation. The id must be positive,
// the class must be a known transport class, and the availability schedule
// must be a constructed kernel.Schedule. Region duplicates collapse.
func NewCourier(id int64, class Class, regions []int, availability kernel.Schedule) (*Courier, error) {
	c := &Courier{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setClass(class),
		c.setRegions(regions),
		c.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence.
// Applies the same validation as NewCourier.
func RestoreCourier(id int64, class Class, regions []int, availability kernel.Schedule) (*Courier, error) {
	return NewCourier(id, class, regions, availability)
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id == other.id
}

// ID returns the courier's identifier.
func (c *Courier) ID() int64 {
	return c.id
}

// Class returns the courier's transport class.
func (c *Courier) Class() Class {
	return c.class
}

// MaxWeight returns the maximum order weight the courier can carry,
// derived from the transport class.
func (c *Courier) MaxWeight() int {
	return c.class.MaxWeight()
}

// Regions returns the serviceable region codes, sorted ascending.
func (c *Courier) Regions() []int {
	return slices.Clone(c.regions)
}

// Availability returns the courier's working-hours schedule.
func (c *Courier) Availability() kernel.Schedule {
	return c.availability
}

// CanCarry reports whether an order of the given weight fits the
// courier's class limit.
func (c *Courier) CanCarry(weight float64) bool {
	return weight <= float64(c.class.MaxWeight())
}

// ServesRegion reports whether the courier serves the given region code.
func (c *Courier) ServesRegion(region int) bool {
	_, found := slices.BinarySearch(c.regions, region)
	return found
}

// IsAvailableFor reports whether the courier's working hours overlap the
// given delivery schedule.
func (c *Courier) IsAvailableFor(deliveryHours kernel.Schedule) bool {
	return c.availability.Overlaps(deliveryHours)
}

// SetClass changes the courier's transport class.
// The caller is responsible for reconciling active assignments afterwards.
func (c *Courier) SetClass(class Class) error {
	return c.setClass(class)
}

// SetRegions replaces the serviceable region set.
// The caller is responsible for reconciling active assignments afterwards.
func (c *Courier) SetRegions(regions []int) error {
	return c.setRegions(regions)
}

// SetAvailability replaces the working-hours schedule.
// The caller is responsible for reconciling active assignments afterwards.
func (c *Courier) SetAvailability(availability kernel.Schedule) error {
	return c.setAvailability(availability)
}

func (c *Courier) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Courier) setClass(class Class) error {
	if err := class.Validate(); err != nil {
		return err
	}
	c.class = class
	return nil
}

func (c *Courier) setRegions(regions []int) error {
	if len(regions) == 0 {
		return errs.NewValueIsRequiredError("regions")
	}

	normalized := slices.Clone(regions)
	slices.Sort(normalized)
	c.regions = slices.Compact(normalized)
	return nil
}

func (c *Courier) setAvailability(availability kernel.Schedule) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	c.availability = availability
	return nil
}
