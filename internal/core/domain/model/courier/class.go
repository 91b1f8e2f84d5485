package courier

import (
	"errors"
	"fmt"
)

// Conversion errors for the class/weight lookup. Both are fatal to the
// calling request: a value outside the known set means corrupt input or
// corrupt persisted data, not something to retry.
var (
	ErrUnknownCourierType = errors.New("unknown courier type")
	ErrUnknownWeightClass = errors.New("unknown weight class")
)

// Class is the courier transport class. It determines both the maximum
// order weight a courier can carry and the per-delivery-batch pay rate.
type Class int

const (
	// ClassUnknown represents an invalid or undefined class.
	// This value (0) helps catch uninitialized Class values.
	ClassUnknown Class = iota

	// ClassFoot is a courier on foot: up to 10 weight units, rate x2.
	ClassFoot

	// ClassBike is a courier on a bike: up to 15 weight units, rate x5.
	ClassBike

	// ClassCar is a courier with a car: up to 50 weight units, rate x9.
	ClassCar
)

// classNames maps valid classes to their wire representation.
func classNames() map[Class]string {
	return map[Class]string{
		ClassFoot: "foot",
		ClassBike: "bike",
		ClassCar:  "car",
	}
}

// classWeights maps valid classes to their maximum carry weight.
// The mapping is invertible: each class has a distinct weight.
func classWeights() map[Class]int {
	return map[Class]int{
		ClassFoot: 10,
		ClassBike: 15,
		ClassCar:  50,
	}
}

// classRates maps valid classes to their earnings multiplier.
func classRates() map[Class]int {
	return map[Class]int{
		ClassFoot: 2,
		ClassBike: 5,
		ClassCar:  9,
	}
}

// ClassFromString parses the wire representation ("foot", "bike", "car").
// Returns ErrUnknownCourierType for anything else.
func ClassFromString(s string) (Class, error) {
	for class, name := range classNames() {
		if name == s {
			return class, nil
		}
	}
	return ClassUnknown, fmt.Errorf("%w: %q", ErrUnknownCourierType, s)
}

// ClassFromMaxWeight inverts the class-to-weight mapping, used when
// reconstructing a courier from its persisted maximum weight.
// Returns ErrUnknownWeightClass for weights outside {10, 15, 50}.
func ClassFromMaxWeight(weight int) (Class, error) {
	for class, w := range classWeights() {
		if w == weight {
			return class, nil
		}
	}
	return ClassUnknown, fmt.Errorf("%w: %d", ErrUnknownWeightClass, weight)
}

// Validate checks that the class is one of the known transport classes.
func (c Class) Validate() error {
	if _, ok := classNames()[c]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCourierType, int(c))
	}
	return nil
}

// MaxWeight returns the maximum order weight the class can carry.
// Returns 0 for an invalid class.
func (c Class) MaxWeight() int {
	return classWeights()[c]
}

// RateMultiplier returns the per-batch earnings multiplier for the class.
// Returns 0 for an invalid class.
func (c Class) RateMultiplier() int {
	return classRates()[c]
}

// String returns the wire representation of the class.
// Implements fmt.Stringer; safe to call on any value.
func (c Class) String() string {
	if name, ok := classNames()[c]; ok {
		return name
	}
	return "unknown"
}
