package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassFromString(t *testing.T) {
	t.Run("should parse known types", func(t *testing.T) {
		tests := []struct {
			input string
			class courier.Class
		}{
			{"foot", courier.ClassFoot},
			{"bike", courier.ClassBike},
			{"car", courier.ClassCar},
		}

		for _, tt := range tests {
			class, err := courier.ClassFromString(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.class, class)
		}
	})

	t.Run("should fail on unknown type", func(t *testing.T) {
		for _, input := range []string{"", "truck", "Foot", "FOOT"} {
			_, err := courier.ClassFromString(input)

			require.Error(t, err, input)
			assert.ErrorIs(t, err, courier.ErrUnknownCourierType)
		}
	})
}

func TestClassFromMaxWeight(t *testing.T) {
	t.Run("should invert the weight mapping", func(t *testing.T) {
		tests := []struct {
			weight int
			class  courier.Class
		}{
			{10, courier.ClassFoot},
			{15, courier.ClassBike},
			{50, courier.ClassCar},
		}

		for _, tt := range tests {
			class, err := courier.ClassFromMaxWeight(tt.weight)

			require.NoError(t, err)
			assert.Equal(t, tt.class, class)
		}
	})

	t.Run("should fail on unknown weight", func(t *testing.T) {
		for _, weight := range []int{0, 1, 11, 100, -10} {
			_, err := courier.ClassFromMaxWeight(weight)

			require.Error(t, err)
			assert.ErrorIs(t, err, courier.ErrUnknownWeightClass)
		}
	})
}

func TestClass_Properties(t *testing.T) {
	tests := []struct {
		class      courier.Class
		name       string
		maxWeight  int
		multiplier int
	}{
		{courier.ClassFoot, "foot", 10, 2},
		{courier.ClassBike, "bike", 15, 5},
		{courier.ClassCar, "car", 50, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.class.Validate())
			assert.Equal(t, tt.name, tt.class.String())
			assert.Equal(t, tt.maxWeight, tt.class.MaxWeight())
			assert.Equal(t, tt.multiplier, tt.class.RateMultiplier())
		})
	}
}

func TestClass_Unknown(t *testing.T) {
	require.Error(t, courier.ClassUnknown.Validate())
	assert.Equal(t, "unknown", courier.ClassUnknown.String())
	assert.Equal(t, 0, courier.ClassUnknown.MaxWeight())
	assert.Equal(t, 0, courier.ClassUnknown.RateMultiplier())
	require.Error(t, courier.Class(42).Validate())
}
