package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("should parse valid times", func(t *testing.T) {
		tests := []struct {
			input   string
			minutes int
		}{
			{"00:00", 0},
			{"09:00", 540},
			{"12:30", 750},
			{"23:59", 1439},
		}

		for _, tt := range tests {
			tod, err := kernel.ParseTimeOfDay(tt.input)

			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.minutes, tod.Minutes())
			assert.Equal(t, tt.input, tod.String())
		}
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		for _, input := range []string{"", "9:00", "09-00", "0900", "09:00:00", "ab:cd", "09:3o"} {
			_, err := kernel.ParseTimeOfDay(input)

			require.Error(t, err, input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject out-of-range components", func(t *testing.T) {
		for _, input := range []string{"24:00", "25:30", "09:60", "99:99"} {
			_, err := kernel.ParseTimeOfDay(input)

			require.Error(t, err, input)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestTimeOfDay_Validate(t *testing.T) {
	require.NoError(t, kernel.TimeOfDay(0).Validate())
	require.NoError(t, kernel.TimeOfDay(1439).Validate())
	require.Error(t, kernel.TimeOfDay(-1).Validate())
	require.Error(t, kernel.TimeOfDay(1440).Validate())
}
