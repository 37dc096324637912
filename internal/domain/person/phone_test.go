package person_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	person "person-service/internal/domain/person"
)

func TestNewPhone(t *testing.T) {
	t.Run("valid formats", func(t *testing.T) {
		for _, raw := range []string{
			"+7 (912) 345-67-89",
			"79123456789",
			"+1-202-555-0173",
			"(495) 123 45 67 89",
		} {
			_, err := person.NewPhone(raw)
			assert.NoError(t, err, raw)
		}
	})

	t.Run("keeps formatting, trims edges", func(t *testing.T) {
		p, err := person.NewPhone("  +7 (912) 345-67-89 ")
		require.NoError(t, err)
		assert.Equal(t, "+7 (912) 345-67-89", p.Value())
	})

	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"empty", "", "Invalid Phone: value cannot be empty"},
		{"blank", "  ", "Invalid Phone: value cannot be empty"},
		{"too few digits", "+7 912 345", "Invalid Phone: phone number must contain at least 10 digits"},
		{"too many digits", "1234567890123456", "Invalid Phone: phone number cannot contain more than 15 digits"},
		{"letters", "+7 912 ABC-45-67", "Invalid Phone: invalid phone format"},
		{"plus inside", "7912+3456789", "Invalid Phone: invalid phone format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := person.NewPhone(tt.raw)
			require.Error(t, err)
			assert.True(t, person.IsInvalid(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}

	t.Run("boundary digit counts", func(t *testing.T) {
		_, err := person.NewPhone("1234567890")
		assert.NoError(t, err)
		_, err = person.NewPhone("123456789012345")
		assert.NoError(t, err)
	})
}
