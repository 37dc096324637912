package person_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	person "person-service/internal/domain/person"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		for _, raw := range []string{
			"user@example.com",
			"first.last@example.com",
			"user+tag@sub.example.co.uk",
			"user_name@example.io",
			"o'brien@example.com",
			"user@[192.168.1.1]",
		} {
			_, err := person.NewEmail(raw)
			assert.NoError(t, err, raw)
		}
	})

	t.Run("normalizes to lowercase", func(t *testing.T) {
		e, err := person.NewEmail("  User@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", e.Value())
	})

	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"empty", "", "Invalid Email: value cannot be empty"},
		{"blank", "   ", "Invalid Email: value cannot be empty"},
		{"no at sign", "userexample.com", "Invalid Email: invalid email format"},
		{"two at signs", "user@host@example.com", "Invalid Email: invalid email format"},
		{"missing domain", "user@", "Invalid Email: invalid email format"},
		{"missing local", "@example.com", "Invalid Email: invalid email format"},
		{"leading dot in local", ".user@example.com", "Invalid Email: invalid email format"},
		{"consecutive dots", "us..er@example.com", "Invalid Email: invalid email format"},
		{"no tld", "user@example", "Invalid Email: invalid email format"},
		{"too long", strings.Repeat("a", 250) + "@x.com", "Invalid Email: length cannot exceed 254 characters"},
		{"local too long", strings.Repeat("a", 65) + "@example.com", "Invalid Email: local part cannot exceed 64 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := person.NewEmail(tt.raw)
			require.Error(t, err)
			assert.True(t, person.IsInvalid(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}

	t.Run("equality by value", func(t *testing.T) {
		a, err := person.NewEmail("User@example.com")
		require.NoError(t, err)
		b, err := person.NewEmail("user@EXAMPLE.com")
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})
}
