package person_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	person "person-service/internal/domain/person"
)

func TestNewAddress(t *testing.T) {
	t.Run("valid full address", func(t *testing.T) {
		a, err := person.NewAddress("ru", "Moscow", "Tverskaya", "12", "125009", "34")
		require.NoError(t, err)
		assert.Equal(t, "RU", a.CountryCode())
		assert.Equal(t, "Moscow", a.City())
		assert.Equal(t, "Tverskaya 12, apt 34, Moscow, 125009, RU", a.String())
	})

	t.Run("valid without optionals", func(t *testing.T) {
		a, err := person.NewAddress("US", "Springfield", "Evergreen Terrace", "742", "", "")
		require.NoError(t, err)
		assert.Empty(t, a.PostalCode())
		assert.Empty(t, a.Apartment())
		assert.Equal(t, "Evergreen Terrace 742, Springfield, US", a.String())
	})

	t.Run("three letter country code", func(t *testing.T) {
		a, err := person.NewAddress("usa", "Springfield", "Evergreen Terrace", "742", "", "")
		require.NoError(t, err)
		assert.Equal(t, "USA", a.CountryCode())
	})

	tests := []struct {
		name                                                      string
		country, city, street, houseNumber, postalCode, apartment string
		wantMsg                                                   string
	}{
		{"empty country", "", "Moscow", "Tverskaya", "12", "", "", "Invalid Address: country code cannot be empty"},
		{"one letter country", "R", "Moscow", "Tverskaya", "12", "", "", "Invalid Address: country code must be in ISO format (2-3 uppercase letters)"},
		{"four letter country", "RUSS", "Moscow", "Tverskaya", "12", "", "", "Invalid Address: country code must be in ISO format (2-3 uppercase letters)"},
		{"digits in country", "R1", "Moscow", "Tverskaya", "12", "", "", "Invalid Address: country code must be in ISO format (2-3 uppercase letters)"},
		{"empty city", "RU", "", "Tverskaya", "12", "", "", "Invalid Address: City cannot be empty"},
		{"city too long", "RU", strings.Repeat("a", 101), "Tverskaya", "12", "", "", "Invalid Address: City cannot exceed 100 characters"},
		{"empty street", "RU", "Moscow", "", "12", "", "", "Invalid Address: Street cannot be empty"},
		{"street too long", "RU", "Moscow", strings.Repeat("a", 201), "12", "", "", "Invalid Address: Street cannot exceed 200 characters"},
		{"empty house number", "RU", "Moscow", "Tverskaya", "", "", "", "Invalid Address: HouseNumber cannot be empty"},
		{"house number too long", "RU", "Moscow", "Tverskaya", strings.Repeat("1", 21), "", "", "Invalid Address: HouseNumber cannot exceed 20 characters"},
		{"postal too short", "RU", "Moscow", "Tverskaya", "12", "12", "", "Invalid Address: invalid postal code format"},
		{"postal with letters", "RU", "Moscow", "Tverskaya", "12", "12A45", "", "Invalid Address: invalid postal code format"},
		{"apartment too long", "RU", "Moscow", "Tverskaya", "12", "", strings.Repeat("1", 21), "Invalid Address: Apartment cannot exceed 20 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := person.NewAddress(tt.country, tt.city, tt.street, tt.houseNumber, tt.postalCode, tt.apartment)
			require.Error(t, err)
			assert.True(t, person.IsInvalid(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}

	t.Run("equality by value", func(t *testing.T) {
		a, err := person.NewAddress("RU", "Moscow", "Tverskaya", "12", "", "")
		require.NoError(t, err)
		b, err := person.NewAddress("ru", "Moscow", "Tverskaya", "12", "", "")
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})
}
