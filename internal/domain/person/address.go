package person

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	addressMaxCityLength        = 100
	addressMaxStreetLength      = 200
	addressMaxHouseNumberLength = 20
	addressMaxApartmentLength   = 20
)

var (
	countryCodeRegex = regexp.MustCompile(`^[A-Z]{2,3}$`)
	postalCodeRegex  = regexp.MustCompile(`^[\d\s\-]{3,10}$`)
)

// Address is a postal address. PostalCode and Apartment are optional; blank
// values are normalized to absent. The country code is stored uppercased.
type Address struct {
	countryCode string
	city        string
	street      string
	houseNumber string
	postalCode  string
	apartment   string
}

func NewAddress(countryCode, city, street, houseNumber, postalCode, apartment string) (Address, error) {
	cc, err := validateCountryCode(countryCode)
	if err != nil {
		return Address{}, err
	}
	ci, err := validateAddressField(city, "City", addressMaxCityLength)
	if err != nil {
		return Address{}, err
	}
	st, err := validateAddressField(street, "Street", addressMaxStreetLength)
	if err != nil {
		return Address{}, err
	}
	hn, err := validateAddressField(houseNumber, "HouseNumber", addressMaxHouseNumberLength)
	if err != nil {
		return Address{}, err
	}
	pc, err := validatePostalCode(postalCode)
	if err != nil {
		return Address{}, err
	}
	ap, err := validateOptionalAddressField(apartment, "Apartment", addressMaxApartmentLength)
	if err != nil {
		return Address{}, err
	}
	return Address{
		countryCode: cc,
		city:        ci,
		street:      st,
		houseNumber: hn,
		postalCode:  pc,
		apartment:   ap,
	}, nil
}

func (a Address) CountryCode() string { return a.countryCode }
func (a Address) City() string        { return a.city }
func (a Address) Street() string      { return a.street }
func (a Address) HouseNumber() string { return a.houseNumber }
func (a Address) PostalCode() string  { return a.postalCode }
func (a Address) Apartment() string   { return a.apartment }

func (a Address) Equal(other Address) bool { return a == other }

// String renders "{street} {houseNumber}[, apt {apartment}], {city}[, {postalCode}], {countryCode}".
func (a Address) String() string {
	parts := []string{a.street + " " + a.houseNumber}
	if a.apartment != "" {
		parts = append(parts, "apt "+a.apartment)
	}
	parts = append(parts, a.city)
	if a.postalCode != "" {
		parts = append(parts, a.postalCode)
	}
	parts = append(parts, a.countryCode)
	return strings.Join(parts, ", ")
}

func validateCountryCode(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", newInvalidValueObject("Address", "country code cannot be empty")
	}
	upper := strings.ToUpper(strings.TrimSpace(value))
	if !countryCodeRegex.MatchString(upper) {
		return "", newInvalidValueObject("Address",
			"country code must be in ISO format (2-3 uppercase letters)")
	}
	return upper, nil
}

func validateAddressField(value, fieldName string, maxLength int) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", newInvalidValueObject("Address", fieldName+" cannot be empty")
	}
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) > maxLength {
		return "", newInvalidValueObject("Address",
			fmt.Sprintf("%s cannot exceed %d characters", fieldName, maxLength))
	}
	return trimmed, nil
}

func validateOptionalAddressField(value, fieldName string, maxLength int) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return validateAddressField(value, fieldName, maxLength)
}

func validatePostalCode(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	trimmed := strings.TrimSpace(value)
	if !postalCodeRegex.MatchString(trimmed) {
		return "", newInvalidValueObject("Address", "invalid postal code format")
	}
	return trimmed, nil
}
