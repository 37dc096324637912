package person

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	phoneMinDigits = 10
	phoneMaxDigits = 15
)

var (
	phoneRegex    = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
	nonDigitRegex = regexp.MustCompile(`[^\d]`)
)

// Phone keeps the caller's formatting (apart from trimming); only the digit
// count and the character set are constrained.
type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	if strings.TrimSpace(value) == "" {
		return Phone{}, newInvalidValueObject("Phone", "value cannot be empty")
	}

	digitsOnly := nonDigitRegex.ReplaceAllString(value, "")
	if len(digitsOnly) < phoneMinDigits {
		return Phone{}, newInvalidValueObject("Phone",
			fmt.Sprintf("phone number must contain at least %d digits", phoneMinDigits))
	}
	if len(digitsOnly) > phoneMaxDigits {
		return Phone{}, newInvalidValueObject("Phone",
			fmt.Sprintf("phone number cannot contain more than %d digits", phoneMaxDigits))
	}
	if !phoneRegex.MatchString(value) {
		return Phone{}, newInvalidValueObject("Phone", "invalid phone format")
	}
	return Phone{value: strings.TrimSpace(value)}, nil
}

func (p Phone) Value() string { return p.value }

func (p Phone) Equal(other Phone) bool { return p == other }

func (p Phone) String() string { return p.value }
