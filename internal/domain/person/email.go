package person

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	emailMaxLength       = 254
	emailMaxLocalLength  = 64
	emailMaxDomainLength = 255
)

// Accepts dotted-atom and quoted-string local parts, dotted-label and
// IPv4-literal domains. Case-insensitive; the stored value is lowercased.
var emailRegex = regexp.MustCompile(
	`^(?i)(?:[0-9a-z!#$%&'*+/=?^_` + "`" + `{}|~-]+(?:\.[0-9a-z!#$%&'*+/=?^_` + "`" + `{}|~-]+)*|"(?:[^"\\]|\\.)+")` +
		`@(?:\[(?:\d{1,3}\.){3}\d{1,3}\]|(?:[0-9a-z](?:[0-9a-z-]*[0-9a-z])?\.)+[a-z0-9](?:[a-z0-9-]{0,22}[a-z0-9])?)$`)

// Email is a normalized (lowercased) email address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return Email{}, newInvalidValueObject("Email", "value cannot be empty")
	}
	trimmed := strings.TrimSpace(value)

	if len(trimmed) > emailMaxLength {
		return Email{}, newInvalidValueObject("Email",
			fmt.Sprintf("length cannot exceed %d characters", emailMaxLength))
	}
	parts := strings.Split(trimmed, "@")
	if len(parts) != 2 {
		return Email{}, newInvalidValueObject("Email", "invalid email format")
	}
	if len(parts[0]) > emailMaxLocalLength {
		return Email{}, newInvalidValueObject("Email",
			fmt.Sprintf("local part cannot exceed %d characters", emailMaxLocalLength))
	}
	if len(parts[1]) > emailMaxDomainLength {
		return Email{}, newInvalidValueObject("Email",
			fmt.Sprintf("domain part cannot exceed %d characters", emailMaxDomainLength))
	}
	if !emailRegex.MatchString(trimmed) {
		return Email{}, newInvalidValueObject("Email", "invalid email format")
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) Value() string { return e.value }

func (e Email) Equal(other Email) bool { return e == other }

func (e Email) String() string { return e.value }
