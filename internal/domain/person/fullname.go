package person

import (
	"regexp"
	"strings"
)

const (
	nameMinLength = 1
	nameMaxLength = 100
)

var nameRegex = regexp.MustCompile(`^[\p{L}\s\-']+$`)

// FullName is the surname/first name/patronymic triple of a person. The
// patronymic is optional; a blank value is normalized to absent.
type FullName struct {
	surname    string
	firstName  string
	patronymic string
}

func NewFullName(surname, firstName, patronymic string) (FullName, error) {
	s, err := validateNamePart(surname, "Surname")
	if err != nil {
		return FullName{}, err
	}
	f, err := validateNamePart(firstName, "FirstName")
	if err != nil {
		return FullName{}, err
	}
	p, err := validateOptionalNamePart(patronymic, "Patronymic")
	if err != nil {
		return FullName{}, err
	}
	return FullName{surname: s, firstName: f, patronymic: p}, nil
}

func (n FullName) Surname() string    { return n.surname }
func (n FullName) FirstName() string  { return n.firstName }
func (n FullName) Patronymic() string { return n.patronymic }

func (n FullName) Equal(other FullName) bool { return n == other }

func (n FullName) String() string {
	if n.patronymic == "" {
		return n.surname + " " + n.firstName
	}
	return n.surname + " " + n.firstName + " " + n.patronymic
}

func validateNamePart(value, fieldName string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", newInvalidValueObject("FullName", fieldName+" cannot be empty")
	}
	return validateTrimmedNamePart(strings.TrimSpace(value), fieldName)
}

func validateOptionalNamePart(value, fieldName string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return validateTrimmedNamePart(strings.TrimSpace(value), fieldName)
}

func validateTrimmedNamePart(trimmed, fieldName string) (string, error) {
	if len([]rune(trimmed)) < nameMinLength {
		return "", newInvalidValueObject("FullName",
			fieldName+" must contain at least 1 character")
	}
	if len([]rune(trimmed)) > nameMaxLength {
		return "", newInvalidValueObject("FullName",
			fieldName+" cannot exceed 100 characters")
	}
	if !nameRegex.MatchString(trimmed) {
		return "", newInvalidValueObject("FullName", fieldName+" contains invalid characters")
	}
	return trimmed, nil
}
