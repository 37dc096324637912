package person

import (
	"fmt"
	"strings"
	"time"
)

const (
	workExperienceMinFieldLength    = 1
	workExperienceMaxPositionLength = 200
	workExperienceMaxOrgLength      = 200
	workExperienceMaxDescLength     = 2000
)

// WorkExperience is a child entity of Person. It is created and mutated only
// through the owning aggregate's methods.
type WorkExperience struct {
	EntityMeta
	position        string
	organization    string
	address         Address
	description     string
	dateEmployment  time.Time
	dateTermination *time.Time
}

func newWorkExperience(position, organization string, address Address, description string,
	dateEmployment time.Time, dateTermination *time.Time) (*WorkExperience, error) {

	we := &WorkExperience{EntityMeta: newEntityMeta()}
	if err := we.set(position, organization, address, description, dateEmployment, dateTermination); err != nil {
		return nil, err
	}
	return we, nil
}

func (we *WorkExperience) update(position, organization string, address Address, description string,
	dateEmployment time.Time, dateTermination *time.Time) error {

	if err := we.set(position, organization, address, description, dateEmployment, dateTermination); err != nil {
		return err
	}
	we.touch()
	return nil
}

func (we *WorkExperience) set(position, organization string, address Address, description string,
	dateEmployment time.Time, dateTermination *time.Time) error {

	pos, err := validateWorkExperienceField(position, "Position", workExperienceMaxPositionLength)
	if err != nil {
		return err
	}
	org, err := validateWorkExperienceField(organization, "Organization", workExperienceMaxOrgLength)
	if err != nil {
		return err
	}
	desc, err := validateWorkExperienceField(description, "Description", workExperienceMaxDescLength)
	if err != nil {
		return err
	}
	if err := validateDateEmployment(dateEmployment); err != nil {
		return err
	}
	term, err := validateDateTermination(dateEmployment, dateTermination)
	if err != nil {
		return err
	}

	we.position = pos
	we.organization = org
	we.address = address
	we.description = desc
	we.dateEmployment = dateEmployment
	we.dateTermination = term
	return nil
}

func (we *WorkExperience) Position() string          { return we.position }
func (we *WorkExperience) Organization() string      { return we.organization }
func (we *WorkExperience) Address() Address          { return we.address }
func (we *WorkExperience) Description() string       { return we.description }
func (we *WorkExperience) DateEmployment() time.Time { return we.dateEmployment }

func (we *WorkExperience) DateTermination() *time.Time {
	if we.dateTermination == nil {
		return nil
	}
	t := *we.dateTermination
	return &t
}

// IsCurrentJob reports whether the experience has no termination date.
func (we *WorkExperience) IsCurrentJob() bool { return we.dateTermination == nil }

// Equal compares by identity; transient entities compare by reference.
func (we *WorkExperience) Equal(other *WorkExperience) bool {
	if we == nil || other == nil {
		return we == other
	}
	if we.IsTransient() || other.IsTransient() {
		return we == other
	}
	return we.id == other.id
}

func validateWorkExperienceField(value, fieldName string, maxLength int) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", newInvalidEntity("WorkExperience", fieldName+" cannot be empty")
	}
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) < workExperienceMinFieldLength {
		return "", newInvalidEntity("WorkExperience",
			fmt.Sprintf("%s must contain at least %d character", fieldName, workExperienceMinFieldLength))
	}
	if len([]rune(trimmed)) > maxLength {
		return "", newInvalidEntity("WorkExperience",
			fmt.Sprintf("%s cannot exceed %d characters", fieldName, maxLength))
	}
	return trimmed, nil
}

func validateDateEmployment(dateEmployment time.Time) error {
	if dateEmployment.After(time.Now().UTC()) {
		return newInvalidEntity("WorkExperience", "employment date cannot be in the future")
	}
	return nil
}

func validateDateTermination(dateEmployment time.Time, dateTermination *time.Time) (*time.Time, error) {
	if dateTermination == nil {
		return nil, nil
	}
	if dateTermination.Before(dateEmployment) {
		return nil, newInvalidEntity("WorkExperience",
			"termination date cannot be earlier than employment date")
	}
	if dateTermination.After(time.Now().UTC()) {
		return nil, newInvalidEntity("WorkExperience", "termination date cannot be in the future")
	}
	term := *dateTermination
	return &term, nil
}
