package person

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	personMinAge           = 0
	personMaxAge           = 150
	personMaxCommentLength = 1000
)

// Person is the aggregate root. All mutation of the aggregate, including its
// work experience collection, goes through its methods; every successful
// mutation bumps LastModifiedAt. Construction goes through NewPerson, never a
// struct literal.
type Person struct {
	EntityMeta
	fullName        FullName
	email           Email
	phone           Phone
	dateBirth       time.Time
	gender          Gender
	comment         string
	workExperiences []*WorkExperience
}

// NewPerson validates all fields atomically; either the returned person is
// fully valid or an error is returned. LastModifiedAt stays nil until the
// first mutation.
func NewPerson(fullName FullName, email Email, phone Phone, dateBirth time.Time,
	gender Gender, comment string) (*Person, error) {

	if err := validateDateBirth(dateBirth); err != nil {
		return nil, err
	}
	if err := validateGender(gender); err != nil {
		return nil, err
	}
	trimmedComment, err := validateComment(comment)
	if err != nil {
		return nil, err
	}

	return &Person{
		EntityMeta: newEntityMeta(),
		fullName:   fullName,
		email:      email,
		phone:      phone,
		dateBirth:  dateBirth,
		gender:     gender,
		comment:    trimmedComment,
	}, nil
}

func (p *Person) FullName() FullName   { return p.fullName }
func (p *Person) Email() Email         { return p.email }
func (p *Person) Phone() Phone         { return p.phone }
func (p *Person) DateBirth() time.Time { return p.dateBirth }
func (p *Person) Gender() Gender       { return p.gender }

// Comment is empty when absent.
func (p *Person) Comment() string { return p.comment }

// WorkExperiences returns the collection in insertion order.
func (p *Person) WorkExperiences() []*WorkExperience {
	out := make([]*WorkExperience, len(p.workExperiences))
	copy(out, p.workExperiences)
	return out
}

// Age in full years relative to the current UTC date.
func (p *Person) Age() int { return ageAt(p.dateBirth, time.Now().UTC()) }

// UpdatePersonalInfo re-validates gender and comment; date of birth and email
// are not touched on this path (email has its own mutator).
func (p *Person) UpdatePersonalInfo(fullName FullName, phone Phone, gender Gender, comment string) error {
	if err := validateGender(gender); err != nil {
		return err
	}
	trimmedComment, err := validateComment(comment)
	if err != nil {
		return err
	}
	p.fullName = fullName
	p.phone = phone
	p.gender = gender
	p.comment = trimmedComment
	p.touch()
	return nil
}

func (p *Person) UpdateEmail(email Email) error {
	p.email = email
	p.touch()
	return nil
}

func (p *Person) UpdateDateBirth(dateBirth time.Time) error {
	if err := validateDateBirth(dateBirth); err != nil {
		return err
	}
	p.dateBirth = dateBirth
	p.touch()
	return nil
}

func (p *Person) AddWorkExperience(position, organization string, address Address, description string,
	dateEmployment time.Time, dateTermination *time.Time) error {

	we, err := newWorkExperience(position, organization, address, description, dateEmployment, dateTermination)
	if err != nil {
		return err
	}
	p.workExperiences = append(p.workExperiences, we)
	p.touch()
	return nil
}

func (p *Person) UpdateWorkExperience(workExperienceID uuid.UUID, position, organization string,
	address Address, description string, dateEmployment time.Time, dateTermination *time.Time) error {

	we, ok := p.findWorkExperience(workExperienceID)
	if !ok {
		return newInvalidEntity("Person",
			fmt.Sprintf("WorkExperience with Id %s not found", workExperienceID))
	}
	if err := we.update(position, organization, address, description, dateEmployment, dateTermination); err != nil {
		return err
	}
	p.touch()
	return nil
}

// RemoveWorkExperience is not idempotent: removing an absent id fails.
func (p *Person) RemoveWorkExperience(workExperienceID uuid.UUID) error {
	for i, we := range p.workExperiences {
		if we.ID() == workExperienceID {
			p.workExperiences = append(p.workExperiences[:i], p.workExperiences[i+1:]...)
			p.touch()
			return nil
		}
	}
	return newInvalidEntity("Person",
		fmt.Sprintf("WorkExperience with Id %s not found", workExperienceID))
}

// Equal compares by identity; transient entities compare by reference.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.IsTransient() || other.IsTransient() {
		return p == other
	}
	return p.id == other.id
}

func (p *Person) findWorkExperience(id uuid.UUID) (*WorkExperience, bool) {
	for _, we := range p.workExperiences {
		if we.ID() == id {
			return we, true
		}
	}
	return nil, false
}

func validateDateBirth(dateBirth time.Time) error {
	age := ageAt(dateBirth, time.Now().UTC())
	if age < personMinAge {
		return newInvalidEntity("Person", "date of birth cannot be in the future")
	}
	if age > personMaxAge {
		return newInvalidEntity("Person", fmt.Sprintf("age cannot exceed %d years", personMaxAge))
	}
	return nil
}

func validateGender(gender Gender) error {
	if !gender.IsDefined() {
		return newInvalidEntity("Person", "invalid gender value")
	}
	if gender == GenderNone {
		return newInvalidEntity("Person", "gender cannot be None")
	}
	return nil
}

func validateComment(comment string) (string, error) {
	if strings.TrimSpace(comment) == "" {
		return "", nil
	}
	trimmed := strings.TrimSpace(comment)
	if len([]rune(trimmed)) > personMaxCommentLength {
		return "", newInvalidEntity("Person",
			fmt.Sprintf("comment cannot exceed %d characters", personMaxCommentLength))
	}
	return trimmed, nil
}

// ageAt compares full month/day rather than a day-of-year ordinal, so the
// result stays correct across leap years.
func ageAt(dateBirth, today time.Time) int {
	age := today.Year() - dateBirth.Year()
	if today.Month() < dateBirth.Month() ||
		(today.Month() == dateBirth.Month() && today.Day() < dateBirth.Day()) {
		age--
	}
	return age
}
