package person

import (
	"time"

	"github.com/google/uuid"

	domain "person-service/internal/domain/person"
)

// PersonModel is the persisted shape of the aggregate root. Value objects are
// flattened into columns; the normalized email carries the unique index that
// backs the cross-aggregate uniqueness rule.
type PersonModel struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid"`
	Surname        string    `gorm:"size:100;not null"`
	FirstName      string    `gorm:"size:100;not null"`
	Patronymic     *string   `gorm:"size:100"`
	Email          string    `gorm:"uniqueIndex;size:254;not null"`
	Phone          string    `gorm:"size:20;not null"`
	DateBirth      time.Time `gorm:"not null"`
	Gender         string    `gorm:"size:16;not null"`
	Comment        *string   `gorm:"size:1000"`
	CreatedAt      time.Time `gorm:"not null"`
	LastModifiedAt *time.Time

	WorkExperiences []WorkExperienceModel `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

func (PersonModel) TableName() string { return "persons" }

type WorkExperienceModel struct {
	ID              uuid.UUID `gorm:"primaryKey;type:uuid"`
	PersonID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Position        string    `gorm:"size:200;not null"`
	Organization    string    `gorm:"size:200;not null"`
	Description     string    `gorm:"size:2000;not null"`
	CountryCode     string    `gorm:"size:3;not null"`
	City            string    `gorm:"size:100;not null"`
	Street          string    `gorm:"size:200;not null"`
	HouseNumber     string    `gorm:"size:20;not null"`
	PostalCode      *string   `gorm:"size:10"`
	Apartment       *string   `gorm:"size:20"`
	DateEmployment  time.Time `gorm:"not null"`
	DateTermination *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	LastModifiedAt  *time.Time
}

func (WorkExperienceModel) TableName() string { return "work_experiences" }

// FromDomain flattens an aggregate into its row representation.
func FromDomain(p *domain.Person) *PersonModel {
	m := &PersonModel{
		ID:             p.ID(),
		Surname:        p.FullName().Surname(),
		FirstName:      p.FullName().FirstName(),
		Patronymic:     optional(p.FullName().Patronymic()),
		Email:          p.Email().Value(),
		Phone:          p.Phone().Value(),
		DateBirth:      p.DateBirth(),
		Gender:         p.Gender().String(),
		Comment:        optional(p.Comment()),
		CreatedAt:      p.CreatedAt(),
		LastModifiedAt: p.LastModifiedAt(),
	}
	for _, we := range p.WorkExperiences() {
		m.WorkExperiences = append(m.WorkExperiences, WorkExperienceModel{
			ID:              we.ID(),
			PersonID:        p.ID(),
			Position:        we.Position(),
			Organization:    we.Organization(),
			Description:     we.Description(),
			CountryCode:     we.Address().CountryCode(),
			City:            we.Address().City(),
			Street:          we.Address().Street(),
			HouseNumber:     we.Address().HouseNumber(),
			PostalCode:      optional(we.Address().PostalCode()),
			Apartment:       optional(we.Address().Apartment()),
			DateEmployment:  we.DateEmployment(),
			DateTermination: we.DateTermination(),
			CreatedAt:       we.CreatedAt(),
			LastModifiedAt:  we.LastModifiedAt(),
		})
	}
	return m
}

// ToDomain rebuilds the aggregate from rows. Value objects go back through
// their constructors, so a corrupted row surfaces as an error instead of a
// half-valid aggregate.
func ToDomain(m *PersonModel) (*domain.Person, error) {
	fullName, err := domain.NewFullName(m.Surname, m.FirstName, deref(m.Patronymic))
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmail(m.Email)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewPhone(m.Phone)
	if err != nil {
		return nil, err
	}

	state := domain.PersonState{
		ID:             m.ID,
		CreatedAt:      m.CreatedAt,
		LastModifiedAt: m.LastModifiedAt,
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
		DateBirth:      m.DateBirth,
		Gender:         domain.Gender(m.Gender),
		Comment:        deref(m.Comment),
	}
	for _, we := range m.WorkExperiences {
		address, err := domain.NewAddress(we.CountryCode, we.City, we.Street, we.HouseNumber,
			deref(we.PostalCode), deref(we.Apartment))
		if err != nil {
			return nil, err
		}
		state.WorkExperiences = append(state.WorkExperiences, domain.WorkExperienceState{
			ID:              we.ID,
			CreatedAt:       we.CreatedAt,
			LastModifiedAt:  we.LastModifiedAt,
			Position:        we.Position,
			Organization:    we.Organization,
			Address:         address,
			Description:     we.Description,
			DateEmployment:  we.DateEmployment,
			DateTermination: we.DateTermination,
		})
	}
	return domain.Rehydrate(state), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
