package person

import (
	"time"

	"github.com/google/uuid"

	domain "person-service/internal/domain/person"
)

type CreatePersonRequest struct {
	Surname    string    `json:"surname" binding:"required"`
	FirstName  string    `json:"firstName" binding:"required"`
	Patronymic string    `json:"patronymic"`
	Email      string    `json:"email" binding:"required"`
	Phone      string    `json:"phone" binding:"required"`
	DateBirth  time.Time `json:"dateBirth" binding:"required"`
	Gender     string    `json:"gender" binding:"required"`
	Comment    string    `json:"comment"`
}

type UpdatePersonRequest struct {
	Surname    string    `json:"surname" binding:"required"`
	FirstName  string    `json:"firstName" binding:"required"`
	Patronymic string    `json:"patronymic"`
	Email      string    `json:"email" binding:"required"`
	Phone      string    `json:"phone" binding:"required"`
	DateBirth  time.Time `json:"dateBirth" binding:"required"`
	Gender     string    `json:"gender" binding:"required"`
	Comment    string    `json:"comment"`
}

type WorkExperienceRequest struct {
	Position        string     `json:"position" binding:"required"`
	Organization    string     `json:"organization" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	CountryCode     string     `json:"countryCode" binding:"required"`
	City            string     `json:"city" binding:"required"`
	Street          string     `json:"street" binding:"required"`
	HouseNumber     string     `json:"houseNumber" binding:"required"`
	PostalCode      string     `json:"postalCode"`
	Apartment       string     `json:"apartment"`
	DateEmployment  time.Time  `json:"dateEmployment" binding:"required"`
	DateTermination *time.Time `json:"dateTermination"`
}

type PersonResponse struct {
	ID              uuid.UUID                `json:"id"`
	Surname         string                   `json:"surname"`
	FirstName       string                   `json:"firstName"`
	Patronymic      string                   `json:"patronymic,omitempty"`
	FullName        string                   `json:"fullName"`
	Email           string                   `json:"email"`
	Phone           string                   `json:"phone"`
	DateBirth       time.Time                `json:"dateBirth"`
	Age             int                      `json:"age"`
	Gender          string                   `json:"gender"`
	Comment         string                   `json:"comment,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	LastModifiedAt  *time.Time               `json:"lastModifiedAt,omitempty"`
	WorkExperiences []WorkExperienceResponse `json:"workExperiences"`
}

type WorkExperienceResponse struct {
	ID              uuid.UUID       `json:"id"`
	Position        string          `json:"position"`
	Organization    string          `json:"organization"`
	Address         AddressResponse `json:"address"`
	Description     string          `json:"description"`
	DateEmployment  time.Time       `json:"dateEmployment"`
	DateTermination *time.Time      `json:"dateTermination,omitempty"`
	IsCurrentJob    bool            `json:"isCurrentJob"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastModifiedAt  *time.Time      `json:"lastModifiedAt,omitempty"`
}

type AddressResponse struct {
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	PostalCode  string `json:"postalCode,omitempty"`
	Apartment   string `json:"apartment,omitempty"`
	FullAddress string `json:"fullAddress"`
}

// ResponseFrom maps an aggregate to its API representation, including the
// derived age, isCurrentJob and fullAddress fields.
func ResponseFrom(p *domain.Person) *PersonResponse {
	resp := &PersonResponse{
		ID:              p.ID(),
		Surname:         p.FullName().Surname(),
		FirstName:       p.FullName().FirstName(),
		Patronymic:      p.FullName().Patronymic(),
		FullName:        p.FullName().String(),
		Email:           p.Email().Value(),
		Phone:           p.Phone().Value(),
		DateBirth:       p.DateBirth(),
		Age:             p.Age(),
		Gender:          p.Gender().String(),
		Comment:         p.Comment(),
		CreatedAt:       p.CreatedAt(),
		LastModifiedAt:  p.LastModifiedAt(),
		WorkExperiences: []WorkExperienceResponse{},
	}
	for _, we := range p.WorkExperiences() {
		resp.WorkExperiences = append(resp.WorkExperiences, WorkExperienceResponse{
			ID:           we.ID(),
			Position:     we.Position(),
			Organization: we.Organization(),
			Address: AddressResponse{
				CountryCode: we.Address().CountryCode(),
				City:        we.Address().City(),
				Street:      we.Address().Street(),
				HouseNumber: we.Address().HouseNumber(),
				PostalCode:  we.Address().PostalCode(),
				Apartment:   we.Address().Apartment(),
				FullAddress: we.Address().String(),
			},
			Description:     we.Description(),
			DateEmployment:  we.DateEmployment(),
			DateTermination: we.DateTermination(),
			IsCurrentJob:    we.IsCurrentJob(),
			CreatedAt:       we.CreatedAt(),
			LastModifiedAt:  we.LastModifiedAt(),
		})
	}
	return resp
}
