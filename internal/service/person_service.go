package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"person-service/internal/core/database"
	domain "person-service/internal/domain/person"
	featperson "person-service/internal/feature/person"
)

// PersonServiceArgs contains the collaborators of the PersonService.
type PersonServiceArgs struct {
	// Tx wraps write operations in retryable transactions.
	Tx database.TxManager

	// Reader serves read operations outside a transaction.
	Reader domain.Repository

	// RepoFor builds a repository bound to a transaction handle.
	RepoFor func(tx *gorm.DB) domain.Repository

	Log *zap.Logger

	// RetryCount bounds automatic retries on serialization conflicts.
	RetryCount int
}

func NewPersonService(args PersonServiceArgs) *PersonService {
	return &PersonService{
		tx:         args.Tx,
		reader:     args.Reader,
		repoFor:    args.RepoFor,
		log:        args.Log,
		retryCount: args.RetryCount,
	}
}

// PersonService orchestrates the person lifecycle: it builds value objects
// from requests, drives the aggregate's mutators, and enforces the
// cross-aggregate email uniqueness rule that no single aggregate can see.
type PersonService struct {
	tx         database.TxManager
	reader     domain.Repository
	repoFor    func(tx *gorm.DB) domain.Repository
	log        *zap.Logger
	retryCount int
}

func (s *PersonService) Create(ctx context.Context, req *featperson.CreatePersonRequest) (*featperson.PersonResponse, error) {
	fullName, email, phone, err := buildValueObjects(req.Surname, req.FirstName, req.Patronymic, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	p, err := domain.NewPerson(fullName, email, phone, req.DateBirth, parseGender(req.Gender), req.Comment)
	if err != nil {
		return nil, err
	}

	err = s.tx.ExecuteInTransaction(ctx, func(tx *gorm.DB) error {
		r := s.repoFor(tx)
		exists, err := r.ExistsByEmail(ctx, email.Value(), uuid.Nil)
		if err != nil {
			return fmt.Errorf("checking email uniqueness: %w", err)
		}
		if exists {
			return domain.NewDuplicate("Person", "Email", email.Value())
		}
		return r.Add(ctx, p)
	}, database.WithRetryCount(s.retryCount))
	if err != nil {
		return nil, err
	}
	return featperson.ResponseFrom(p), nil
}

func (s *PersonService) Update(ctx context.Context, personID uuid.UUID, req *featperson.UpdatePersonRequest) (*featperson.PersonResponse, error) {
	var resp *featperson.PersonResponse
	err := s.tx.ExecuteInTransaction(ctx, func(tx *gorm.DB) error {
		r := s.repoFor(tx)
		p, err := s.getOrNotFound(ctx, r, personID)
		if err != nil {
			return err
		}

		fullName, email, phone, err := buildValueObjects(req.Surname, req.FirstName, req.Patronymic, req.Email, req.Phone)
		if err != nil {
			return err
		}
		exists, err := r.ExistsByEmail(ctx, email.Value(), personID)
		if err != nil {
			return fmt.Errorf("checking email uniqueness: %w", err)
		}
		if exists {
			return domain.NewDuplicate("Person", "Email", email.Value())
		}

		if err := p.UpdatePersonalInfo(fullName, phone, parseGender(req.Gender), req.Comment); err != nil {
			return err
		}
		if err := p.UpdateEmail(email); err != nil {
			return err
		}
		if err := p.UpdateDateBirth(req.DateBirth); err != nil {
			return err
		}
		if err := r.Update(ctx, p); err != nil {
			return err
		}
		resp = featperson.ResponseFrom(p)
		return nil
	}, database.WithRetryCount(s.retryCount))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *PersonService) GetByID(ctx context.Context, personID uuid.UUID) (*featperson.PersonResponse, error) {
	p, err := s.getOrNotFound(ctx, s.reader, personID)
	if err != nil {
		return nil, err
	}
	return featperson.ResponseFrom(p), nil
}

func (s *PersonService) GetAll(ctx context.Context) ([]*featperson.PersonResponse, error) {
	persons, err := s.reader.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	out := make([]*featperson.PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, featperson.ResponseFrom(p))
	}
	return out, nil
}

func (s *PersonService) Delete(ctx context.Context, personID uuid.UUID) (*featperson.PersonResponse, error) {
	var resp *featperson.PersonResponse
	err := s.tx.ExecuteInTransaction(ctx, func(tx *gorm.DB) error {
		r := s.repoFor(tx)
		p, err := s.getOrNotFound(ctx, r, personID)
		if err != nil {
			return err
		}
		if err := r.Delete(ctx, p); err != nil {
			return err
		}
		resp = featperson.ResponseFrom(p)
		return nil
	}, database.WithRetryCount(s.retryCount))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *PersonService) AddWorkExperience(ctx context.Context, personID uuid.UUID, req *featperson.WorkExperienceRequest) (*featperson.PersonResponse, error) {
	return s.mutate(ctx, personID, func(p *domain.Person) error {
		address, err := domain.NewAddress(req.CountryCode, req.City, req.Street, req.HouseNumber,
			req.PostalCode, req.Apartment)
		if err != nil {
			return err
		}
		return p.AddWorkExperience(req.Position, req.Organization, address, req.Description,
			req.DateEmployment, req.DateTermination)
	})
}

func (s *PersonService) UpdateWorkExperience(ctx context.Context, personID, workExperienceID uuid.UUID, req *featperson.WorkExperienceRequest) (*featperson.PersonResponse, error) {
	return s.mutate(ctx, personID, func(p *domain.Person) error {
		address, err := domain.NewAddress(req.CountryCode, req.City, req.Street, req.HouseNumber,
			req.PostalCode, req.Apartment)
		if err != nil {
			return err
		}
		return p.UpdateWorkExperience(workExperienceID, req.Position, req.Organization, address,
			req.Description, req.DateEmployment, req.DateTermination)
	})
}

func (s *PersonService) DeleteWorkExperience(ctx context.Context, personID, workExperienceID uuid.UUID) (*featperson.PersonResponse, error) {
	return s.mutate(ctx, personID, func(p *domain.Person) error {
		return p.RemoveWorkExperience(workExperienceID)
	})
}

// mutate loads the aggregate, applies fn, and persists the result inside one
// retryable transaction.
func (s *PersonService) mutate(ctx context.Context, personID uuid.UUID, fn func(p *domain.Person) error) (*featperson.PersonResponse, error) {
	var resp *featperson.PersonResponse
	err := s.tx.ExecuteInTransaction(ctx, func(tx *gorm.DB) error {
		r := s.repoFor(tx)
		p, err := s.getOrNotFound(ctx, r, personID)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		if err := r.Update(ctx, p); err != nil {
			return err
		}
		resp = featperson.ResponseFrom(p)
		return nil
	}, database.WithRetryCount(s.retryCount))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *PersonService) getOrNotFound(ctx context.Context, r domain.Repository, personID uuid.UUID) (*domain.Person, error) {
	p, err := r.GetByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("loading person: %w", err)
	}
	if p == nil {
		return nil, domain.NewNotFound("Person", personID)
	}
	return p, nil
}

func buildValueObjects(surname, firstName, patronymic, email, phone string) (domain.FullName, domain.Email, domain.Phone, error) {
	fullName, err := domain.NewFullName(surname, firstName, patronymic)
	if err != nil {
		return domain.FullName{}, domain.Email{}, domain.Phone{}, err
	}
	em, err := domain.NewEmail(email)
	if err != nil {
		return domain.FullName{}, domain.Email{}, domain.Phone{}, err
	}
	ph, err := domain.NewPhone(phone)
	if err != nil {
		return domain.FullName{}, domain.Email{}, domain.Phone{}, err
	}
	return fullName, em, ph, nil
}

func parseGender(raw string) domain.Gender {
	return domain.Gender(strings.ToLower(strings.TrimSpace(raw)))
}
