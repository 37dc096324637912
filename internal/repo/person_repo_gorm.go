package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "person-service/internal/domain/person"
	featperson "person-service/internal/feature/person"
)

// PersonRepo persists Person aggregates. The handle it wraps may be the root
// connection (reads) or a transaction opened by the unit of work (writes).
type PersonRepo struct {
	db *gorm.DB
}

func NewPersonRepo(db *gorm.DB) *PersonRepo { return &PersonRepo{db: db} }

func (r *PersonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	var m featperson.PersonModel
	err := r.db.WithContext(ctx).
		Preload("WorkExperiences", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return featperson.ToDomain(&m)
}

func (r *PersonRepo) GetAll(ctx context.Context) ([]*domain.Person, error) {
	var models []featperson.PersonModel
	err := r.db.WithContext(ctx).
		Preload("WorkExperiences", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	persons := make([]*domain.Person, 0, len(models))
	for i := range models {
		p, err := featperson.ToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, nil
}

func (r *PersonRepo) Add(ctx context.Context, p *domain.Person) error {
	m := featperson.FromDomain(p)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PersonRepo) Update(ctx context.Context, p *domain.Person) error {
	m := featperson.FromDomain(p)

	// Children removed from the aggregate have to go away too; Save only
	// upserts what is still present.
	keep := make([]uuid.UUID, 0, len(m.WorkExperiences))
	for _, we := range m.WorkExperiences {
		keep = append(keep, we.ID)
	}
	q := r.db.WithContext(ctx).Where("person_id = ?", m.ID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	if err := q.Delete(&featperson.WorkExperienceModel{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(m).Error
}

func (r *PersonRepo) Delete(ctx context.Context, p *domain.Person) error {
	// The FK constraint cascades the children.
	return r.db.WithContext(ctx).Delete(&featperson.PersonModel{}, "id = ?", p.ID()).Error
}

func (r *PersonRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&featperson.PersonModel{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *PersonRepo) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&featperson.PersonModel{}).
		Where("email = ?", email)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
