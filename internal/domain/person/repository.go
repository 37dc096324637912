package person

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for Person aggregates. GetByID
// returns (nil, nil) when no aggregate matches the id.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Person, error)
	GetAll(ctx context.Context) ([]*Person, error)
	Add(ctx context.Context, p *Person) error
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, p *Person) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByEmail backs the cross-aggregate rule that no two persons share
	// an email. Pass uuid.Nil as excludeID to match against all persons.
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
