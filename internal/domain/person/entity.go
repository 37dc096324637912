package person

import (
	"time"

	"github.com/google/uuid"
)

// EntityMeta carries the identity and audit timestamps shared by all domain
// entities. An entity with the zero id is transient: it has not been assigned
// an identity yet and is compared by reference.
type EntityMeta struct {
	id             uuid.UUID
	createdAt      time.Time
	lastModifiedAt *time.Time
}

func newEntityMeta() EntityMeta {
	return EntityMeta{id: uuid.New(), createdAt: time.Now().UTC()}
}

func (m *EntityMeta) ID() uuid.UUID        { return m.id }
func (m *EntityMeta) CreatedAt() time.Time { return m.createdAt }
func (m *EntityMeta) IsTransient() bool    { return m.id == uuid.Nil }

// LastModifiedAt is nil until the first mutation.
func (m *EntityMeta) LastModifiedAt() *time.Time {
	if m.lastModifiedAt == nil {
		return nil
	}
	t := *m.lastModifiedAt
	return &t
}

func (m *EntityMeta) touch() {
	now := time.Now().UTC()
	m.lastModifiedAt = &now
}
