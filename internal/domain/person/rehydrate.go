package person

import (
	"time"

	"github.com/google/uuid"
)

// PersonState is the persisted snapshot of a Person aggregate. The persistence
// adapter uses it to rebuild an aggregate without re-running creation-time id
// and timestamp assignment; value objects are reconstructed through their own
// constructors before being placed here.
type PersonState struct {
	ID              uuid.UUID
	CreatedAt       time.Time
	LastModifiedAt  *time.Time
	FullName        FullName
	Email           Email
	Phone           Phone
	DateBirth       time.Time
	Gender          Gender
	Comment         string
	WorkExperiences []WorkExperienceState
}

// WorkExperienceState is the persisted snapshot of a child entry.
type WorkExperienceState struct {
	ID              uuid.UUID
	CreatedAt       time.Time
	LastModifiedAt  *time.Time
	Position        string
	Organization    string
	Address         Address
	Description     string
	DateEmployment  time.Time
	DateTermination *time.Time
}

// Rehydrate rebuilds an aggregate from its persisted state. The store is
// trusted: rows were validated on the way in, and age-window checks must not
// make an aggregate unreadable once time has passed.
func Rehydrate(s PersonState) *Person {
	p := &Person{
		EntityMeta: EntityMeta{id: s.ID, createdAt: s.CreatedAt, lastModifiedAt: copyTime(s.LastModifiedAt)},
		fullName:   s.FullName,
		email:      s.Email,
		phone:      s.Phone,
		dateBirth:  s.DateBirth,
		gender:     s.Gender,
		comment:    s.Comment,
	}
	for _, ws := range s.WorkExperiences {
		p.workExperiences = append(p.workExperiences, &WorkExperience{
			EntityMeta:      EntityMeta{id: ws.ID, createdAt: ws.CreatedAt, lastModifiedAt: copyTime(ws.LastModifiedAt)},
			position:        ws.Position,
			organization:    ws.Organization,
			address:         ws.Address,
			description:     ws.Description,
			dateEmployment:  ws.DateEmployment,
			dateTermination: copyTime(ws.DateTermination),
		})
	}
	return p
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
