package person_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	person "person-service/internal/domain/person"
)

func TestGenderIsDefined(t *testing.T) {
	assert.True(t, person.GenderNone.IsDefined())
	assert.True(t, person.GenderMale.IsDefined())
	assert.True(t, person.GenderFemale.IsDefined())
	assert.False(t, person.Gender("other").IsDefined())
	assert.False(t, person.Gender("").IsDefined())
}

func TestGenderString(t *testing.T) {
	assert.Equal(t, "male", person.GenderMale.String())
	assert.Equal(t, "female", person.GenderFemale.String())
	assert.Equal(t, "none", person.GenderNone.String())
}
