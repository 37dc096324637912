package person_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "person-service/internal/domain/person"
	featperson "person-service/internal/feature/person"
)

func buildPerson(t *testing.T) *domain.Person {
	t.Helper()
	fullName, err := domain.NewFullName("Ivanov", "Ivan", "Ivanovich")
	require.NoError(t, err)
	email, err := domain.NewEmail("ivan@example.com")
	require.NoError(t, err)
	phone, err := domain.NewPhone("+7 912 345-67-89")
	require.NoError(t, err)

	p, err := domain.NewPerson(fullName, email, phone,
		time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), domain.GenderMale, "note")
	require.NoError(t, err)

	address, err := domain.NewAddress("RU", "Moscow", "Tverskaya", "12", "125009", "34")
	require.NoError(t, err)
	require.NoError(t, p.AddWorkExperience("Engineer", "Acme", address, "Backend development",
		time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC), nil))
	return p
}

func TestModelRoundTrip(t *testing.T) {
	p := buildPerson(t)

	m := featperson.FromDomain(p)
	assert.Equal(t, p.ID(), m.ID)
	assert.Equal(t, "ivan@example.com", m.Email)
	require.NotNil(t, m.Patronymic)
	assert.Equal(t, "Ivanovich", *m.Patronymic)
	require.Len(t, m.WorkExperiences, 1)
	assert.Equal(t, p.ID(), m.WorkExperiences[0].PersonID)

	restored, err := featperson.ToDomain(m)
	require.NoError(t, err)
	assert.Equal(t, p.ID(), restored.ID())
	assert.Equal(t, p.FullName().String(), restored.FullName().String())
	assert.Equal(t, p.Email().Value(), restored.Email().Value())
	assert.Equal(t, p.Gender(), restored.Gender())
	assert.Equal(t, p.Comment(), restored.Comment())
	require.Len(t, restored.WorkExperiences(), 1)
	we := restored.WorkExperiences()[0]
	assert.Equal(t, p.WorkExperiences()[0].ID(), we.ID())
	assert.Equal(t, "Engineer", we.Position())
	assert.Equal(t, "RU", we.Address().CountryCode())
	assert.True(t, we.IsCurrentJob())
}

func TestToDomainRejectsCorruptedRow(t *testing.T) {
	p := buildPerson(t)
	m := featperson.FromDomain(p)
	m.Email = "not-an-email"

	_, err := featperson.ToDomain(m)
	require.Error(t, err)
	assert.True(t, domain.IsInvalid(err))
}

func TestResponseFrom(t *testing.T) {
	p := buildPerson(t)

	resp := featperson.ResponseFrom(p)
	assert.Equal(t, p.ID(), resp.ID)
	assert.Equal(t, "Ivanov Ivan Ivanovich", resp.FullName)
	assert.Equal(t, p.Age(), resp.Age)
	assert.Equal(t, "male", resp.Gender)
	require.Len(t, resp.WorkExperiences, 1)
	we := resp.WorkExperiences[0]
	assert.True(t, we.IsCurrentJob)
	assert.Equal(t, "Tverskaya 12, apt 34, Moscow, 125009, RU", we.Address.FullAddress)
	assert.Nil(t, we.DateTermination)
}

func TestResponseFromEmptyCollection(t *testing.T) {
	fullName, err := domain.NewFullName("Ivanov", "Ivan", "")
	require.NoError(t, err)
	email, err := domain.NewEmail("ivan@example.com")
	require.NoError(t, err)
	phone, err := domain.NewPhone("+7 912 345-67-89")
	require.NoError(t, err)
	p, err := domain.NewPerson(fullName, email, phone,
		time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), domain.GenderFemale, "")
	require.NoError(t, err)

	resp := featperson.ResponseFrom(p)
	assert.NotNil(t, resp.WorkExperiences)
	assert.Empty(t, resp.WorkExperiences)
	assert.Nil(t, resp.LastModifiedAt)
}
