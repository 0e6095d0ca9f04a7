package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

func newPersons(db *gorm.DB) *PersonService {
	return NewPersonService(repository.NewPersonRepository(db), repository.NewUserRepository(db))
}

func TestPersonCreate(t *testing.T) {
	svc := newPersons(openTestDB(t))

	p, err := svc.Create(PersonIn{
		FirstName:    " Mina ",
		LastName:     "Karimi",
		NationalCode: "0011223344",
		Gender:       entity.GenderWoman,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mina", p.FirstName)

	_, err = svc.Create(PersonIn{
		FirstName:    "Other",
		LastName:     "Person",
		NationalCode: "0011223344",
		Gender:       entity.GenderMan,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestPersonCreateBadNationalCode(t *testing.T) {
	svc := newPersons(openTestDB(t))

	_, err := svc.Create(PersonIn{
		FirstName:    "Mina",
		LastName:     "Karimi",
		NationalCode: "1234",
		Gender:       entity.GenderWoman,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestPersonCreateFor(t *testing.T) {
	db := openTestDB(t)
	svc := newPersons(db)
	accounts := newAccounts(db)

	user, err := accounts.CreateAccount("staff", entity.RoleBranchCashier, "pw", "")
	require.NoError(t, err)

	p, err := svc.CreateFor(user.ID, PersonIn{
		FirstName:    "Mina",
		LastName:     "Karimi",
		NationalCode: "0011223344",
		Gender:       entity.GenderWoman,
	})
	require.NoError(t, err)

	fresh, err := accounts.GetProfile(user.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.PersonID)
	assert.Equal(t, p.ID, *fresh.PersonID)

	_, err = svc.CreateFor(user.ID, PersonIn{
		FirstName:    "Sara",
		LastName:     "Karimi",
		NationalCode: "0055667788",
		Gender:       entity.GenderWoman,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestPersonCreateForUnknownUserLeavesNoPerson(t *testing.T) {
	db := openTestDB(t)
	svc := newPersons(db)

	_, err := svc.CreateFor(9999, PersonIn{
		FirstName:    "Mina",
		LastName:     "Karimi",
		NationalCode: "0011223344",
		Gender:       entity.GenderWoman,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	// the national code stays free, nothing was persisted
	var count int64
	require.NoError(t, db.Model(&entity.Person{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPersonLink(t *testing.T) {
	db := openTestDB(t)
	svc := newPersons(db)
	accounts := newAccounts(db)

	user, err := accounts.CreateAccount("linked", entity.RoleBranchCashier, "pw", "")
	require.NoError(t, err)
	p, err := svc.Create(PersonIn{
		FirstName:    "Mina",
		LastName:     "Karimi",
		NationalCode: "0011223344",
		Gender:       entity.GenderWoman,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Link(user.ID, p.ID))

	fresh, err := accounts.GetProfile(user.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.PersonID)
	assert.Equal(t, p.ID, *fresh.PersonID)
	assert.Equal(t, "Mina Karimi", fresh.FullName())
}
