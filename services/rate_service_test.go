package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/repository"
)

func newRates(db *gorm.DB) *RateService {
	return NewRateService(
		repository.NewRateRepository(db),
		repository.NewBranchRepository(db),
		repository.NewCustomerRepository(db),
	)
}

func TestRateSubmitAndList(t *testing.T) {
	db := openTestDB(t)
	svc := newRates(db)
	branch := seedBranch(t, db, "rated")
	customer := seedCustomer(t, db, "critic")

	rate, err := svc.Submit(customer.UserID, branch.ID, "great", "would come again")
	require.NoError(t, err)
	assert.Equal(t, branch.ID, rate.BranchID)

	forBranch, err := svc.ListForBranch(branch.ID)
	require.NoError(t, err)
	assert.Len(t, forBranch, 1)

	forCustomer, err := svc.ListForCustomer(customer.UserID)
	require.NoError(t, err)
	assert.Len(t, forCustomer, 1)
}

func TestRateSubmitRequiresTitle(t *testing.T) {
	db := openTestDB(t)
	svc := newRates(db)
	branch := seedBranch(t, db, "untitled")
	customer := seedCustomer(t, db, "quiet")

	_, err := svc.Submit(customer.UserID, branch.ID, "   ", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestRateSubmitUnknownTargets(t *testing.T) {
	db := openTestDB(t)
	svc := newRates(db)
	branch := seedBranch(t, db, "known")
	customer := seedCustomer(t, db, "known-one")

	_, err := svc.Submit(9999, branch.ID, "title", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = svc.Submit(customer.UserID, 9999, "title", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
