package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
)

func TestNormalizeUsernameIdempotent(t *testing.T) {
	cases := []string{"ali", "ALI", "ｆｕｌｌｗｉｄｔｈ", "café"}
	for _, c := range cases {
		once := NormalizeUsername(c)
		assert.Equal(t, once, NormalizeUsername(once), "normalizing twice must change nothing: %q", c)
	}
	// fullwidth latin folds onto plain ascii
	assert.Equal(t, "fullwidth", NormalizeUsername("ｆｕｌｌｗｉｄｔｈ"))
}

func TestCreateAccountRequiresUsername(t *testing.T) {
	svc := newAccounts(openTestDB(t))

	_, err := svc.CreateAccount("", entity.RoleCustomer, "pw", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestCreateAccountCustomerLeavesPersonUnset(t *testing.T) {
	svc := newAccounts(openTestDB(t))

	user, err := svc.CreateAccount("mina", entity.RoleCustomer, "pw", "")
	require.NoError(t, err)
	assert.Nil(t, user.PersonID)
	assert.True(t, user.IsActive)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestCreateAccountDuplicateUsername(t *testing.T) {
	svc := newAccounts(openTestDB(t))

	_, err := svc.CreateAccount("sara", entity.RoleCustomer, "pw", "")
	require.NoError(t, err)

	_, err = svc.CreateAccount("sara", entity.RoleBranchCashier, "pw", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestCreateAccountEmail(t *testing.T) {
	svc := newAccounts(openTestDB(t))

	user, err := svc.CreateAccount("mina", entity.RoleCustomer, "pw", "mina@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.Email)
	assert.Equal(t, "mina@example.com", *user.Email)

	_, err = svc.CreateAccount("sara", entity.RoleCustomer, "pw", "mina@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	// email stays optional
	plain, err := svc.CreateAccount("reza2", entity.RoleCustomer, "pw", "")
	require.NoError(t, err)
	assert.Nil(t, plain.Email)
}

func TestCreateSuperuser(t *testing.T) {
	svc := newAccounts(openTestDB(t))

	user, err := svc.CreateSuperuser("root", "pw")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin)
	assert.True(t, user.IsStaff())
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	svc := newAccounts(db)

	user, err := svc.CreateAccount("reza", entity.RoleCustomer, "secret-pw", "")
	require.NoError(t, err)
	require.Nil(t, user.LastLogin)

	token, logged, err := svc.Login("reza", "secret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	// login stamps last_login
	fresh, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, fresh.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAccounts(openTestDB(t))

	_, err := svc.CreateAccount("reza", entity.RoleCustomer, "secret-pw", "")
	require.NoError(t, err)

	_, _, err = svc.Login("reza", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc := newAccounts(openTestDB(t))

	user, err := svc.CreateAccount("reza", entity.RoleCustomer, "secret-pw", "")
	require.NoError(t, err)

	_, err = svc.SetActive([]uint{user.ID}, false)
	require.NoError(t, err)

	_, _, err = svc.Login("reza", "secret-pw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

func TestSetActiveBulk(t *testing.T) {
	db := openTestDB(t)
	svc := newAccounts(db)

	a, err := svc.CreateAccount("a", entity.RoleBranchCashier, "pw", "")
	require.NoError(t, err)
	b, err := svc.CreateAccount("b", entity.RoleBranchCashier, "pw", "")
	require.NoError(t, err)

	n, err := svc.SetActive([]uint{a.ID, b.ID}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	inactive := false
	users, err := svc.List(repository.UserFilter{IsActive: &inactive})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
