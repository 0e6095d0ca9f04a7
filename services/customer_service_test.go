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

func newCustomers(db *gorm.DB) *CustomerService {
	return NewCustomerService(
		repository.NewCustomerRepository(db),
		repository.NewGeoRepository(db),
		newAccounts(db),
	)
}

func seedGeo(t *testing.T, db *gorm.DB) (entity.Province, entity.City) {
	t.Helper()
	province := entity.Province{Name: "تهران"}
	require.NoError(t, db.Create(&province).Error)
	city := entity.City{Name: "تهران", ProvinceID: province.ID}
	require.NoError(t, db.Create(&city).Error)
	return province, city
}

func TestRegisterCustomer(t *testing.T) {
	db := openTestDB(t)
	svc := newCustomers(db)
	province, city := seedGeo(t, db)

	customer, err := svc.Register("newbie", "pw", "", CustomerProfileIn{
		PhoneNumber: "123456789",
		ProvinceID:  province.ID,
		CityID:      city.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, customer.PhoneNumber)
	assert.Equal(t, "123456789", *customer.PhoneNumber)

	fetched, err := svc.Get(customer.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, fetched.User.Role)
}

func TestRegisterRejectedProfileLeavesNoAccount(t *testing.T) {
	db := openTestDB(t)
	svc := newCustomers(db)
	province, city := seedGeo(t, db)

	_, err := svc.Register("first", "pw", "", CustomerProfileIn{
		PhoneNumber: "123456789",
		ProvinceID:  province.ID,
		CityID:      city.ID,
	})
	require.NoError(t, err)

	_, err = svc.Register("second", "pw", "", CustomerProfileIn{PhoneNumber: "123456789"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Where("username = ?", "second").Count(&count).Error)
	assert.Zero(t, count, "failed registration must not keep the account")

	// the username is still free for a corrected retry
	_, err = svc.Register("second", "pw", "", CustomerProfileIn{PhoneNumber: "987654321"})
	require.NoError(t, err)
}

func TestAttachProfilePhoneMustBeNineDigits(t *testing.T) {
	db := openTestDB(t)
	svc := newCustomers(db)
	user, err := newAccounts(db).CreateAccount("short", entity.RoleCustomer, "pw", "")
	require.NoError(t, err)

	for _, phone := range []string{"12345", "1234567890", "12345678x"} {
		_, err := svc.AttachProfile(user.ID, CustomerProfileIn{PhoneNumber: phone})
		require.Error(t, err, "phone %q", phone)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	}
}

func TestAttachProfileTwiceConflicts(t *testing.T) {
	db := openTestDB(t)
	svc := newCustomers(db)
	user, err := newAccounts(db).CreateAccount("once", entity.RoleCustomer, "pw", "")
	require.NoError(t, err)

	_, err = svc.AttachProfile(user.ID, CustomerProfileIn{})
	require.NoError(t, err)

	_, err = svc.AttachProfile(user.ID, CustomerProfileIn{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestAttachProfileCityMustMatchProvince(t *testing.T) {
	db := openTestDB(t)
	svc := newCustomers(db)
	_, city := seedGeo(t, db)
	other := entity.Province{Name: "فارس"}
	require.NoError(t, db.Create(&other).Error)

	user, err := newAccounts(db).CreateAccount("misplaced", entity.RoleCustomer, "pw", "")
	require.NoError(t, err)

	_, err = svc.AttachProfile(user.ID, CustomerProfileIn{ProvinceID: other.ID, CityID: city.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestCustomerSetActiveByProvince(t *testing.T) {
	db := openTestDB(t)
	svc := newCustomers(db)
	province, city := seedGeo(t, db)

	first, err := svc.Register("first", "pw", "", CustomerProfileIn{ProvinceID: province.ID, CityID: city.ID})
	require.NoError(t, err)
	second, err := svc.Register("second", "pw", "", CustomerProfileIn{ProvinceID: province.ID})
	require.NoError(t, err)
	outsider, err := svc.Register("outsider", "pw", "", CustomerProfileIn{})
	require.NoError(t, err)

	n, err := svc.SetActive(repository.CustomerFilter{ProvinceID: province.ID}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var users []entity.User
	require.NoError(t, db.Find(&users, []uint{first.UserID, second.UserID, outsider.UserID}).Error)
	for _, u := range users {
		if u.ID == outsider.UserID {
			assert.True(t, u.IsActive)
		} else {
			assert.False(t, u.IsActive)
		}
	}
}

func TestCustomerSetActiveNeedsAPredicate(t *testing.T) {
	svc := newCustomers(openTestDB(t))

	_, err := svc.SetActive(repository.CustomerFilter{}, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}
