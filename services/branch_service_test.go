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

func newBranches(db *gorm.DB) *BranchService {
	return NewBranchService(
		repository.NewBranchRepository(db),
		repository.NewFoodCollectionRepository(db),
		repository.NewGeoRepository(db),
	)
}

func TestBranchCreateAndRename(t *testing.T) {
	db := openTestDB(t)
	svc := newBranches(db)
	seeded := seedBranch(t, db, "downtown")

	branch, err := svc.Create(seeded.FoodCollectionID, "  uptown  ")
	require.NoError(t, err)
	assert.Equal(t, "uptown", branch.Name)

	require.NoError(t, svc.Rename(branch.ID, "uptown II"))
	fresh, err := svc.Get(branch.ID)
	require.NoError(t, err)
	assert.Equal(t, "uptown II", fresh.Name)

	branches, err := svc.List(seeded.FoodCollectionID)
	require.NoError(t, err)
	assert.Len(t, branches, 2)
}

func TestBranchCreateUnknownCollection(t *testing.T) {
	svc := newBranches(openTestDB(t))

	_, err := svc.Create(9999, "nowhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestSetLocationReplacesPrevious(t *testing.T) {
	db := openTestDB(t)
	svc := newBranches(db)
	branch := seedBranch(t, db, "located")
	province, city := seedGeo(t, db)

	_, err := svc.SetLocation(branch.ID, LocationIn{
		ProvinceID: province.ID,
		CityID:     city.ID,
		Address:    "Valiasr St. 12",
	})
	require.NoError(t, err)

	_, err = svc.SetLocation(branch.ID, LocationIn{
		ProvinceID: province.ID,
		CityID:     city.ID,
		Address:    "Enghelab Sq. 3",
	})
	require.NoError(t, err)

	var locations []entity.Location
	require.NoError(t, db.Where("branch_id = ?", branch.ID).Find(&locations).Error)
	require.Len(t, locations, 1)
	assert.Equal(t, "Enghelab Sq. 3", locations[0].Address)
}

func TestSetCallContactValidatesNumbers(t *testing.T) {
	db := openTestDB(t)
	svc := newBranches(db)
	branch := seedBranch(t, db, "phoned")

	_, err := svc.SetCallContact(branch.ID, CallContactIn{PhoneNumber1: "1234"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	cc, err := svc.SetCallContact(branch.ID, CallContactIn{
		PhoneNumber1: "12345678",
		MobileNumber: "123456789",
	})
	require.NoError(t, err)
	assert.Nil(t, cc.PhoneNumber2)
	require.NotNil(t, cc.MobileNumber)
	assert.Equal(t, "123456789", *cc.MobileNumber)
}

func TestBranchDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	svc := newBranches(db)
	branch := seedBranch(t, db, "doomed")
	customer := seedCustomer(t, db, "regular")

	table := entity.Table{Name: "t1", Capacity: 4, State: entity.TableFree, BranchID: branch.ID}
	require.NoError(t, db.Create(&table).Error)
	food := entity.Food{Name: "kabab", BranchID: branch.ID}
	require.NoError(t, db.Create(&food).Error)
	order := entity.Order{Type: entity.OrderTakeaway, CustomerID: customer.UserID, BranchID: branch.ID}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&entity.OrderFood{OrderID: order.ID, FoodID: food.ID, Quantity: 2}).Error)
	rate := entity.Rate{Title: "good", Text: "tasty", CustomerID: customer.UserID, BranchID: branch.ID}
	require.NoError(t, db.Create(&rate).Error)

	require.NoError(t, svc.Delete(branch.ID))

	_, err := svc.Get(branch.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	var count int64
	for _, model := range []any{&entity.Table{}, &entity.Food{}, &entity.Order{}, &entity.Rate{}} {
		require.NoError(t, db.Model(model).Where("branch_id = ?", branch.ID).Count(&count).Error)
		assert.Zero(t, count)
	}
	require.NoError(t, db.Model(&entity.OrderFood{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
}
