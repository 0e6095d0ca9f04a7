package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

// CreateWithUser persists a fresh account together with its profile. One
// transaction: a rejected profile must not leave the account behind.
func (r *CustomerRepository) CreateWithUser(user *entity.User, c *entity.Customer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		c.UserID = user.ID
		return tx.Create(c).Error
	})
}

func (r *CustomerRepository) FindByUserID(userID uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Preload("User").Preload("Province").Preload("City").
		First(&c, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Customer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *CustomerRepository) CountByPhone(phone string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Customer{}).Where("phone_number = ?", phone).Count(&count).Error
	return count, err
}

// CustomerFilter is the scoping predicate of the customer change list and
// its bulk actions.
type CustomerFilter struct {
	ProvinceID uint
	CityID     uint
	UserIDs    []uint
}

func (r *CustomerRepository) List(f CustomerFilter) ([]entity.Customer, error) {
	q := r.DB.Model(&entity.Customer{}).Preload("User").Preload("Province").Preload("City")
	if f.ProvinceID != 0 {
		q = q.Where("province_id = ?", f.ProvinceID)
	}
	if f.CityID != 0 {
		q = q.Where("city_id = ?", f.CityID)
	}
	if len(f.UserIDs) > 0 {
		q = q.Where("user_id IN ?", f.UserIDs)
	}

	var customers []entity.Customer
	err := q.Find(&customers).Error
	return customers, err
}

// SetActive updates is_active on the underlying accounts of every
// customer matching the predicate, in a single statement.
func (r *CustomerRepository) SetActive(f CustomerFilter, active bool) (int64, error) {
	sub := r.DB.Model(&entity.Customer{}).Select("user_id")
	if f.ProvinceID != 0 {
		sub = sub.Where("province_id = ?", f.ProvinceID)
	}
	if f.CityID != 0 {
		sub = sub.Where("city_id = ?", f.CityID)
	}
	if len(f.UserIDs) > 0 {
		sub = sub.Where("user_id IN ?", f.UserIDs)
	}

	res := r.DB.Model(&entity.User{}).Where("id IN (?)", sub).Update("is_active", active)
	return res.RowsAffected, res.Error
}
