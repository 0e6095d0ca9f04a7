package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

// RateRepository is append-and-read only; a rate has no update path.
type RateRepository struct {
	DB *gorm.DB
}

func NewRateRepository(db *gorm.DB) *RateRepository {
	return &RateRepository{DB: db}
}

func (r *RateRepository) Create(rate *entity.Rate) error {
	return r.DB.Create(rate).Error
}

func (r *RateRepository) FindByID(id uint) (*entity.Rate, error) {
	var rate entity.Rate
	if err := r.DB.First(&rate, id).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *RateRepository) ListByBranch(branchID uint) ([]entity.Rate, error) {
	var rates []entity.Rate
	err := r.DB.Where("branch_id = ?", branchID).Order("id DESC").Find(&rates).Error
	return rates, err
}

func (r *RateRepository) ListByCustomer(customerID uint) ([]entity.Rate, error) {
	var rates []entity.Rate
	err := r.DB.Where("customer_id = ?", customerID).Order("id DESC").Find(&rates).Error
	return rates, err
}
