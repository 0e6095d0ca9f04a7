package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(f *entity.Food) error {
	return r.DB.Create(f).Error
}

// CreateBatch inserts an imported menu in one transaction; a bad row
// aborts the whole import.
func (r *FoodRepository) CreateBatch(foods []entity.Food) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&foods).Error
	})
}

func (r *FoodRepository) FindByID(id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) ListByBranch(branchID uint) ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.Where("branch_id = ?", branchID).Order("name").Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) UpdatePrice(id uint, price decimal.Decimal) error {
	return r.DB.Model(&entity.Food{}).Where("id = ?", id).Update("price", price).Error
}

// CountInBranch reports how many of the given foods live in the branch.
func (r *FoodRepository) CountInBranch(ids []uint, branchID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Food{}).
		Where("id IN ? AND branch_id = ?", ids, branchID).Count(&count).Error
	return count, err
}
