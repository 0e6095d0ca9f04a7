package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type FoodCollectionRepository struct {
	DB *gorm.DB
}

func NewFoodCollectionRepository(db *gorm.DB) *FoodCollectionRepository {
	return &FoodCollectionRepository{DB: db}
}

func (r *FoodCollectionRepository) FindByID(id uint) (*entity.FoodCollection, error) {
	var fc entity.FoodCollection
	if err := r.DB.Preload("CollaborationRequest").Preload("Manager").Preload("Branches").
		First(&fc, id).Error; err != nil {
		return nil, err
	}
	return &fc, nil
}

func (r *FoodCollectionRepository) FindByManager(managerID uint) (*entity.FoodCollection, error) {
	var fc entity.FoodCollection
	if err := r.DB.Preload("Branches").First(&fc, "manager_id = ?", managerID).Error; err != nil {
		return nil, err
	}
	return &fc, nil
}

func (r *FoodCollectionRepository) List(search string) ([]entity.FoodCollection, error) {
	q := r.DB.Model(&entity.FoodCollection{}).Preload("Manager").Order("full_name")
	if search != "" {
		q = q.Where("full_name LIKE ? OR guild_id LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var fcs []entity.FoodCollection
	err := q.Find(&fcs).Error
	return fcs, err
}

func (r *FoodCollectionRepository) CountByRequest(requestID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.FoodCollection{}).
		Where("collaboration_request_id = ?", requestID).Count(&count).Error
	return count, err
}
