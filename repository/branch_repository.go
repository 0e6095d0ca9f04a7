package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type BranchRepository struct {
	DB *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{DB: db}
}

func (r *BranchRepository) Create(b *entity.Branch) error {
	return r.DB.Create(b).Error
}

func (r *BranchRepository) FindByID(id uint) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.
		Preload("FoodCollection").
		Preload("Location").Preload("Location.Province").Preload("Location.City").
		Preload("CallContact").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) ListByCollection(collectionID uint) ([]entity.Branch, error) {
	var branches []entity.Branch
	q := r.DB.Preload("Location").Order("name")
	if collectionID != 0 {
		q = q.Where("food_collection_id = ?", collectionID)
	}
	err := q.Find(&branches).Error
	return branches, err
}

func (r *BranchRepository) Rename(id uint, name string) error {
	return r.DB.Model(&entity.Branch{}).Where("id = ?", id).Update("name", name).Error
}

// Delete removes the branch and everything scoped under it. Children go
// first so no orphan survives even without foreign_keys pragma support.
func (r *BranchRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		orderIDs := tx.Model(&entity.Order{}).Select("id").Where("branch_id = ?", id)
		if err := tx.Unscoped().Where("order_id IN (?)", orderIDs).Delete(&entity.OrderFood{}).Error; err != nil {
			return err
		}

		// children go out for real; a soft-deleted row would keep
		// holding its unique indexes (location place, contact phones)
		for _, child := range []any{
			&entity.Order{}, &entity.Rate{}, &entity.Food{}, &entity.Table{},
			&entity.Location{}, &entity.CallContact{},
		} {
			if err := tx.Unscoped().Where("branch_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&entity.Branch{}, id).Error
	})
}

// SaveLocation sets or replaces the branch's 1:1 location record.
func (r *BranchRepository) SaveLocation(loc *entity.Location) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("branch_id = ?", loc.BranchID).Delete(&entity.Location{}).Error; err != nil {
			return err
		}
		return tx.Create(loc).Error
	})
}

// SaveCallContact sets or replaces the branch's 1:1 contact record.
func (r *BranchRepository) SaveCallContact(cc *entity.CallContact) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("branch_id = ?", cc.BranchID).Delete(&entity.CallContact{}).Error; err != nil {
			return err
		}
		return tx.Create(cc).Error
	})
}

func (r *BranchRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Branch{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
