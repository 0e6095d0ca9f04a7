package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) ListByBranch(branchID uint, state entity.TableState) ([]entity.Table, error) {
	q := r.DB.Where("branch_id = ?", branchID).Order("name")
	if state != "" {
		q = q.Where("state = ?", state)
	}

	var tables []entity.Table
	err := q.Find(&tables).Error
	return tables, err
}

// SetState flips the whole id set of one branch in a single UPDATE, so
// the bulk action is atomic from the caller's point of view.
func (r *TableRepository) SetState(branchID uint, ids []uint, state entity.TableState) (int64, error) {
	res := r.DB.Model(&entity.Table{}).
		Where("branch_id = ? AND id IN ?", branchID, ids).
		Update("state", state)
	return res.RowsAffected, res.Error
}

func (r *TableRepository) BelongsToBranch(id, branchID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).
		Where("id = ? AND branch_id = ?", id, branchID).Count(&count).Error
	return count > 0, err
}
