package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type CollaborationRepository struct {
	DB *gorm.DB
}

func NewCollaborationRepository(db *gorm.DB) *CollaborationRepository {
	return &CollaborationRepository{DB: db}
}

// CreateRequest writes the application record. Requests are append-only;
// no update method exists on purpose.
func (r *CollaborationRepository) CreateRequest(req *entity.CollaborationRequest) error {
	return r.DB.Create(req).Error
}

func (r *CollaborationRepository) FindRequest(id uint) (*entity.CollaborationRequest, error) {
	var req entity.CollaborationRequest
	if err := r.DB.Preload("FoodCollection").First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *CollaborationRepository) CountByNationalCode(code string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.CollaborationRequest{}).
		Where("applicant_national_code = ?", code).Count(&count).Error
	return count, err
}

// RequestFilter narrows the request list: pending means no food
// collection references the request yet; From/To bound the request date
// (To exclusive, zero values unbounded).
type RequestFilter struct {
	PendingOnly bool
	From        time.Time
	To          time.Time
}

func (r *CollaborationRepository) ListRequests(f RequestFilter) ([]entity.CollaborationRequest, error) {
	q := r.DB.Model(&entity.CollaborationRequest{}).Preload("FoodCollection").Order("id DESC")
	if f.PendingOnly {
		q = q.Where("id NOT IN (?)",
			r.DB.Model(&entity.FoodCollection{}).Select("collaboration_request_id"))
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var reqs []entity.CollaborationRequest
	err := q.Find(&reqs).Error
	return reqs, err
}

// Approve creates the food collection from its request and promotes the
// managing account, as one transaction.
func (r *CollaborationRepository) Approve(fc *entity.FoodCollection) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fc).Error; err != nil {
			return err
		}

		// customers stepping up to run a collection become managers;
		// staff roles are left alone
		return tx.Model(&entity.User{}).
			Where("id = ?", fc.ManagerID).
			Where("role = ?", entity.RoleCustomer).
			Update("role", entity.RoleManager).Error
	})
}
