package repository

import (
	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

type PersonRepository struct {
	DB *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

func (r *PersonRepository) Create(p *entity.Person) error {
	return r.DB.Create(p).Error
}

// CreateAndLink writes the person and points the account at it in one
// transaction, so a failed link never strands the person row.
func (r *PersonRepository) CreateAndLink(userID uint, p *entity.Person) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&entity.User{}).Where("id = ?", userID).
			Update("person_id", p.ID).Error
	})
}

func (r *PersonRepository) FindByID(id uint) (*entity.Person, error) {
	var p entity.Person
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) CountByNationalCode(code string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Person{}).Where("national_code = ?", code).Count(&count).Error
	return count, err
}
