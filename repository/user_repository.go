package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/softpro2020/foodland/entity"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Person").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// UserFilter mirrors the back-office change list: filter by activity and
// role, free-text search over username and the linked person's name.
type UserFilter struct {
	IsActive *bool
	Role     entity.Role
	Search   string
}

func (r *UserRepository) List(f UserFilter) ([]entity.User, error) {
	q := r.DB.Model(&entity.User{}).Preload("Person")
	if f.IsActive != nil {
		q = q.Where("users.is_active = ?", *f.IsActive)
	}
	if f.Role != "" {
		q = q.Where("users.role = ?", f.Role)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Joins("LEFT JOIN people ON people.id = users.person_id").
			Where("users.username LIKE ? OR people.first_name LIKE ? OR people.last_name LIKE ?", like, like, like)
	}

	var users []entity.User
	err := q.Order("users.username").Find(&users).Error
	return users, err
}

// SetActive flips is_active for the whole id set in one statement.
func (r *UserRepository) SetActive(ids []uint, active bool) (int64, error) {
	res := r.DB.Model(&entity.User{}).Where("id IN ?", ids).Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("last_login", at).Error
}

// LinkPerson attaches a biographical record to the account.
func (r *UserRepository) LinkPerson(userID, personID uint) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Update("person_id", personID).Error
}
