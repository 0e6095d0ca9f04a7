package entity

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleManager       Role = "manager"
	RoleBranchManager Role = "branchManager"
	RoleBranchCashier Role = "branchCashier"
	RoleAdmin         Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleManager, RoleBranchManager, RoleBranchCashier, RoleAdmin:
		return true
	}
	return false
}

// User is the authenticatable principal. Biographical identity lives on
// Person; a User may exist without one (service accounts, fresh signups).
type User struct {
	gorm.Model
	Username string  `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email    *string `gorm:"uniqueIndex;size:255" json:"email,omitempty"`
	Password string  `json:"-"`

	IsActive bool `gorm:"not null;default:true" json:"isActive"`
	IsAdmin  bool `gorm:"not null;default:false" json:"isAdmin"`

	Role Role `gorm:"size:20;not null;check:role IN ('customer','manager','branchManager','branchCashier','admin')" json:"role"`

	PersonID *uint   `gorm:"uniqueIndex" json:"personId,omitempty"`
	Person   *Person `gorm:"constraint:OnDelete:CASCADE" json:"person,omitempty"`

	LastLogin *time.Time `json:"-"`

	// preload only when needed
	CustomerProfile   *Customer       `gorm:"foreignKey:UserID" json:"-"`
	ManagedCollection *FoodCollection `gorm:"foreignKey:ManagerID" json:"-"`
}

// IsStaff reports administrative capability. All admins are staff; this is
// the only authorization signal the rest of the system relies on.
func (u *User) IsStaff() bool {
	return u.IsAdmin
}

func (u *User) FullName() string {
	if u.Person != nil {
		return u.Person.FirstName + " " + u.Person.LastName
	}
	return u.Username
}
