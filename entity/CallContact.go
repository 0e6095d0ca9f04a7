package entity

import (
	"gorm.io/gorm"
)

// CallContact holds the contact numbers of one branch. Each non-null
// number is globally unique across all branches.
type CallContact struct {
	gorm.Model
	BranchID uint    `gorm:"not null;uniqueIndex" json:"branchId"`
	Branch   *Branch `json:"-"`

	PhoneNumber1 string  `gorm:"size:8;not null;uniqueIndex" json:"phoneNumber1"`
	PhoneNumber2 *string `gorm:"size:8;uniqueIndex" json:"phoneNumber2,omitempty"`
	MobileNumber *string `gorm:"size:9;uniqueIndex" json:"mobileNumber,omitempty"`
}
