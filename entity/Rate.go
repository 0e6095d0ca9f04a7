package entity

import (
	"gorm.io/gorm"
)

// Rate is a customer review of a branch. There is no update path; a rate
// is immutable once written. CreatedAt is the review datetime.
type Rate struct {
	gorm.Model
	Title string `gorm:"size:100;not null" json:"title"`
	Text  string `gorm:"size:2000" json:"text,omitempty"`

	CustomerID uint      `gorm:"not null;index" json:"customerId"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:UserID" json:"-"`

	BranchID uint    `gorm:"not null;index" json:"branchId"`
	Branch   *Branch `json:"-"`
}
