package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Food is a menu item of one branch. Price is a whole, non-negative
// amount; order totals are computed from the current price, never stored.
type Food struct {
	gorm.Model
	Name  string          `gorm:"size:100;not null;index" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"price"`

	BranchID uint    `gorm:"not null;index" json:"branchId"`
	Branch   *Branch `json:"-"`
}
