package entity

import (
	"gorm.io/gorm"
)

type OrderType string

const (
	OrderTakeaway OrderType = "takeaway"
	OrderDineIn   OrderType = "dineIn"
)

func (t OrderType) Valid() bool {
	return t == OrderTakeaway || t == OrderDineIn
}

// Order links a customer, a branch, an optional table and a multi-set of
// foods. CreatedAt is the order datetime. The total is derived from the
// current food prices at read time.
type Order struct {
	gorm.Model
	Type OrderType `gorm:"size:10;not null;check:type IN ('takeaway','dineIn')" json:"type"`

	CustomerID uint      `gorm:"not null;index" json:"customerId"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:UserID" json:"-"`

	BranchID uint    `gorm:"not null;index" json:"branchId"`
	Branch   *Branch `json:"-"`

	TableID *uint  `json:"tableId,omitempty"`
	Table   *Table `json:"-"`

	Foods []Food `gorm:"many2many:order_foods" json:"-"`
}

// OrderFood is the join row between an order and a food. Quantity makes
// the food list a multi-set.
type OrderFood struct {
	OrderID  uint `gorm:"primaryKey" json:"orderId"`
	FoodID   uint `gorm:"primaryKey" json:"foodId"`
	Quantity int  `gorm:"not null;default:1" json:"quantity"`
}
