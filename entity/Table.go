package entity

import (
	"gorm.io/gorm"
)

type TableState string

const (
	TableFree     TableState = "free"
	TableReserved TableState = "reserved"
)

func (s TableState) Valid() bool {
	return s == TableFree || s == TableReserved
}

// Table is a seat group inside a branch. Reservation is an explicit bulk
// action both ways; a reserved table never reverts on its own.
type Table struct {
	gorm.Model
	Name     string     `gorm:"size:100;not null" json:"name"`
	Capacity uint       `gorm:"not null" json:"capacity"`
	State    TableState `gorm:"size:10;not null;default:free;check:state IN ('free','reserved')" json:"state"`

	BranchID uint    `gorm:"not null;index" json:"branchId"`
	Branch   *Branch `json:"-"`
}
