package entity

import (
	"gorm.io/gorm"
)

// Branch is a single physical restaurant under a FoodCollection and the
// scoping unit for tables, foods, orders and rates.
type Branch struct {
	gorm.Model
	Name string `gorm:"size:100;not null;index" json:"name"`

	FoodCollectionID uint            `gorm:"not null;index" json:"foodCollectionId"`
	FoodCollection   *FoodCollection `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Location    *Location    `gorm:"constraint:OnDelete:CASCADE" json:"location,omitempty"`
	CallContact *CallContact `gorm:"constraint:OnDelete:CASCADE" json:"callContact,omitempty"`

	Tables []Table `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Foods  []Food  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Rates  []Rate  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
