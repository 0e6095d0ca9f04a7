package entity

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	BranchID uint    `gorm:"not null;uniqueIndex" json:"branchId"`
	Branch   *Branch `json:"-"`

	ProvinceID uint      `gorm:"not null;uniqueIndex:idx_location_place" json:"provinceId"`
	Province   *Province `json:"province,omitempty"`
	CityID     uint      `gorm:"not null;uniqueIndex:idx_location_place" json:"cityId"`
	City       *City     `json:"city,omitempty"`

	Address string `gorm:"size:300;not null;uniqueIndex:idx_location_place" json:"address"`
}
