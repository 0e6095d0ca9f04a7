package entity

import (
	"gorm.io/gorm"
)

type City struct {
	gorm.Model
	Name       string `gorm:"size:50;not null;uniqueIndex:idx_city_name_province" json:"name"`
	ProvinceID uint   `gorm:"not null;uniqueIndex:idx_city_name_province" json:"provinceId"`

	Province *Province `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"province,omitempty"`
}
