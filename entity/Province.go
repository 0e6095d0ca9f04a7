package entity

import (
	"gorm.io/gorm"
)

type Province struct {
	gorm.Model
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`

	Cities []City `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"cities,omitempty"`
}
