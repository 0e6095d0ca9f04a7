package entity

import (
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMan   Gender = "man"
	GenderWoman Gender = "woman"
)

func (g Gender) Valid() bool {
	return g == GenderMan || g == GenderWoman
}

// Person is a biographical record, independent of system access.
type Person struct {
	gorm.Model
	FirstName    string `gorm:"size:50;not null;index" json:"firstName"`
	LastName     string `gorm:"size:50;not null;index" json:"lastName"`
	NationalCode string `gorm:"size:10;not null;uniqueIndex" json:"nationalCode"`
	Gender       Gender `gorm:"size:5;not null;check:gender IN ('man','woman')" json:"gender"`
}
