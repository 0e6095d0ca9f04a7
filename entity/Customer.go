package entity

import (
	"time"
)

// Customer specializes a User 1:1 through a shared primary key.
type Customer struct {
	UserID uint `gorm:"primaryKey" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	PhoneNumber *string `gorm:"uniqueIndex;size:9" json:"phoneNumber,omitempty"`

	ProvinceID *uint     `json:"provinceId,omitempty"`
	Province   *Province `json:"province,omitempty"`
	CityID     *uint     `json:"cityId,omitempty"`
	City       *City     `json:"city,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Orders []Order `gorm:"foreignKey:CustomerID;references:UserID" json:"-"`
	Rates  []Rate  `gorm:"foreignKey:CustomerID;references:UserID" json:"-"`
}
