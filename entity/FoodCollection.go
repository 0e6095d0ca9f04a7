package entity

import (
	"time"

	"gorm.io/gorm"
)

// FoodCollection is a restaurant brand, the aggregate root for branches.
// Every collection originates from exactly one approved
// CollaborationRequest and is run by exactly one managing user.
type FoodCollection struct {
	gorm.Model
	FullName string `gorm:"size:100;not null;index" json:"fullName"`
	GuildID  string `gorm:"size:12;not null;index" json:"guildId"`

	// business licence expiry
	ExpirationDate time.Time `gorm:"not null" json:"-"`

	CollaborationRequestID uint                  `gorm:"not null;uniqueIndex" json:"collaborationRequestId"`
	CollaborationRequest   *CollaborationRequest `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	ManagerID uint  `gorm:"not null;uniqueIndex" json:"managerId"`
	Manager   *User `gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE" json:"-"`

	Branches []Branch `gorm:"constraint:OnDelete:CASCADE" json:"branches,omitempty"`
}
