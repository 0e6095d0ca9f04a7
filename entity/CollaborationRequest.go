package entity

import (
	"gorm.io/gorm"
)

// CollaborationRequest is an application to establish a FoodCollection.
// It is an audit record: identifying fields are never updated after
// creation, and approval is modeled by the existence of the 1:1
// FoodCollection that references it. CreatedAt is the request date.
type CollaborationRequest struct {
	gorm.Model
	ApplicantFirstName    string `gorm:"size:50;not null;index" json:"applicantFirstName"`
	ApplicantLastName     string `gorm:"size:50;not null;index" json:"applicantLastName"`
	ApplicantNationalCode string `gorm:"size:10;not null;uniqueIndex" json:"applicantNationalCode"`

	Text string `gorm:"size:2000" json:"text,omitempty"`

	CollectionName string `gorm:"size:50;not null;index" json:"collectionName"`
	GuildID        string `gorm:"size:12;not null;index" json:"guildId"`
	JobCategory    string `gorm:"size:100;not null" json:"jobCategory"`

	FoodCollection *FoodCollection `gorm:"foreignKey:CollaborationRequestID" json:"-"`
}

// Approved reports whether a FoodCollection has been created from this
// request. The transition is one-way; there is no revocation.
func (r *CollaborationRequest) Approved() bool {
	return r.FoodCollection != nil
}
