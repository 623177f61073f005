package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ContractID uuid.UUID `gorm:"type:uuid;not null" json:"contractId"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null" json:"reviewerId"`
	RevieweeID uuid.UUID `gorm:"type:uuid;not null" json:"revieweeId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    *string   `gorm:"type:text" json:"comment"`
	IsPublic   bool      `gorm:"default:true" json:"isPublic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
