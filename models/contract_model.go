package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContractStatusDraft     = "draft"
	ContractStatusSigned    = "signed"
	ContractStatusCompleted = "completed"
	ContractStatusDisputed  = "disputed"
)

type Contract struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID    uuid.UUID  `gorm:"type:uuid;not null" json:"requestId"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null" json:"companyId"`
	InstructorID uuid.UUID  `gorm:"type:uuid;not null" json:"instructorId"`
	AgreedRate   float64    `gorm:"type:numeric(10,2);not null" json:"agreedRate"`
	TotalAmount  float64    `gorm:"type:numeric(10,2);not null" json:"totalAmount"`
	Terms        *string    `gorm:"type:text" json:"terms"`
	Status       string     `gorm:"size:20;not null;default:'draft'" json:"status"`
	SignedAt     *time.Time `json:"signedAt"`
	CompletedAt  *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
