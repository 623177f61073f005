package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type Application struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID    uuid.UUID `gorm:"type:uuid;not null" json:"requestId"`
	InstructorID uuid.UUID `gorm:"type:uuid;not null" json:"instructorId"`
	ProposedRate float64   `gorm:"type:numeric(10,2);not null" json:"proposedRate"`
	CoverLetter  *string   `gorm:"type:text" json:"coverLetter"`
	Status       string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	Request    TrainingRequest `gorm:"foreignkey:RequestID" json:"request,omitempty"`
	Instructor Instructor      `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
