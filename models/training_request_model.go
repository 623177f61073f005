package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusOpen       = "open"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

type TrainingRequest struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID            uuid.UUID  `gorm:"type:uuid;not null" json:"companyId"`
	Title                string     `gorm:"size:255;not null" json:"title"`
	Description          string     `gorm:"type:text;not null" json:"description"`
	TrainingType         string     `gorm:"size:100;not null" json:"trainingType"`
	Duration             string     `gorm:"size:100;not null" json:"duration"`
	MinBudget            float64    `gorm:"type:numeric(10,2);not null" json:"minBudget"`
	MaxBudget            float64    `gorm:"type:numeric(10,2);not null" json:"maxBudget"`
	Location             *string    `gorm:"size:255" json:"location"`
	IsRemote             bool       `gorm:"default:false" json:"isRemote"`
	PreferredStartDate   *time.Time `json:"preferredStartDate"`
	Status               string     `gorm:"size:20;not null;default:'open'" json:"status"`
	SelectedInstructorID *uuid.UUID `gorm:"type:uuid" json:"selectedInstructorId"`

	Company Company `gorm:"foreignkey:CompanyID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// requestStatusNext lists the legal forward transitions. Completed and
// cancelled are terminal; there is no way back to an earlier state.
var requestStatusNext = map[string][]string{
	RequestStatusOpen:       {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusCompleted:  {},
	RequestStatusCancelled:  {},
}

func IsRequestStatus(s string) bool {
	_, ok := requestStatusNext[s]
	return ok
}

// CanTransitionRequestStatus reports whether a request may move from one
// status to another. Re-asserting the current status is a no-op and allowed.
func CanTransitionRequestStatus(from, to string) bool {
	if from == to {
		return IsRequestStatus(from)
	}
	for _, next := range requestStatusNext[from] {
		if next == to {
			return true
		}
	}
	return false
}
