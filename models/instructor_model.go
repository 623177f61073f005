package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Instructor struct {
	ID                    uuid.UUID                  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID                  `gorm:"type:uuid;not null;unique" json:"userId"`
	ProfessionalTitle     string                     `gorm:"size:255;not null" json:"professionalTitle"`
	YearsExperience       int                        `gorm:"not null" json:"yearsExperience"`
	Location              *string                    `gorm:"size:255" json:"location"`
	Bio                   *string                    `gorm:"type:text" json:"bio"`
	Specializations       datatypes.JSONSlice[string] `json:"specializations"`
	MinHourlyRate         float64                    `gorm:"type:numeric(10,2);not null" json:"minHourlyRate"`
	DesiredHourlyRate     float64                    `gorm:"type:numeric(10,2);not null" json:"desiredHourlyRate"`
	IsVerified            bool                       `gorm:"default:false" json:"isVerified"`
	VerificationStatus    string                     `gorm:"size:20;not null;default:'pending'" json:"verificationStatus"`
	VerificationDocuments datatypes.JSONSlice[string] `json:"verificationDocuments"`
	Rating                float64                    `gorm:"type:numeric(3,2);default:0" json:"rating"`
	CompletedSessions     int                        `gorm:"default:0" json:"completedSessions"`
	TotalEarnings         float64                    `gorm:"type:numeric(10,2);default:0.00" json:"totalEarnings"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MatchesBudget reports whether the instructor's acceptable rate range
// overlaps a request's budget range. Only verified instructors match.
func (i Instructor) MatchesBudget(minBudget, maxBudget float64) bool {
	return i.IsVerified && i.MinHourlyRate <= maxBudget && i.DesiredHourlyRate >= minBudget
}
