package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserTypeCompany    = "company"
	UserTypeInstructor = "instructor"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email           string    `gorm:"size:255;not null;unique" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	FirstName       string    `gorm:"size:255" json:"firstName"`
	LastName        string    `gorm:"size:255" json:"lastName"`
	ProfileImageURL *string   `gorm:"size:255" json:"profileImageUrl"`

	// nil until the user picks a side via /api/user/setup; set at most once.
	UserType *string `gorm:"size:20" json:"userType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
