package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;unique" json:"userId"`
	CompanyName string    `gorm:"size:255;not null" json:"companyName"`
	Industry    *string   `gorm:"size:255" json:"industry"`
	CompanySize *string   `gorm:"size:50" json:"companySize"`
	Description *string   `gorm:"type:text" json:"description"`
	Website     *string   `gorm:"size:255" json:"website"`
	Location    *string   `gorm:"size:255" json:"location"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
