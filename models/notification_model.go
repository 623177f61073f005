package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an append-only per-user message, polled by clients.
// Type is a label only; no delivery transport is wired up.
type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Type    string    `gorm:"size:20;not null" json:"type"`

	// DedupKey makes fan-out writes idempotent: retrying the producing
	// operation conflicts on the key instead of duplicating the row.
	DedupKey *string `gorm:"size:255;unique" json:"-"`

	IsRead bool       `gorm:"default:false" json:"isRead"`
	SentAt *time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}
