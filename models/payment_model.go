package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusHeldInEscrow = "held_in_escrow"
	PaymentStatusReleased     = "released"
	PaymentStatusRefunded     = "refunded"
	PaymentStatusDisputed     = "disputed"
)

// Payment is the simulated escrow record created alongside a contract.
// Invariant: InstructorAmount + ServiceFee == Amount.
type Payment struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ContractID       uuid.UUID  `gorm:"type:uuid;not null;unique" json:"contractId"`
	Amount           float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	ServiceFee       float64    `gorm:"type:numeric(10,2);not null" json:"serviceFee"`
	InstructorAmount float64    `gorm:"type:numeric(10,2);not null" json:"instructorAmount"`
	Status           string     `gorm:"size:20;not null;default:'held_in_escrow'" json:"status"`
	PaidAt           *time.Time `json:"paidAt"`
	ReleasedAt       *time.Time `json:"releasedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
