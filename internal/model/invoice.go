package model

import (
	"time"

	"github.com/google/uuid"
)

// Invoice status values.
const (
	InvoiceDraft   = "draft"
	InvoiceSent    = "sent"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

// Invoice is a billing record tied to a dispensary by name. Amounts are in
// cents to keep arithmetic exact.
type Invoice struct {
	BaseModel
	Number      string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"number" validate:"required"`
	Dispensary  string     `gorm:"type:varchar(255)" json:"dispensary"`
	AmountCents int64      `gorm:"default:0" json:"amount_cents" validate:"gte=0"`
	Status      string     `gorm:"type:varchar(20);default:draft" json:"status" validate:"omitempty,oneof=draft sent paid overdue"`
	IssuedAt    time.Time  `json:"issued_at"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}

var DefaultInvoices = []Invoice{
	{
		BaseModel:   BaseModel{ID: uuid.MustParse("c3f30000-0001-4b2c-8a7d-6f5e4d3c2b10")},
		Number:      "INV-2024-0107",
		Dispensary:  "Green Valley Wellness",
		AmountCents: 249900,
		Status:      InvoicePaid,
		IssuedAt:    time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC),
	},
	{
		BaseModel:   BaseModel{ID: uuid.MustParse("c3f30000-0002-4b2c-8a7d-6f5e4d3c2b10")},
		Number:      "INV-2024-0112",
		Dispensary:  "Cascade Remedies",
		AmountCents: 118500,
		Status:      InvoiceSent,
		IssuedAt:    time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		BaseModel:   BaseModel{ID: uuid.MustParse("c3f30000-0003-4b2c-8a7d-6f5e4d3c2b10")},
		Number:      "INV-2024-0089",
		Dispensary:  "Summit Dispensary",
		AmountCents: 312000,
		Status:      InvoiceOverdue,
		IssuedAt:    time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
	},
}
