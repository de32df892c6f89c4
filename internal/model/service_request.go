package model

import "github.com/google/uuid"

// Service request lifecycle and priority values.
const (
	RequestOpen       = "open"
	RequestInProgress = "in_progress"
	RequestResolved   = "resolved"
	RequestClosed     = "closed"

	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// ServiceRequest is a support ticket raised for a dispensary. The dispensary
// and engineer are denormalized names, not enforced foreign keys.
type ServiceRequest struct {
	BaseModel
	Title      string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Dispensary string `gorm:"type:varchar(255)" json:"dispensary"`
	Engineer   string `gorm:"type:varchar(255)" json:"engineer"`
	Priority   string `gorm:"type:varchar(20);default:medium" json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Status     string `gorm:"type:varchar(20);default:open" json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	Details    string `gorm:"type:text" json:"details"`
}

var DefaultServiceRequests = []ServiceRequest{
	{
		BaseModel:  BaseModel{ID: uuid.MustParse("b2e20000-0001-4f1a-9c8d-7e6b5a4d3c20")},
		Title:      "Camera feed down at loading dock",
		Dispensary: "Green Valley Wellness",
		Engineer:   "Trey Dobbins",
		Priority:   PriorityHigh,
		Status:     RequestOpen,
		Details:    "NVR shows no signal on channels 4-6 since Monday.",
	},
	{
		BaseModel:  BaseModel{ID: uuid.MustParse("b2e20000-0002-4f1a-9c8d-7e6b5a4d3c20")},
		Title:      "Badge reader intermittent",
		Dispensary: "Cascade Remedies",
		Engineer:   "Mira Okafor",
		Priority:   PriorityMedium,
		Status:     RequestInProgress,
		Details:    "Rear entry reader rejects valid badges roughly once an hour.",
	},
	{
		BaseModel:  BaseModel{ID: uuid.MustParse("b2e20000-0003-4f1a-9c8d-7e6b5a4d3c20")},
		Title:      "Quarterly alarm inspection",
		Dispensary: "Summit Dispensary",
		Engineer:   "",
		Priority:   PriorityLow,
		Status:     RequestResolved,
		Details:    "Routine inspection, signed off by owner.",
	},
}
