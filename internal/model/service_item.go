package model

import "github.com/google/uuid"

// ServiceItem is an entry in the managed-services catalog.
type ServiceItem struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
	PriceCents  int64  `gorm:"default:0" json:"price_cents" validate:"gte=0"`
	Active      bool   `gorm:"default:true" json:"active"`
}

var DefaultServiceItems = []ServiceItem{
	{
		BaseModel:   BaseModel{ID: uuid.MustParse("f6c60000-0001-4c7d-8b6a-3b2a19080700")},
		Name:        "24/7 Monitoring",
		Description: "Round-the-clock alarm and camera monitoring from the Myers operations center.",
		Category:    "Monitoring",
		PriceCents:  49900,
		Active:      true,
	},
	{
		BaseModel:   BaseModel{ID: uuid.MustParse("f6c60000-0002-4c7d-8b6a-3b2a19080700")},
		Name:        "Access Control Maintenance",
		Description: "Quarterly reader and controller servicing with firmware updates.",
		Category:    "Maintenance",
		PriceCents:  29900,
		Active:      true,
	},
	{
		BaseModel:   BaseModel{ID: uuid.MustParse("f6c60000-0003-4c7d-8b6a-3b2a19080700")},
		Name:        "Legacy DVR Support",
		Description: "Best-effort support for discontinued DVR lines.",
		Category:    "Maintenance",
		PriceCents:  15000,
		Active:      false,
	},
}
