package model

import "github.com/google/uuid"

// Dispensary is a customer site under a security-services agreement.
type Dispensary struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Owner   string `gorm:"type:varchar(255)" json:"owner"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
	Status  string `gorm:"type:varchar(20);default:active" json:"status" validate:"omitempty,oneof=active inactive"`
}

var DefaultDispensaries = []Dispensary{
	{
		BaseModel: BaseModel{ID: uuid.MustParse("a1d10000-0001-4c3b-8d2e-9b7f6a5c4e30")},
		Name:      "Green Valley Wellness",
		Owner:     "Rita Calloway",
		Email:     "rita@greenvalley.example",
		Phone:     "555-0141",
		Address:   "220 Harbor Ave, Tacoma, WA",
		Status:    StatusActive,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("a1d10000-0002-4c3b-8d2e-9b7f6a5c4e30")},
		Name:      "Cascade Remedies",
		Owner:     "Joel Pruitt",
		Email:     "joel@cascaderemedies.example",
		Phone:     "555-0178",
		Address:   "18 Mill St, Bend, OR",
		Status:    StatusActive,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("a1d10000-0003-4c3b-8d2e-9b7f6a5c4e30")},
		Name:      "Summit Dispensary",
		Owner:     "Ana Delgado",
		Email:     "ana@summitdispensary.example",
		Phone:     "555-0102",
		Address:   "740 Ridge Rd, Boise, ID",
		Status:    StatusInactive,
	},
}
