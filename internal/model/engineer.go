package model

import "github.com/google/uuid"

// SupportEngineer is a field technician assignable to service requests.
type SupportEngineer struct {
	BaseModel
	Name      string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email     string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone     string `gorm:"type:varchar(30)" json:"phone"`
	Specialty string `gorm:"type:varchar(100)" json:"specialty"`
	Status    string `gorm:"type:varchar(20);default:active" json:"status" validate:"omitempty,oneof=active inactive"`
}

var DefaultSupportEngineers = []SupportEngineer{
	{
		BaseModel: BaseModel{ID: uuid.MustParse("d4a40000-0001-4e9f-8b6c-5d4c3b2a1900")},
		Name:      "Trey Dobbins",
		Email:     "trey.dobbins@myers.security",
		Phone:     "555-0190",
		Specialty: "CCTV",
		Status:    StatusActive,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("d4a40000-0002-4e9f-8b6c-5d4c3b2a1900")},
		Name:      "Mira Okafor",
		Email:     "mira.okafor@myers.security",
		Phone:     "555-0134",
		Specialty: "Access control",
		Status:    StatusActive,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("d4a40000-0003-4e9f-8b6c-5d4c3b2a1900")},
		Name:      "Gus Harmon",
		Email:     "gus.harmon@myers.security",
		Phone:     "555-0166",
		Specialty: "Alarm systems",
		Status:    StatusInactive,
	},
}
