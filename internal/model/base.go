package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles ID (UUID) and standard audit trails
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
}

// BeforeCreate assigns a fresh UUID unless the record already carries one
// (seed data uses fixed ids so reseeding stays idempotent).
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}

func (base *BaseModel) GetID() uuid.UUID {
	return base.ID
}

func (base *BaseModel) SetID(id uuid.UUID) {
	base.ID = id
}

// Stamp records who last touched the record.
func (base *BaseModel) Stamp(editor string) {
	if base.CreatedBy == "" {
		base.CreatedBy = editor
	}
	base.UpdatedBy = editor
}
