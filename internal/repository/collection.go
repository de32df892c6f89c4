package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectionRepository is the shared contract for the flat entity
// collections (dispensaries, service requests, invoices, engineers,
// articles, service items, email templates, CMS pages). Each collection only
// differs in its record type; anything needing bespoke queries gets its own
// repository instead.
type CollectionRepository[T any] interface {
	FindAll() ([]T, error)
	FindByID(id uuid.UUID) (*T, error)
	Create(record *T) error
	Save(record *T) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	SeedDefaults(defaults []T) error
}

type collectionRepo[T any] struct {
	db *gorm.DB
}

func NewCollectionRepo[T any](db *gorm.DB) CollectionRepository[T] {
	return &collectionRepo[T]{db: db}
}

func (r *collectionRepo[T]) FindAll() ([]T, error) {
	var records []T
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *collectionRepo[T]) FindByID(id uuid.UUID) (*T, error) {
	var record T
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *collectionRepo[T]) Create(record *T) error {
	return r.db.Create(record).Error
}

func (r *collectionRepo[T]) Save(record *T) error {
	return r.db.Save(record).Error
}

func (r *collectionRepo[T]) Delete(id uuid.UUID) error {
	var record T
	return r.db.Delete(&record, "id = ?", id).Error
}

func (r *collectionRepo[T]) Count() (int64, error) {
	var record T
	var count int64
	err := r.db.Model(&record).Count(&count).Error
	return count, err
}

// SeedDefaults installs the built-in records when the table is empty. This
// is the fallback for an absent collection: the caller sees the defaults
// instead of an error.
func (r *collectionRepo[T]) SeedDefaults(defaults []T) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count > 0 || len(defaults) == 0 {
		return nil
	}
	records := make([]T, len(defaults))
	copy(records, defaults)
	return r.db.Create(&records).Error
}
