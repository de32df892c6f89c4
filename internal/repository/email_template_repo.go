package repository

import (
	"go-secadmin-ws/internal/model"

	"gorm.io/gorm"
)

// EmailTemplateRepository adds name lookup on top of the collection
// contract; the forgot-password flow fetches templates by well-known name.
type EmailTemplateRepository interface {
	CollectionRepository[model.EmailTemplate]
	FindByName(name string) (*model.EmailTemplate, error)
}

type emailTemplateRepo struct {
	collectionRepo[model.EmailTemplate]
}

func NewEmailTemplateRepo(db *gorm.DB) EmailTemplateRepository {
	return &emailTemplateRepo{collectionRepo[model.EmailTemplate]{db: db}}
}

func (r *emailTemplateRepo) FindByName(name string) (*model.EmailTemplate, error) {
	var tpl model.EmailTemplate
	if err := r.db.Where("name = ?", name).First(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}
