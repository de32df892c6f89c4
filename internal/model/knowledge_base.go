package model

import "github.com/google/uuid"

// Article publication states.
const (
	ArticleDraft     = "draft"
	ArticlePublished = "published"
)

// Article is a knowledge-base entry shown to support staff.
type Article struct {
	BaseModel
	Title    string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Category string `gorm:"type:varchar(100)" json:"category"`
	Author   string `gorm:"type:varchar(255)" json:"author"`
	Body     string `gorm:"type:text" json:"body"`
	Status   string `gorm:"type:varchar(20);default:draft" json:"status" validate:"omitempty,oneof=draft published"`
}

var DefaultArticles = []Article{
	{
		BaseModel: BaseModel{ID: uuid.MustParse("e5b50000-0001-4d8e-9a7b-4c3b2a190800")},
		Title:     "Resetting an NVR after power loss",
		Category:  "CCTV",
		Author:    "Trey Dobbins",
		Body:      "Hold the reset pin for 10 seconds, wait for the triple beep, then re-enter the channel licenses.",
		Status:    ArticlePublished,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("e5b50000-0002-4d8e-9a7b-4c3b2a190800")},
		Title:     "Badge enrollment checklist",
		Category:  "Access control",
		Author:    "Mira Okafor",
		Body:      "Verify the site controller firmware before bulk enrollment; v2.3 drops cards with high facility codes.",
		Status:    ArticlePublished,
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("e5b50000-0003-4d8e-9a7b-4c3b2a190800")},
		Title:     "Draft: panic button placement guide",
		Category:  "Alarm systems",
		Author:    "Gus Harmon",
		Body:      "Work in progress.",
		Status:    ArticleDraft,
	},
}
