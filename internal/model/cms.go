package model

import "github.com/google/uuid"

// CMSPage is an editable content block on the public site. Pages are fixed by
// slug; the API updates their content but never mints or removes slugs.
type CMSPage struct {
	BaseModel
	Slug  string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug" validate:"required"`
	Title string `gorm:"type:varchar(255)" json:"title" validate:"required"`
	Body  string `gorm:"type:text" json:"body"`
}

var DefaultCMSPages = []CMSPage{
	{
		BaseModel: BaseModel{ID: uuid.MustParse("b8e80000-0001-4a5b-8c4d-190807060500")},
		Slug:      "home",
		Title:     "Myers Security",
		Body:      "Security services built for regulated retail.",
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("b8e80000-0002-4a5b-8c4d-190807060500")},
		Slug:      "about",
		Title:     "About Us",
		Body:      "Two decades of monitoring, access control and alarm expertise.",
	},
	{
		BaseModel: BaseModel{ID: uuid.MustParse("b8e80000-0003-4a5b-8c4d-190807060500")},
		Slug:      "contact",
		Title:     "Contact",
		Body:      "Reach our operations center any time at ops@myers.security.",
	},
}
