package models

type Org struct {
	Model
	Name string `json:"name" gorm:"type:text;not null;"`
	Slug string `json:"slug" gorm:"type:text;uniqueIndex;not null;"`
}

func (m Org) TableName() string {
	return "organizations"
}
