package models

import (
	"github.com/google/uuid"
)

type Template struct {
	Model
	Name     string    `json:"name" gorm:"type:text;not null;"`
	Sections []Section `json:"sections" gorm:"foreignKey:TemplateID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m Template) TableName() string {
	return "templates"
}

// Section groups questions and carries a weight - the fraction of 1.0 this
// section contributes to the overall assessment score.
type Section struct {
	Model
	TemplateID uuid.UUID  `json:"templateId" gorm:"type:uuid;not null;index;"`
	Name       string     `json:"name" gorm:"type:text;not null;"`
	Weight     float64    `json:"weight" gorm:"type:decimal(4,3);not null;"`
	Order      int        `json:"order" gorm:"not null;default:0;"`
	Questions  []Question `json:"questions" gorm:"foreignKey:SectionID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m Section) TableName() string {
	return "sections"
}

type Question struct {
	Model
	SectionID uuid.UUID `json:"sectionId" gorm:"type:uuid;not null;index;"`
	Text      string    `json:"text" gorm:"type:text;not null;"`
	Order     int       `json:"order" gorm:"not null;default:0;"`
}

func (m Question) TableName() string {
	return "questions"
}
