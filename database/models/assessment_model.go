package models

import (
	"github.com/google/uuid"
)

type AssessmentStatus string

const (
	AssessmentStatusDraft      AssessmentStatus = "draft"
	AssessmentStatusInProgress AssessmentStatus = "in_progress"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
)

type Assessment struct {
	Model
	Name       string           `json:"name" gorm:"type:text;not null;"`
	OrgID      uuid.UUID        `json:"orgId" gorm:"type:uuid;not null;index;"`
	Org        Org              `json:"-" gorm:"foreignKey:OrgID;references:ID;constraint:OnDelete:CASCADE;"`
	TemplateID uuid.UUID        `json:"templateId" gorm:"type:uuid;not null;"`
	Template   Template         `json:"-" gorm:"foreignKey:TemplateID;references:ID;"`
	Status     AssessmentStatus `json:"status" gorm:"type:text;not null;default:'draft';"`

	Gaps    []Gap    `json:"-" gorm:"foreignKey:AssessmentID;references:ID;constraint:OnDelete:CASCADE;"`
	Answers []Answer `json:"-" gorm:"foreignKey:AssessmentID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m Assessment) TableName() string {
	return "assessments"
}
