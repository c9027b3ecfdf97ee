// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Read(id uuid.UUID) (models.Assessment, error)
	ReadByOrgID(orgID uuid.UUID, id uuid.UUID) (models.Assessment, error)
}

type OrganizationRepository interface {
	ReadBySlug(slug string) (models.Org, error)
}

type GapRepository interface {
	ListByAssessmentID(assessmentID uuid.UUID) ([]models.Gap, error)
}

type VendorRepository interface {
	ListApproved() ([]models.Vendor, error)
	ListApprovedByCategories(categories []models.RiskCategory) ([]models.Vendor, error)
}

type PrioritiesRepository interface {
	GetByAssessmentID(assessmentID uuid.UUID) (models.AssessmentPriorities, error)
	Upsert(tx *gorm.DB, priorities *models.AssessmentPriorities) error
}

type AnswerRepository interface {
	ListByAssessmentID(assessmentID uuid.UUID) ([]models.Answer, error)
}

type SectionRepository interface {
	ListByTemplateID(templateID uuid.UUID) ([]models.Section, error)
}

// Cache is a best-effort key-value port. Implementations never propagate
// errors to the caller - a failing cache must not fail the computation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration)
	Del(ctx context.Context, key string)
}

type MatchingService interface {
	MatchVendorsToAssessment(ctx context.Context, assessmentID uuid.UUID) ([]dtos.VendorMatchScore, error)
}

type StrategyService interface {
	GenerateStrategyMatrix(ctx context.Context, assessmentID uuid.UUID) (dtos.StrategyMatrix, error)
	InvalidateCache(ctx context.Context, assessmentID uuid.UUID)
}

type EvidenceService interface {
	ScoreAssessment(assessment models.Assessment) (dtos.EvidenceWeightedResult, error)
}
