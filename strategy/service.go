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

package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/monitoring"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// unlike the vendor-match cache this one is correctness-relevant: it MUST be
// invalidated whenever the assessment's gaps change, otherwise stale buckets
// are served for up to the full ttl
const matrixCacheTTL = 7 * 24 * time.Hour

type strategyService struct {
	assessmentRepository shared.AssessmentRepository
	gapRepository        shared.GapRepository
	vendorRepository     shared.VendorRepository
	cache                shared.Cache
}

func NewStrategyService(assessmentRepository shared.AssessmentRepository, gapRepository shared.GapRepository, vendorRepository shared.VendorRepository, cache shared.Cache) *strategyService {
	return &strategyService{
		assessmentRepository: assessmentRepository,
		gapRepository:        gapRepository,
		vendorRepository:     vendorRepository,
		cache:                cache,
	}
}

func (s *strategyService) GenerateStrategyMatrix(ctx context.Context, assessmentID uuid.UUID) (dtos.StrategyMatrix, error) {
	begin := time.Now()
	defer func() {
		monitoring.StrategyMatrixDuration.Observe(time.Since(begin).Seconds())
	}()

	if _, err := s.assessmentRepository.Read(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.StrategyMatrix{}, shared.ErrAssessmentNotFound
		}
		return dtos.StrategyMatrix{}, errors.Wrap(err, "could not read assessment")
	}

	cacheKey := matrixCacheKey(assessmentID)
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var matrix dtos.StrategyMatrix
		err := json.Unmarshal(cached, &matrix)
		if err == nil {
			monitoring.CacheHits.WithLabelValues("strategy-matrix").Inc()
			return matrix, nil
		}
		monitoring.Alert("dropping corrupt strategy matrix cache entry "+cacheKey, err)
		s.cache.Del(ctx, cacheKey)
	}
	monitoring.CacheMisses.WithLabelValues("strategy-matrix").Inc()

	gaps, err := s.gapRepository.ListByAssessmentID(assessmentID)
	if err != nil {
		return dtos.StrategyMatrix{}, errors.Wrap(err, "could not list gaps")
	}

	p := partitionGaps(gaps)

	matrix := dtos.StrategyMatrix{
		AssessmentID:   assessmentID,
		GeneratedAt:    time.Now().UTC(),
		UntriagedCount: p.untriaged,
	}

	// the three buckets are independent - build them concurrently
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		bucket, err := s.buildBucket(TimelineImmediate, p.immediate)
		matrix.Immediate = bucket
		return err
	})
	group.Go(func() error {
		bucket, err := s.buildBucket(TimelineNearTerm, p.nearTerm)
		matrix.NearTerm = bucket
		return err
	})
	group.Go(func() error {
		bucket, err := s.buildBucket(TimelineStrategic, p.strategic)
		matrix.Strategic = bucket
		return err
	})
	if err := group.Wait(); err != nil {
		return dtos.StrategyMatrix{}, err
	}

	if payload, err := json.Marshal(matrix); err == nil {
		s.cache.SetEx(ctx, cacheKey, payload, matrixCacheTTL)
	}

	return matrix, nil
}

func (s *strategyService) buildBucket(timeline string, gaps []models.Gap) (dtos.TimelineBucket, error) {
	topVendors, err := s.findTopVendors(gaps, topVendorLimit)
	if err != nil {
		return dtos.TimelineBucket{}, err
	}

	return dtos.TimelineBucket{
		Timeline:           timeline,
		Gaps:               gaps,
		GapCount:           len(gaps),
		EffortDistribution: effortDistribution(gaps),
		EstimatedCostRange: SumCostRanges(gaps),
		TopVendors:         topVendors,
	}, nil
}

// findTopVendors recommends the approved vendors whose category sets best
// cover the bucket's gaps.
func (s *strategyService) findTopVendors(gaps []models.Gap, limit int) ([]dtos.TimelineVendor, error) {
	if len(gaps) == 0 {
		return []dtos.TimelineVendor{}, nil
	}

	vendors, err := s.vendorRepository.ListApprovedByCategories(distinctCategories(gaps))
	if err != nil {
		return nil, errors.Wrap(err, "could not list vendors for bucket")
	}

	return rankVendorsByCoverage(vendors, gaps, limit), nil
}

// InvalidateCache drops the cached matrix for an assessment. Callers owning
// gap mutations (re-analysis, manual correction) must invoke this, otherwise
// stale buckets are returned until the ttl expires.
func (s *strategyService) InvalidateCache(ctx context.Context, assessmentID uuid.UUID) {
	s.cache.Del(ctx, matrixCacheKey(assessmentID))
}

func matrixCacheKey(assessmentID uuid.UUID) string {
	return fmt.Sprintf("strategy-matrix:%s", assessmentID)
}
