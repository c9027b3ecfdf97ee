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

package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
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

// the vendor-match cache is an optimization, not a correctness requirement -
// the key already rolls over with every priorities change, the ttl just
// bounds memory
const vendorMatchCacheTTL = 6 * time.Hour

// cap the fan-out for very large vendor catalogs
const maxConcurrentScoring = 10

type matchingService struct {
	assessmentRepository shared.AssessmentRepository
	prioritiesRepository shared.PrioritiesRepository
	vendorRepository     shared.VendorRepository
	gapRepository        shared.GapRepository
	cache                shared.Cache
}

func NewMatchingService(assessmentRepository shared.AssessmentRepository, prioritiesRepository shared.PrioritiesRepository, vendorRepository shared.VendorRepository, gapRepository shared.GapRepository, cache shared.Cache) *matchingService {
	return &matchingService{
		assessmentRepository: assessmentRepository,
		prioritiesRepository: prioritiesRepository,
		vendorRepository:     vendorRepository,
		gapRepository:        gapRepository,
		cache:                cache,
	}
}

// MatchVendorsToAssessment scores every approved vendor against the
// assessment's gaps and priorities and returns the full ranking. Minimum
// score thresholds and result limits are the caller's concern - the same
// ranking serves multiple presentation needs.
func (s *matchingService) MatchVendorsToAssessment(ctx context.Context, assessmentID uuid.UUID) ([]dtos.VendorMatchScore, error) {
	begin := time.Now()
	defer func() {
		monitoring.VendorMatchDuration.Observe(time.Since(begin).Seconds())
	}()

	if _, err := s.assessmentRepository.Read(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrAssessmentNotFound
		}
		return nil, errors.Wrap(err, "could not read assessment")
	}

	priorities, err := s.prioritiesRepository.GetByAssessmentID(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrPrioritiesNotFound
		}
		return nil, errors.Wrap(err, "could not read assessment priorities")
	}

	cacheKey := vendorMatchCacheKey(assessmentID, priorities)
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var matches []dtos.VendorMatchScore
		err := json.Unmarshal(cached, &matches)
		if err == nil {
			monitoring.CacheHits.WithLabelValues("vendor-match").Inc()
			return matches, nil
		}
		// a corrupt entry is dropped, never surfaced
		monitoring.Alert("dropping corrupt vendor match cache entry "+cacheKey, err)
		s.cache.Del(ctx, cacheKey)
	}
	monitoring.CacheMisses.WithLabelValues("vendor-match").Inc()

	vendors, err := s.vendorRepository.ListApproved()
	if err != nil {
		return nil, errors.Wrap(err, "could not list approved vendors")
	}

	gaps, err := s.gapRepository.ListByAssessmentID(assessmentID)
	if err != nil {
		return nil, errors.Wrap(err, "could not list gaps")
	}

	matches := scoreVendors(ctx, vendors, gaps, priorities)

	if payload, err := json.Marshal(matches); err == nil {
		s.cache.SetEx(ctx, cacheKey, payload, vendorMatchCacheTTL)
	}

	return matches, nil
}

// scoreVendors fans the pure per-vendor computation out over a bounded
// worker group and collects the deterministic ranking.
func scoreVendors(ctx context.Context, vendors []models.Vendor, gaps []models.Gap, priorities models.AssessmentPriorities) []dtos.VendorMatchScore {
	matches := make([]dtos.VendorMatchScore, len(vendors))

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentScoring)

	for i, vendor := range vendors {
		group.Go(func() error {
			base := CalculateBaseScore(vendor, gaps, priorities)
			boost := CalculatePriorityBoost(vendor, priorities)

			matches[i] = dtos.VendorMatchScore{
				VendorID:      vendor.ID,
				VendorName:    vendor.Name,
				VendorSlug:    vendor.Slug,
				BaseScore:     base,
				PriorityBoost: boost,
				TotalScore:    CalculateTotalScore(base, boost),
				MatchReasons:  GenerateMatchReasons(vendor, base, boost),
			}
			monitoring.VendorsScored.Inc()
			return nil
		})
	}
	group.Wait() // nolint:errcheck // the workers never return an error

	// score collisions are expected when few gaps exist - the vendor id
	// tie-break keeps repeated calls reproducible
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].TotalScore != matches[j].TotalScore {
			return matches[i].TotalScore > matches[j].TotalScore
		}
		return strings.Compare(matches[i].VendorID.String(), matches[j].VendorID.String()) < 0
	})

	return matches
}

func vendorMatchCacheKey(assessmentID uuid.UUID, priorities models.AssessmentPriorities) string {
	return fmt.Sprintf("vendor-matches:%s:%s", assessmentID, priorities.ContentHash())
}
