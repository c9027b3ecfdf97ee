package matching

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/cache"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/mocks"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/l3montree-dev/gapguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newVendor(id uuid.UUID, name string, categories ...models.RiskCategory) models.Vendor {
	return models.Vendor{
		Model:      models.Model{ID: id},
		Name:       name,
		Slug:       name,
		Status:     models.VendorStatusApproved,
		Categories: datatypes.NewJSONSlice(categories),
	}
}

func TestMatchVendorsToAssessment(t *testing.T) {
	assessmentID := uuid.New()
	priorities := models.AssessmentPriorities{
		AssessmentID:    assessmentID,
		TopRiskPriority: models.RiskCategoryAccessControl,
	}
	gaps := []models.Gap{
		{Category: models.RiskCategoryAccessControl},
		{Category: models.RiskCategoryDataProtection},
	}

	setup := func(vendors []models.Vendor, c shared.Cache) *matchingService {
		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{Model: models.Model{ID: assessmentID}}, nil)

		prioritiesRepository := &mocks.PrioritiesRepository{}
		prioritiesRepository.On("GetByAssessmentID", assessmentID).Return(priorities, nil)

		vendorRepository := &mocks.VendorRepository{}
		vendorRepository.On("ListApproved").Return(vendors, nil)

		gapRepository := &mocks.GapRepository{}
		gapRepository.On("ListByAssessmentID", assessmentID).Return(gaps, nil)

		return NewMatchingService(assessmentRepository, prioritiesRepository, vendorRepository, gapRepository, c)
	}

	t.Run("ranks by total score descending", func(t *testing.T) {
		strong := newVendor(uuid.New(), "strong", models.RiskCategoryAccessControl, models.RiskCategoryDataProtection)
		weak := newVendor(uuid.New(), "weak", models.RiskCategoryPhysicalSecurity)

		service := setup([]models.Vendor{weak, strong}, cache.NewNoop())

		matches, err := service.MatchVendorsToAssessment(context.Background(), assessmentID)
		require.NoError(t, err)
		require.Len(t, matches, 2)

		assert.Equal(t, "strong", matches[0].VendorName)
		assert.Greater(t, matches[0].TotalScore, matches[1].TotalScore)
	})

	t.Run("ties break on vendor id for a reproducible order", func(t *testing.T) {
		idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
		idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
		// identical configuration, identical scores
		first := newVendor(idB, "first", models.RiskCategoryAccessControl)
		second := newVendor(idA, "second", models.RiskCategoryAccessControl)

		service := setup([]models.Vendor{first, second}, cache.NewNoop())

		matches, err := service.MatchVendorsToAssessment(context.Background(), assessmentID)
		require.NoError(t, err)
		require.Len(t, matches, 2)

		assert.Equal(t, matches[0].TotalScore, matches[1].TotalScore)
		assert.Equal(t, idA, matches[0].VendorID)
		assert.Equal(t, idB, matches[1].VendorID)
	})

	t.Run("repeated calls return the identical ranking and reasons", func(t *testing.T) {
		vendors := []models.Vendor{
			newVendor(uuid.New(), "a", models.RiskCategoryAccessControl),
			newVendor(uuid.New(), "b", models.RiskCategoryDataProtection),
			newVendor(uuid.New(), "c", models.RiskCategoryGovernance),
		}

		service := setup(vendors, cache.NewNoop())

		ctx := context.Background()
		firstRun, err := service.MatchVendorsToAssessment(ctx, assessmentID)
		require.NoError(t, err)
		secondRun, err := service.MatchVendorsToAssessment(ctx, assessmentID)
		require.NoError(t, err)

		assert.Equal(t, firstRun, secondRun)
	})

	t.Run("cache hit and cold computation agree", func(t *testing.T) {
		vendors := []models.Vendor{
			newVendor(uuid.New(), "a", models.RiskCategoryAccessControl),
			newVendor(uuid.New(), "b", models.RiskCategoryDataProtection),
		}

		cold := setup(vendors, cache.NewNoop())
		cached := setup(vendors, cache.NewMemory())

		ctx := context.Background()
		expected, err := cold.MatchVendorsToAssessment(ctx, assessmentID)
		require.NoError(t, err)

		// first call populates, second call serves from cache
		_, err = cached.MatchVendorsToAssessment(ctx, assessmentID)
		require.NoError(t, err)
		fromCache, err := cached.MatchVendorsToAssessment(ctx, assessmentID)
		require.NoError(t, err)

		assert.Equal(t, expected, fromCache)
	})

	t.Run("a corrupt cache entry is dropped and recomputed", func(t *testing.T) {
		vendors := []models.Vendor{
			newVendor(uuid.New(), "a", models.RiskCategoryAccessControl),
		}

		memory := cache.NewMemory()
		ctx := context.Background()
		memory.SetEx(ctx, vendorMatchCacheKey(assessmentID, priorities), []byte("not json"), time.Hour)

		service := setup(vendors, memory)

		matches, err := service.MatchVendorsToAssessment(ctx, assessmentID)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "a", matches[0].VendorName)

		// the corrupt entry was replaced by the recomputed payload
		cached, ok := memory.Get(ctx, vendorMatchCacheKey(assessmentID, priorities))
		require.True(t, ok)
		var fromCache []dtos.VendorMatchScore
		require.NoError(t, json.Unmarshal(cached, &fromCache))
		assert.Equal(t, matches, fromCache)
	})

	t.Run("total score never exceeds the cap", func(t *testing.T) {
		perfect := models.Vendor{
			Model:  models.Model{ID: uuid.New()},
			Name:   "perfect",
			Status: models.VendorStatusApproved,
			Categories: datatypes.NewJSONSlice([]models.RiskCategory{
				models.RiskCategoryAccessControl,
				models.RiskCategoryDataProtection,
			}),
			TargetSize:         utils.Ptr(models.SizeSegmentMedium),
			Regions:            datatypes.NewJSONSlice([]string{"global"}),
			PricingTier:        utils.Ptr(models.PricingTierMidMarket),
			FeatureTags:        datatypes.NewJSONSlice([]string{"siem", "mfa", "dlp", "sso"}),
			DeploymentModes:    datatypes.NewJSONSlice([]models.DeploymentMode{models.DeploymentCloud}),
			ImplementationTime: utils.Ptr(models.ImplementationFast),
		}
		fullPriorities := models.AssessmentPriorities{
			AssessmentID:         assessmentID,
			TopRiskPriority:      models.RiskCategoryAccessControl,
			DesiredFeatures:      datatypes.NewJSONSlice([]string{"siem", "mfa", "dlp", "sso"}),
			DeploymentPreference: utils.Ptr(models.DeploymentCloud),
			Urgency:              utils.Ptr(models.UrgencyUrgent),
			OrganizationSize:     utils.Ptr(models.SizeSegmentMedium),
			Geography:            utils.Ptr("eu"),
			BudgetBand:           utils.Ptr(models.Budget10KTo50K),
		}

		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{Model: models.Model{ID: assessmentID}}, nil)
		prioritiesRepository := &mocks.PrioritiesRepository{}
		prioritiesRepository.On("GetByAssessmentID", assessmentID).Return(fullPriorities, nil)
		vendorRepository := &mocks.VendorRepository{}
		vendorRepository.On("ListApproved").Return([]models.Vendor{perfect}, nil)
		gapRepository := &mocks.GapRepository{}
		gapRepository.On("ListByAssessmentID", assessmentID).Return(gaps, nil)

		service := NewMatchingService(assessmentRepository, prioritiesRepository, vendorRepository, gapRepository, cache.NewNoop())

		matches, err := service.MatchVendorsToAssessment(context.Background(), assessmentID)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, TotalScoreCap, matches[0].TotalScore)
	})

	t.Run("unknown assessment maps to the sentinel", func(t *testing.T) {
		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{}, gorm.ErrRecordNotFound)

		service := NewMatchingService(assessmentRepository, &mocks.PrioritiesRepository{}, &mocks.VendorRepository{}, &mocks.GapRepository{}, cache.NewNoop())

		_, err := service.MatchVendorsToAssessment(context.Background(), assessmentID)
		assert.ErrorIs(t, err, shared.ErrAssessmentNotFound)
	})

	t.Run("missing priorities map to the sentinel", func(t *testing.T) {
		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{Model: models.Model{ID: assessmentID}}, nil)
		prioritiesRepository := &mocks.PrioritiesRepository{}
		prioritiesRepository.On("GetByAssessmentID", assessmentID).Return(models.AssessmentPriorities{}, gorm.ErrRecordNotFound)

		service := NewMatchingService(assessmentRepository, prioritiesRepository, &mocks.VendorRepository{}, &mocks.GapRepository{}, cache.NewNoop())

		_, err := service.MatchVendorsToAssessment(context.Background(), assessmentID)
		assert.ErrorIs(t, err, shared.ErrPrioritiesNotFound)
	})

	t.Run("no approved vendors yields an empty ranking, not an error", func(t *testing.T) {
		service := setup([]models.Vendor{}, cache.NewNoop())

		matches, err := service.MatchVendorsToAssessment(context.Background(), assessmentID)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestVendorMatchCacheKey(t *testing.T) {
	assessmentID := uuid.New()

	t.Run("identical priorities share a key", func(t *testing.T) {
		a := models.AssessmentPriorities{TopRiskPriority: models.RiskCategoryAccessControl}
		b := models.AssessmentPriorities{TopRiskPriority: models.RiskCategoryAccessControl}

		assert.Equal(t, vendorMatchCacheKey(assessmentID, a), vendorMatchCacheKey(assessmentID, b))
	})

	t.Run("a priorities change rolls the key over", func(t *testing.T) {
		a := models.AssessmentPriorities{TopRiskPriority: models.RiskCategoryAccessControl}
		b := models.AssessmentPriorities{TopRiskPriority: models.RiskCategoryGovernance}

		assert.NotEqual(t, vendorMatchCacheKey(assessmentID, a), vendorMatchCacheKey(assessmentID, b))
	})
}
