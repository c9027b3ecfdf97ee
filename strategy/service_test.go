package strategy

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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestGenerateStrategyMatrix(t *testing.T) {
	assessmentID := uuid.New()

	scored := func(score int, category models.RiskCategory, cost models.CostRange) models.Gap {
		return models.Gap{
			Category:      category,
			PriorityScore: utils.Ptr(score),
			EstimatedCost: utils.Ptr(cost),
		}
	}

	gaps := []models.Gap{
		// immediate: scores >= 8
		scored(10, models.RiskCategoryAccessControl, models.CostRange15KTo50K),
		scored(9, models.RiskCategoryDataProtection, models.CostRange5KTo15K),
		scored(9, models.RiskCategoryAccessControl, models.CostRangeUnder5K),
		scored(8, models.RiskCategoryNetworkSecurity, models.CostRangeUnder5K),
		scored(8, models.RiskCategoryIncidentResponse, models.CostRange5KTo15K),
		// near term: 4 <= score < 8
		scored(7, models.RiskCategoryGovernance, models.CostRange5KTo15K),
		scored(5, models.RiskCategoryVendorManagement, models.CostRangeUnder5K),
		scored(4, models.RiskCategoryGovernance, models.CostRangeUnder5K),
		// strategic: score < 4
		scored(2, models.RiskCategoryPhysicalSecurity, models.CostRangeUnder5K),
		scored(1, models.RiskCategoryAwarenessTraining, models.CostRangeUnder5K),
		// untriaged
		{Category: models.RiskCategoryGovernance},
	}

	vendors := []models.Vendor{
		{
			Model: models.Model{ID: uuid.New()}, Name: "access-pro",
			Categories: datatypes.NewJSONSlice([]models.RiskCategory{models.RiskCategoryAccessControl}),
		},
		{
			Model: models.Model{ID: uuid.New()}, Name: "full-suite",
			Categories: datatypes.NewJSONSlice([]models.RiskCategory{
				models.RiskCategoryAccessControl,
				models.RiskCategoryDataProtection,
				models.RiskCategoryGovernance,
			}),
		},
		{
			Model: models.Model{ID: uuid.New()}, Name: "training-only",
			Categories: datatypes.NewJSONSlice([]models.RiskCategory{models.RiskCategoryAwarenessTraining}),
		},
	}

	setup := func(c shared.Cache) (*strategyService, *mocks.GapRepository) {
		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{Model: models.Model{ID: assessmentID}}, nil)

		gapRepository := &mocks.GapRepository{}
		gapRepository.On("ListByAssessmentID", assessmentID).Return(gaps, nil)

		vendorRepository := &mocks.VendorRepository{}
		vendorRepository.On("ListApprovedByCategories", mock.Anything).Return(vendors, nil)

		return NewStrategyService(assessmentRepository, gapRepository, vendorRepository, c), gapRepository
	}

	t.Run("partitions gaps into the three timeline buckets", func(t *testing.T) {
		service, _ := setup(cache.NewNoop())

		matrix, err := service.GenerateStrategyMatrix(context.Background(), assessmentID)
		require.NoError(t, err)

		assert.Equal(t, assessmentID, matrix.AssessmentID)
		assert.Equal(t, TimelineImmediate, matrix.Immediate.Timeline)
		assert.Equal(t, TimelineNearTerm, matrix.NearTerm.Timeline)
		assert.Equal(t, TimelineStrategic, matrix.Strategic.Timeline)
		assert.Equal(t, 5, matrix.Immediate.GapCount)
		assert.Equal(t, 3, matrix.NearTerm.GapCount)
		assert.Equal(t, 2, matrix.Strategic.GapCount)
		assert.Equal(t, 1, matrix.UntriagedCount)
	})

	t.Run("each bucket carries cost, effort and vendor recommendations", func(t *testing.T) {
		service, _ := setup(cache.NewNoop())

		matrix, err := service.GenerateStrategyMatrix(context.Background(), assessmentID)
		require.NoError(t, err)

		// immediate: 32500 + 10000 + 2500 + 2500 + 10000 = 57500
		assert.Equal(t, "€40K–€75K", matrix.Immediate.EstimatedCostRange)
		// strategic: 2500 + 2500 = 5000
		assert.Equal(t, "~€5K", matrix.Strategic.EstimatedCostRange)

		require.NotEmpty(t, matrix.Immediate.TopVendors)
		assert.LessOrEqual(t, len(matrix.Immediate.TopVendors), topVendorLimit)
		// full-suite covers 3 of the 5 immediate gaps, access-pro 2
		assert.Equal(t, "full-suite", matrix.Immediate.TopVendors[0].VendorName)
		assert.Equal(t, 3, matrix.Immediate.TopVendors[0].CoverageCount)
	})

	t.Run("an empty bucket has no vendor recommendations", func(t *testing.T) {
		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{Model: models.Model{ID: assessmentID}}, nil)
		gapRepository := &mocks.GapRepository{}
		gapRepository.On("ListByAssessmentID", assessmentID).Return([]models.Gap{}, nil)
		vendorRepository := &mocks.VendorRepository{}

		service := NewStrategyService(assessmentRepository, gapRepository, vendorRepository, cache.NewNoop())

		matrix, err := service.GenerateStrategyMatrix(context.Background(), assessmentID)
		require.NoError(t, err)

		assert.Empty(t, matrix.Immediate.TopVendors)
		assert.Equal(t, "€0", matrix.Immediate.EstimatedCostRange)
		// the vendor repository is never consulted for empty buckets
		vendorRepository.AssertNotCalled(t, "ListApprovedByCategories", mock.Anything)
	})

	t.Run("unknown assessment maps to the sentinel", func(t *testing.T) {
		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{}, gorm.ErrRecordNotFound)

		service := NewStrategyService(assessmentRepository, &mocks.GapRepository{}, &mocks.VendorRepository{}, cache.NewNoop())

		_, err := service.GenerateStrategyMatrix(context.Background(), assessmentID)
		assert.ErrorIs(t, err, shared.ErrAssessmentNotFound)
	})

	t.Run("a corrupt cache entry is dropped and recomputed", func(t *testing.T) {
		service, _ := setup(cache.NewMemory())
		ctx := context.Background()
		service.cache.SetEx(ctx, matrixCacheKey(assessmentID), []byte("not json"), time.Hour)

		matrix, err := service.GenerateStrategyMatrix(ctx, assessmentID)
		require.NoError(t, err)
		assert.Equal(t, 5, matrix.Immediate.GapCount)

		// the corrupt entry was replaced by the recomputed matrix
		cached, ok := service.cache.Get(ctx, matrixCacheKey(assessmentID))
		require.True(t, ok)
		var fromCache dtos.StrategyMatrix
		require.NoError(t, json.Unmarshal(cached, &fromCache))
		assert.Equal(t, matrix.Immediate.GapCount, fromCache.Immediate.GapCount)
	})

	t.Run("the matrix is served from cache until invalidated", func(t *testing.T) {
		assessmentRepository := &mocks.AssessmentRepository{}
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{Model: models.Model{ID: assessmentID}}, nil)

		changed := append([]models.Gap{}, gaps...)
		changed = append(changed, scored(9, models.RiskCategoryGovernance, models.CostRangeUnder5K))

		gapRepository := &mocks.GapRepository{}
		gapRepository.On("ListByAssessmentID", assessmentID).Return(gaps, nil).Once()
		gapRepository.On("ListByAssessmentID", assessmentID).Return(changed, nil)

		vendorRepository := &mocks.VendorRepository{}
		vendorRepository.On("ListApprovedByCategories", mock.Anything).Return(vendors, nil)

		service := NewStrategyService(assessmentRepository, gapRepository, vendorRepository, cache.NewMemory())
		ctx := context.Background()

		first, err := service.GenerateStrategyMatrix(ctx, assessmentID)
		require.NoError(t, err)
		assert.Equal(t, 5, first.Immediate.GapCount)

		// the gaps changed, but the cached matrix is still served
		stale, err := service.GenerateStrategyMatrix(ctx, assessmentID)
		require.NoError(t, err)
		assert.Equal(t, 5, stale.Immediate.GapCount)

		service.InvalidateCache(ctx, assessmentID)

		fresh, err := service.GenerateStrategyMatrix(ctx, assessmentID)
		require.NoError(t, err)
		assert.Equal(t, 6, fresh.Immediate.GapCount)
	})
}
