package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/mocks"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string, assessment models.Assessment) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetAssessment(ctx, assessment)
	return ctx, rec
}

func TestVendorMatchControllerList(t *testing.T) {
	assessment := models.Assessment{Model: models.Model{ID: uuid.New()}}

	matchWith := func(score int) dtos.VendorMatchScore {
		return dtos.VendorMatchScore{
			VendorID:     uuid.New(),
			VendorName:   "vendor",
			TotalScore:   score,
			MatchReasons: []string{},
		}
	}

	t.Run("returns the full ranking", func(t *testing.T) {
		matchingService := &mocks.MatchingService{}
		matchingService.On("MatchVendorsToAssessment", mock.Anything, assessment.ID).
			Return([]dtos.VendorMatchScore{matchWith(120), matchWith(80)}, nil)

		ctx, rec := newTestContext(t, "/vendor-matches-v2", assessment)

		err := NewVendorMatchController(matchingService).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var matches []dtos.VendorMatchScore
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
		assert.Len(t, matches, 2)
	})

	t.Run("threshold filters, limit truncates", func(t *testing.T) {
		matchingService := &mocks.MatchingService{}
		matchingService.On("MatchVendorsToAssessment", mock.Anything, assessment.ID).
			Return([]dtos.VendorMatchScore{matchWith(120), matchWith(90), matchWith(70), matchWith(40)}, nil)

		ctx, rec := newTestContext(t, "/vendor-matches-v2?threshold=60&limit=2", assessment)

		err := NewVendorMatchController(matchingService).List(ctx)
		require.NoError(t, err)

		var matches []dtos.VendorMatchScore
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
		require.Len(t, matches, 2)
		assert.Equal(t, 120, matches[0].TotalScore)
		assert.Equal(t, 90, matches[1].TotalScore)
	})

	t.Run("missing priorities yield 400 PRIORITIES_REQUIRED, never an empty list", func(t *testing.T) {
		matchingService := &mocks.MatchingService{}
		matchingService.On("MatchVendorsToAssessment", mock.Anything, assessment.ID).
			Return(nil, shared.ErrPrioritiesNotFound)

		ctx, _ := newTestContext(t, "/vendor-matches-v2", assessment)

		err := NewVendorMatchController(matchingService).List(ctx)
		require.Error(t, err)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)

		payload, ok := httpErr.Message.(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "PRIORITIES_REQUIRED", payload["code"])
	})

	t.Run("unknown assessment yields 404", func(t *testing.T) {
		matchingService := &mocks.MatchingService{}
		matchingService.On("MatchVendorsToAssessment", mock.Anything, assessment.ID).
			Return(nil, shared.ErrAssessmentNotFound)

		ctx, _ := newTestContext(t, "/vendor-matches-v2", assessment)

		err := NewVendorMatchController(matchingService).List(ctx)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("unexpected failures yield 500", func(t *testing.T) {
		matchingService := &mocks.MatchingService{}
		matchingService.On("MatchVendorsToAssessment", mock.Anything, assessment.ID).
			Return(nil, errors.New("connection refused"))

		ctx, _ := newTestContext(t, "/vendor-matches-v2", assessment)

		err := NewVendorMatchController(matchingService).List(ctx)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	})
}
