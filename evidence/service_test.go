package evidence

import (
	"testing"

	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/mocks"
	"github.com/stretchr/testify/require"
)

func scoreWith(t *testing.T, assessment models.Assessment, sections []models.Section, answers []models.Answer) dtos.EvidenceWeightedResult {
	t.Helper()

	answerRepository := &mocks.AnswerRepository{}
	answerRepository.On("ListByAssessmentID", assessment.ID).Return(answers, nil)

	sectionRepository := &mocks.SectionRepository{}
	sectionRepository.On("ListByTemplateID", assessment.TemplateID).Return(sections, nil)

	result, err := NewEvidenceService(answerRepository, sectionRepository).ScoreAssessment(assessment)
	require.NoError(t, err)
	return result
}
