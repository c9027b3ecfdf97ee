package evidence

import (
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
	"github.com/l3montree-dev/gapguard/shared"
	"github.com/pkg/errors"
)

type evidenceService struct {
	answerRepository  shared.AnswerRepository
	sectionRepository shared.SectionRepository
}

func NewEvidenceService(answerRepository shared.AnswerRepository, sectionRepository shared.SectionRepository) *evidenceService {
	return &evidenceService{
		answerRepository:  answerRepository,
		sectionRepository: sectionRepository,
	}
}

// ScoreAssessment computes the evidence-weighted result for an assessment.
// No caching - the computation is cheap and must always reflect the answers'
// current finalScore values.
func (s *evidenceService) ScoreAssessment(assessment models.Assessment) (dtos.EvidenceWeightedResult, error) {
	answers, err := s.answerRepository.ListByAssessmentID(assessment.ID)
	if err != nil {
		return dtos.EvidenceWeightedResult{}, errors.Wrap(err, "could not list answers")
	}

	sections, err := s.sectionRepository.ListByTemplateID(assessment.TemplateID)
	if err != nil {
		return dtos.EvidenceWeightedResult{}, errors.Wrap(err, "could not list template sections")
	}

	dist := Distribution(answers)
	sectionScores := SectionScores(sections, answers)

	return dtos.EvidenceWeightedResult{
		OverallScore:         OverallScore(sectionScores),
		ConfidenceLevel:      ConfidenceLevelFor(dist),
		EvidenceDistribution: dist,
		SectionBreakdown:     sectionScores,
	}, nil
}
