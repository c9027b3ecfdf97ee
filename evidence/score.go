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

// Package evidence computes an assessment's confidence-adjusted score from
// its answers' evidence tiers and the template's section weights. Everything
// here is read-only and safe to call repeatedly.
package evidence

import (
	"math"

	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/dtos"
)

// tierMultipliers discount an answer's raw score by how well it was
// substantiated. These multipliers are owned by the upstream answer pipeline
// and honored verbatim when recomputing.
var tierMultipliers = map[models.EvidenceTier]float64{
	models.EvidenceTier0: 0.6,
	models.EvidenceTier1: 0.8,
	models.EvidenceTier2: 1.0,
}

const (
	// confidence thresholds in percent, exact per the scoring methodology
	highTier2Threshold      = 60.0
	mediumCombinedThreshold = 60.0

	// answers score 0-5, sections and the overall score 0-100
	sectionScoreScale = 20.0
)

// FinalScore recomputes the evidence-adjusted score of an answer:
// rawScore * tierMultiplier.
func FinalScore(rawScore int, tier models.EvidenceTier) float64 {
	return float64(rawScore) * tierMultipliers[tier]
}

// Distribution counts answers per evidence tier with percentages. The
// percentages sum to 100 (modulo rounding) for any non-empty answer set and
// are all zero for an empty one.
func Distribution(answers []models.Answer) dtos.EvidenceDistribution {
	dist := dtos.EvidenceDistribution{}
	if len(answers) == 0 {
		return dist
	}

	for _, answer := range answers {
		switch answer.EvidenceTier {
		case models.EvidenceTier0:
			dist.Tier0.Count++
		case models.EvidenceTier1:
			dist.Tier1.Count++
		case models.EvidenceTier2:
			dist.Tier2.Count++
		}
	}

	total := float64(len(answers))
	dist.Tier0.Percentage = roundPercentage(float64(dist.Tier0.Count) / total * 100)
	dist.Tier1.Percentage = roundPercentage(float64(dist.Tier1.Count) / total * 100)
	dist.Tier2.Percentage = roundPercentage(float64(dist.Tier2.Count) / total * 100)
	return dist
}

// ConfidenceLevelFor derives the confidence level from the evidence
// distribution: HIGH if at least 60% of answers are document-derived, MEDIUM
// if evidence-backed answers (tier 1 + tier 2) reach 60%, LOW otherwise.
func ConfidenceLevelFor(dist dtos.EvidenceDistribution) dtos.ConfidenceLevel {
	if dist.Tier2.Percentage >= highTier2Threshold {
		return dtos.ConfidenceHigh
	}
	if dist.Tier2.Percentage+dist.Tier1.Percentage >= mediumCombinedThreshold {
		return dtos.ConfidenceMedium
	}
	return dtos.ConfidenceLow
}

// SectionScores averages each section's evidence-adjusted answer scores,
// scaled from the 0-5 answer range to 0-100. An answer without a final score
// falls back to its raw score. Sections without any answered question report
// a zero score and are excluded from the overall weighting.
func SectionScores(sections []models.Section, answers []models.Answer) []dtos.SectionScore {
	answersByQuestion := make(map[uuid.UUID]models.Answer, len(answers))
	for _, answer := range answers {
		answersByQuestion[answer.QuestionID] = answer
	}

	scores := make([]dtos.SectionScore, 0, len(sections))
	for _, section := range sections {
		score := dtos.SectionScore{
			SectionID:     section.ID,
			Name:          section.Name,
			Weight:        section.Weight,
			QuestionCount: len(section.Questions),
		}

		sum := 0.0
		for _, question := range section.Questions {
			answer, ok := answersByQuestion[question.ID]
			if !ok {
				continue
			}
			score.AnsweredCount++
			if answer.FinalScore != nil {
				sum += *answer.FinalScore
			} else {
				sum += float64(answer.Score)
			}
		}

		if score.AnsweredCount > 0 {
			score.Score = roundScore(sum / float64(score.AnsweredCount) * sectionScoreScale)
		}

		scores = append(scores, score)
	}

	return scores
}

// OverallScore combines section scores into the assessment score, weighting
// each section by section.weight * 100 and normalizing by the weight
// actually present - sections with no answered questions contribute nothing.
func OverallScore(sectionScores []dtos.SectionScore) float64 {
	weightedSum := 0.0
	totalWeight := 0.0

	for _, section := range sectionScores {
		if section.AnsweredCount == 0 {
			continue
		}
		weight := section.Weight * 100
		weightedSum += section.Score * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	return roundScore(weightedSum / totalWeight)
}

func roundPercentage(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
