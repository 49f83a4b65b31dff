package feasibility

import (
	"testing"
	"time"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings_WeightsSumToOne(t *testing.T) {
	settings := DefaultSettings()
	sum := 0.0
	for _, w := range settings.DomainWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Len(t, settings.DomainWeights, len(domain.Domains))
}

func TestScoreResponse_NoResponse(t *testing.T) {
	q := domain.AssessmentQuestion{Type: domain.QuestionSingleSelect, Weight: 5, Scoring: map[string]float64{"yes": 100}}
	assert.Equal(t, 0.0, ScoreResponse(q, nil))
	assert.Equal(t, 0.0, ScoreResponse(q, &domain.AssessmentResponse{}))
}

func TestScoreResponse_SingleSelect(t *testing.T) {
	q := domain.AssessmentQuestion{
		Type:    domain.QuestionSingleSelect,
		Weight:  4,
		Scoring: map[string]float64{"full": 100, "partial": 50, "none": 0},
	}

	assert.Equal(t, 4.0, ScoreResponse(q, &domain.AssessmentResponse{Value: "full"}))
	assert.Equal(t, 2.0, ScoreResponse(q, &domain.AssessmentResponse{Value: "partial"}))
	assert.Equal(t, 0.0, ScoreResponse(q, &domain.AssessmentResponse{Value: "none"}))
	// unknown option scores zero
	assert.Equal(t, 0.0, ScoreResponse(q, &domain.AssessmentResponse{Value: "unlisted"}))
}

func TestScoreResponse_MultiSelect_AveragesMatchedOptions(t *testing.T) {
	q := domain.AssessmentQuestion{
		Type:    domain.QuestionMultiSelect,
		Weight:  10,
		Scoring: map[string]float64{"sso": 80, "mfa": 100, "audit": 60},
	}

	// (80+100)/2 = 90% of weight 10
	score := ScoreResponse(q, &domain.AssessmentResponse{Value: []string{"sso", "mfa"}})
	assert.InDelta(t, 9.0, score, 1e-9)

	// options missing from the scoring map are skipped, not averaged as zero
	score = ScoreResponse(q, &domain.AssessmentResponse{Value: []string{"mfa", "unlisted"}})
	assert.InDelta(t, 10.0, score, 1e-9)

	assert.Equal(t, 0.0, ScoreResponse(q, &domain.AssessmentResponse{Value: []string{"unlisted"}}))
}

func TestScoreResponse_Number_ClampsToPercentRange(t *testing.T) {
	q := domain.AssessmentQuestion{Type: domain.QuestionNumber, Weight: 2}

	assert.InDelta(t, 1.5, ScoreResponse(q, &domain.AssessmentResponse{Value: 75.0}), 1e-9)
	assert.InDelta(t, 2.0, ScoreResponse(q, &domain.AssessmentResponse{Value: 250.0}), 1e-9)
	assert.InDelta(t, 0.0, ScoreResponse(q, &domain.AssessmentResponse{Value: -10.0}), 1e-9)
	assert.InDelta(t, 1.5, ScoreResponse(q, &domain.AssessmentResponse{Value: 75}), 1e-9)
}

func TestScoreResponse_TextScoresZero(t *testing.T) {
	q := domain.AssessmentQuestion{Type: domain.QuestionText, Weight: 3}
	assert.Equal(t, 0.0, ScoreResponse(q, &domain.AssessmentResponse{Value: "free form"}))
}

func TestCalculateDomainScore_EmptyResponses(t *testing.T) {
	questions := []domain.AssessmentQuestion{
		{ID: "q1", Domain: domain.DomainSecurity, Type: domain.QuestionSingleSelect, Weight: 5, Scoring: map[string]float64{"yes": 100}},
	}

	score := CalculateDomainScore(domain.DomainSecurity, map[string]*domain.AssessmentResponse{}, questions, DefaultSettings())
	assert.Equal(t, 0, score.Percentage)
	assert.False(t, score.Passed)
	assert.NotEmpty(t, score.Recommendations)
	assert.NotEmpty(t, score.RemediationTasks)
}

func TestCalculateDomainScore_PassedDomainHasNoRecommendations(t *testing.T) {
	questions := []domain.AssessmentQuestion{
		{ID: "q1", Domain: domain.DomainBusiness, Type: domain.QuestionSingleSelect, Weight: 5, Scoring: map[string]float64{"yes": 100}},
	}
	responses := map[string]*domain.AssessmentResponse{
		"q1": {QuestionID: "q1", Value: "yes"},
	}

	score := CalculateDomainScore(domain.DomainBusiness, responses, questions, DefaultSettings())
	assert.Equal(t, 100, score.Percentage)
	assert.True(t, score.Passed)
	assert.Empty(t, score.Recommendations)
}

// buildDomainFixture creates one number question per domain so each domain
// lands exactly on the requested percentage.
func buildDomainFixture(percentages map[domain.AssessmentDomain]float64) ([]domain.AssessmentQuestion, map[string]*domain.AssessmentResponse) {
	var questions []domain.AssessmentQuestion
	responses := map[string]*domain.AssessmentResponse{}
	for i, d := range domain.Domains {
		id := string(d) + "_q"
		questions = append(questions, domain.AssessmentQuestion{
			ID: id, Domain: d, Type: domain.QuestionNumber, Weight: 1, Order: i,
		})
		responses[id] = &domain.AssessmentResponse{QuestionID: id, Value: percentages[d]}
	}
	return questions, responses
}

func TestCalculateFeasibility_WeightedOverall(t *testing.T) {
	questions, responses := buildDomainFixture(map[domain.AssessmentDomain]float64{
		domain.DomainInfrastructure: 80,
		domain.DomainSecurity:       40,
		domain.DomainGovernance:     55,
		domain.DomainEngineering:    70,
		domain.DomainBusiness:       60,
	})

	result := CalculateFeasibility(responses, questions, DefaultSettings())

	// .25*80 + .25*40 + .20*55 + .15*70 + .15*60 = 60.5 -> 61
	assert.Equal(t, 61, result.OverallScore)
	assert.Equal(t, "moderate", result.Rating)
	assert.Len(t, result.DomainScores, 5)
}

func TestCalculateFeasibility_RecommendationsWeakestFirst(t *testing.T) {
	questions, responses := buildDomainFixture(map[domain.AssessmentDomain]float64{
		domain.DomainInfrastructure: 20, // fails, weakest
		domain.DomainSecurity:       50, // fails
		domain.DomainGovernance:     90,
		domain.DomainEngineering:    90,
		domain.DomainBusiness:       90,
	})

	result := CalculateFeasibility(responses, questions, DefaultSettings())
	assert.Len(t, result.Recommendations, 2)
	assert.Contains(t, result.Recommendations[0], "infrastructure")
	assert.Contains(t, result.Recommendations[1], "security")
}

func TestRating_Monotonic(t *testing.T) {
	bands := DefaultSettings().RatingBands
	order := map[string]int{"low": 0, "marginal": 1, "moderate": 2, "strong": 3, "excellent": 4}
	prev := -1
	for score := 0; score <= 100; score++ {
		rank := order[rating(score, bands)]
		assert.GreaterOrEqual(t, rank, prev, "rating regressed at score %d", score)
		prev = rank
	}
}

func TestLatestResponses_LatestWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	responses := []domain.AssessmentResponse{
		{ID: "r1", QuestionID: "q1", Value: "old", UpdatedAt: base},
		{ID: "r2", QuestionID: "q1", Value: "new", UpdatedAt: base.Add(time.Hour)},
		{ID: "r3", QuestionID: "q2", Value: "only", UpdatedAt: base},
	}

	latest := LatestResponses(responses)
	assert.Len(t, latest, 2)
	assert.Equal(t, "new", latest["q1"].Value)
	assert.Equal(t, "only", latest["q2"].Value)
}
