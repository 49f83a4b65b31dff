package feasibility

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

// Settings contains the weighting and pass-threshold configuration for
// feasibility scoring. Weights must sum to 1.0.
type Settings struct {
	DomainWeights  map[domain.AssessmentDomain]float64
	PassThresholds map[domain.AssessmentDomain]int
	RatingBands    []RatingBand
}

// RatingBand maps a minimum overall score to a rating label. Bands are
// evaluated highest-first, so labels stay monotonic in the score.
type RatingBand struct {
	MinScore int
	Label    string
}

// DefaultSettings returns the standard weighting scheme. Infrastructure and
// security carry the most weight because they gate everything downstream.
func DefaultSettings() Settings {
	return Settings{
		DomainWeights: map[domain.AssessmentDomain]float64{
			domain.DomainInfrastructure: 0.25,
			domain.DomainSecurity:       0.25,
			domain.DomainGovernance:     0.20,
			domain.DomainEngineering:    0.15,
			domain.DomainBusiness:       0.15,
		},
		PassThresholds: map[domain.AssessmentDomain]int{
			domain.DomainInfrastructure: 70,
			domain.DomainSecurity:       75,
			domain.DomainGovernance:     65,
			domain.DomainEngineering:    60,
			domain.DomainBusiness:       60,
		},
		RatingBands: []RatingBand{
			{MinScore: 90, Label: "excellent"},
			{MinScore: 75, Label: "strong"},
			{MinScore: 60, Label: "moderate"},
			{MinScore: 40, Label: "marginal"},
			{MinScore: 0, Label: "low"},
		},
	}
}

// ScoreResponse scores one response against its question, returning a value
// in [0, question.Weight]. Numeric answers are treated as percentages and
// clamped to [0, 100]; unanswered or unscorable questions score zero.
func ScoreResponse(q domain.AssessmentQuestion, r *domain.AssessmentResponse) float64 {
	if r == nil || r.Value == nil {
		return 0
	}

	switch q.Type {
	case domain.QuestionSingleSelect:
		v, ok := r.Value.(string)
		if !ok || len(q.Scoring) == 0 {
			return 0
		}
		pct, _ := scoreFor(q.Scoring, v)
		return pct / 100 * q.Weight
	case domain.QuestionMultiSelect:
		selected, ok := toStringSlice(r.Value)
		if !ok || len(q.Scoring) == 0 {
			return 0
		}
		var sum float64
		matched := 0
		for _, opt := range selected {
			if pct, found := scoreFor(q.Scoring, opt); found {
				sum += pct
				matched++
			}
		}
		if matched == 0 {
			return 0
		}
		return sum / float64(matched) / 100 * q.Weight
	case domain.QuestionNumber:
		v, ok := toFloat(r.Value)
		if !ok {
			return 0
		}
		return clamp(v, 0, 100) / 100 * q.Weight
	default:
		// text answers carry no scoring map
		return 0
	}
}

// CalculateDomainScore aggregates every response for one domain into a
// percentage and pass verdict. An empty response set scores 0%, not passed.
func CalculateDomainScore(
	d domain.AssessmentDomain,
	responses map[string]*domain.AssessmentResponse,
	questions []domain.AssessmentQuestion,
	settings Settings,
) domain.DomainScore {
	var earned, max float64
	for _, q := range questions {
		if q.Domain != d {
			continue
		}
		max += q.Weight
		earned += ScoreResponse(q, responses[q.ID])
	}

	pct := 0
	if max > 0 {
		pct = int(math.Round(earned / max * 100))
	}

	threshold := settings.PassThresholds[d]
	score := domain.DomainScore{
		Domain:        d,
		Score:         earned,
		MaxScore:      max,
		Percentage:    pct,
		PassThreshold: threshold,
		Passed:        pct >= threshold,
	}

	if !score.Passed {
		score.Recommendations = append(score.Recommendations,
			fmt.Sprintf("Strengthen %s readiness: scored %d%%, threshold is %d%%", d, pct, threshold))
		score.RemediationTasks = append(score.RemediationTasks,
			fmt.Sprintf("Close the %s gaps surfaced by the lowest-scoring questions before pilot expansion", d))
	}

	return score
}

// CalculateFeasibility computes per-domain scores and the weighted overall
// score. Responses are keyed by question ID; callers resolve latest-wins
// upstream. Recommendations are deduplicated, weakest domain first.
func CalculateFeasibility(
	responses map[string]*domain.AssessmentResponse,
	questions []domain.AssessmentQuestion,
	settings Settings,
) domain.FeasibilityScore {
	var domainScores []domain.DomainScore
	weighted := 0.0
	for _, d := range domain.Domains {
		ds := CalculateDomainScore(d, responses, questions, settings)
		domainScores = append(domainScores, ds)
		weighted += float64(ds.Percentage) * settings.DomainWeights[d]
	}

	overall := int(math.Round(weighted))

	result := domain.FeasibilityScore{
		DomainScores: domainScores,
		OverallScore: overall,
		Rating:       rating(overall, settings.RatingBands),
	}

	ordered := append([]domain.DomainScore(nil), domainScores...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Percentage < ordered[j].Percentage
	})
	seenRec := map[string]bool{}
	seenTask := map[string]bool{}
	for _, ds := range ordered {
		for _, rec := range ds.Recommendations {
			if !seenRec[rec] {
				seenRec[rec] = true
				result.Recommendations = append(result.Recommendations, rec)
			}
		}
		for _, task := range ds.RemediationTasks {
			if !seenTask[task] {
				seenTask[task] = true
				result.RemediationTasks = append(result.RemediationTasks, task)
			}
		}
	}

	return result
}

func rating(score int, bands []RatingBand) string {
	ordered := append([]RatingBand(nil), bands...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MinScore > ordered[j].MinScore
	})
	for _, b := range ordered {
		if score >= b.MinScore {
			return b.Label
		}
	}
	return "low"
}

// LatestResponses resolves the latest-wins rule: for each question keep the
// response with the newest UpdatedAt, falling back to input order on ties.
func LatestResponses(responses []domain.AssessmentResponse) map[string]*domain.AssessmentResponse {
	latest := make(map[string]*domain.AssessmentResponse, len(responses))
	for i := range responses {
		r := &responses[i]
		current, exists := latest[r.QuestionID]
		if !exists || !r.UpdatedAt.Before(current.UpdatedAt) {
			latest[r.QuestionID] = r
		}
	}
	return latest
}

// scoreFor matches answer text against the scoring map. Config loaders
// lower-case map keys, so after an exact miss the lookup retries folded.
func scoreFor(scoring map[string]float64, answer string) (float64, bool) {
	if pct, ok := scoring[answer]; ok {
		return pct, true
	}
	for option, pct := range scoring {
		if strings.EqualFold(option, answer) {
			return pct, true
		}
	}
	return 0, false
}

func toStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
