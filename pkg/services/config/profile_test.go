package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScoringProfile(t *testing.T) {
	path := writeProfile(t, `
question_bank: configs/questionbank.yaml
domain_weights:
  infrastructure: 0.20
  security: 0.30
  governance: 0.20
  engineering: 0.15
  business: 0.15
pass_thresholds:
  security: 80
`)

	profile, err := LoadScoringProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "configs/questionbank.yaml", profile.QuestionBankPath)
	assert.Equal(t, 0.30, profile.DomainWeights["security"])
	assert.Equal(t, 80, profile.PassThresholds["security"])
}

func TestLoadScoringProfile_MissingFile(t *testing.T) {
	_, err := LoadScoringProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	profile := &ScoringProfile{
		DomainWeights: map[string]float64{
			"infrastructure": 0.50,
			"security":       0.30,
		},
	}
	assert.ErrorContains(t, profile.Validate(), "sum to 1.0")
}

func TestValidate_UnknownDomain(t *testing.T) {
	profile := &ScoringProfile{
		DomainWeights: map[string]float64{"procurement": 1.0},
	}
	assert.ErrorContains(t, profile.Validate(), "unknown assessment domain")
}

func TestValidate_PriorityWeightsMustSumToOne(t *testing.T) {
	profile := &ScoringProfile{
		PriorityWeights: map[string]float64{"strategic_value": 0.90},
	}
	assert.ErrorContains(t, profile.Validate(), "priority weights must sum to 1.0")
}

func TestValidate_EmptyProfilePasses(t *testing.T) {
	profile := &ScoringProfile{}
	assert.NoError(t, profile.Validate())
}

func TestFeasibilitySettings_MergesOverDefaults(t *testing.T) {
	profile := &ScoringProfile{
		DomainWeights: map[string]float64{
			"infrastructure": 0.20,
			"security":       0.30,
			"governance":     0.20,
			"engineering":    0.15,
			"business":       0.15,
		},
		PassThresholds: map[string]int{"security": 80},
	}

	settings := profile.FeasibilitySettings()
	assert.Equal(t, 0.30, settings.DomainWeights[domain.DomainSecurity])
	assert.Equal(t, 80, settings.PassThresholds[domain.DomainSecurity])
	// untouched entries keep their defaults
	assert.Equal(t, 0.15, settings.DomainWeights[domain.DomainBusiness])
	assert.Equal(t, 70, settings.PassThresholds[domain.DomainInfrastructure])
}

func TestPriorityWeightsOrDefault(t *testing.T) {
	profile := &ScoringProfile{
		PriorityWeights: map[string]float64{
			"strategic_value":       0.50,
			"technical_feasibility": 0.20,
			"implementation_risk":   0.15,
			"time_to_value":         0.15,
		},
	}

	weights := profile.PriorityWeightsOrDefault()
	assert.Equal(t, 0.50, weights[domain.PriorityStrategicValue])
	assert.Equal(t, 0.20, weights[domain.PriorityTechnicalFeasibility])
}

func TestPriorityWeightsOrDefault_EmptyUsesDefaults(t *testing.T) {
	profile := &ScoringProfile{}
	weights := profile.PriorityWeightsOrDefault()
	assert.Equal(t, 0.40, weights[domain.PriorityStrategicValue])
}
