package config

import (
	"fmt"
	"math"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/feasibility"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/priority"
	"github.com/spf13/viper"
)

// ScoringProfile is the declarative weighting scheme loaded from YAML. A
// zero field falls back to the engine default, so a profile file only needs
// to override what it changes.
type ScoringProfile struct {
	QuestionBankPath string             `mapstructure:"question_bank"`
	DomainWeights    map[string]float64 `mapstructure:"domain_weights"`
	PassThresholds   map[string]int     `mapstructure:"pass_thresholds"`
	PriorityWeights  map[string]float64 `mapstructure:"priority_weights"`
}

// LoadScoringProfile reads a scoring profile from the given YAML file.
func LoadScoringProfile(path string) (*ScoringProfile, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scoring profile: %w", err)
	}

	var profile ScoringProfile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse scoring profile: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Validate checks that any overridden weight tables still sum to 1.0.
func (p *ScoringProfile) Validate() error {
	if len(p.DomainWeights) > 0 {
		sum := 0.0
		for name, w := range p.DomainWeights {
			if !domain.AssessmentDomain(name).IsValid() {
				return fmt.Errorf("unknown assessment domain %q in profile", name)
			}
			sum += w
		}
		if math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("domain weights must sum to 1.0, got %v", sum)
		}
	}
	if len(p.PriorityWeights) > 0 {
		sum := 0.0
		for _, w := range p.PriorityWeights {
			sum += w
		}
		if math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("priority weights must sum to 1.0, got %v", sum)
		}
	}
	return nil
}

// FeasibilitySettings merges the profile over the default feasibility
// settings.
func (p *ScoringProfile) FeasibilitySettings() feasibility.Settings {
	settings := feasibility.DefaultSettings()
	for name, w := range p.DomainWeights {
		settings.DomainWeights[domain.AssessmentDomain(name)] = w
	}
	for name, threshold := range p.PassThresholds {
		settings.PassThresholds[domain.AssessmentDomain(name)] = threshold
	}
	return settings
}

// PriorityWeightsOrDefault merges the profile over the default priority
// weights.
func (p *ScoringProfile) PriorityWeightsOrDefault() priority.Weights {
	weights := priority.DefaultWeights()
	for name, w := range p.PriorityWeights {
		weights[domain.PriorityDimension(name)] = w
	}
	return weights
}
