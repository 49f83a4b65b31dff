package domain

import "time"

type AssessmentDomain string

const (
	DomainInfrastructure AssessmentDomain = "infrastructure"
	DomainSecurity       AssessmentDomain = "security"
	DomainGovernance     AssessmentDomain = "governance"
	DomainEngineering    AssessmentDomain = "engineering"
	DomainBusiness       AssessmentDomain = "business"
)

// Domains lists the five assessment domains in weighting order.
var Domains = []AssessmentDomain{
	DomainInfrastructure,
	DomainSecurity,
	DomainGovernance,
	DomainEngineering,
	DomainBusiness,
}

func (d AssessmentDomain) IsValid() bool {
	switch d {
	case DomainInfrastructure, DomainSecurity, DomainGovernance, DomainEngineering, DomainBusiness:
		return true
	default:
		return false
	}
}

type QuestionType string

const (
	QuestionSingleSelect QuestionType = "single_select"
	QuestionMultiSelect  QuestionType = "multi_select"
	QuestionNumber       QuestionType = "number"
	QuestionText         QuestionType = "text"
)

type AssessmentQuestion struct {
	ID       string
	Section  string
	Domain   AssessmentDomain
	Text     string
	Type     QuestionType
	Options  []string
	Weight   float64
	Scoring  map[string]float64 // option -> percentage 0-100
	Required bool
	Order    int
}

// AssessmentResponse holds one answer to one question. Many responses may
// exist per question per project; the latest one wins.
type AssessmentResponse struct {
	ID         string
	ProjectID  string
	QuestionID string
	Value      any // string, []string or float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type DomainScore struct {
	Domain           AssessmentDomain
	Score            float64
	MaxScore         float64
	Percentage       int // 0-100
	PassThreshold    int
	Passed           bool
	Recommendations  []string
	RemediationTasks []string
}

type FeasibilityScore struct {
	DomainScores     []DomainScore
	OverallScore     int // 0-100, weighted
	Rating           string
	Recommendations  []string
	RemediationTasks []string
}
