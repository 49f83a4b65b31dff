package api

import (
	"time"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
)

type AssessmentResponse struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Value      any    `json:"value"`
}

type SaveResponsesRequest struct {
	Responses []AssessmentResponse `json:"responses"`
}

func (r SaveResponsesRequest) ToDomain(now time.Time) []domain.AssessmentResponse {
	records := make([]domain.AssessmentResponse, 0, len(r.Responses))
	for _, resp := range r.Responses {
		records = append(records, domain.AssessmentResponse{
			ID:         resp.ID,
			QuestionID: resp.QuestionID,
			Value:      resp.Value,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return records
}

type RiskItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Likelihood  int    `json:"likelihood"`
	Impact      int    `json:"impact"`
	Mitigation  string `json:"mitigation"`
	Owner       string `json:"owner"`
	Status      string `json:"status"`
}

type SaveRisksRequest struct {
	Risks []RiskItem `json:"risks"`
}

func (r SaveRisksRequest) ToDomain() []domain.RiskClassification {
	records := make([]domain.RiskClassification, 0, len(r.Risks))
	for _, item := range r.Risks {
		records = append(records, domain.RiskClassification{
			ID:          item.ID,
			Category:    domain.RiskCategory(item.Category),
			Description: item.Description,
			Likelihood:  item.Likelihood,
			Impact:      item.Impact,
			Mitigation:  item.Mitigation,
			Owner:       item.Owner,
			Status:      domain.RiskStatus(item.Status),
		})
	}
	return records
}

type MaturityDimensionInput struct {
	Dimension      string `json:"dimension"`
	Documentation  int    `json:"documentation"`
	Implementation int    `json:"implementation"`
	Enforcement    int    `json:"enforcement"`
	Measurement    int    `json:"measurement"`
	Improvement    int    `json:"improvement"`
}

type MaturityRequest struct {
	Industry   string                   `json:"industry"`
	Dimensions []MaturityDimensionInput `json:"dimensions"`
}

type UseCaseInput struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	DimensionScores map[string]float64 `json:"dimension_scores"`
}

type PrioritizeRequest struct {
	UseCases []UseCaseInput `json:"use_cases"`
}

func (r PrioritizeRequest) ToDomain() []domain.UseCase {
	cases := make([]domain.UseCase, 0, len(r.UseCases))
	for _, uc := range r.UseCases {
		dc := make([]domain.UseCaseDimensionScore, 0, len(uc.DimensionScores))
		for dim, score := range uc.DimensionScores {
			dc = append(dc, domain.UseCaseDimensionScore{
				Dimension: domain.PriorityDimension(dim),
				Score:     score,
			})
		}
		cases = append(cases, domain.UseCase{
			ID:              uc.ID,
			Name:            uc.Name,
			Description:     uc.Description,
			DimensionScores: dc,
		})
	}
	return cases
}

type RoiRequest struct {
	TeamSize              int     `json:"team_size"`
	AvgSalary             float64 `json:"avg_salary"`
	CurrentVelocity       float64 `json:"current_velocity"`
	ProjectedVelocityLift float64 `json:"projected_velocity_lift"`
	LicenseCostPerUser    float64 `json:"license_cost_per_user"`
	ImplementationCost    float64 `json:"implementation_cost"`
	TrainingCost          float64 `json:"training_cost"`
}

func (r RoiRequest) ToDomain() domain.RoiInputs {
	return domain.RoiInputs{
		TeamSize:              r.TeamSize,
		AvgSalary:             r.AvgSalary,
		CurrentVelocity:       r.CurrentVelocity,
		ProjectedVelocityLift: r.ProjectedVelocityLift,
		LicenseCostPerUser:    r.LicenseCostPerUser,
		ImplementationCost:    r.ImplementationCost,
		TrainingCost:          r.TrainingCost,
	}
}

type EnhancedRoiRequest struct {
	RoiRequest

	InfrastructureCost    float64 `json:"infrastructure_cost"`
	DataEngineeringCost   float64 `json:"data_engineering_cost"`
	ChangeManagementCost  float64 `json:"change_management_cost"`
	OngoingInfrastructure float64 `json:"ongoing_infrastructure"`
	SupportFTE            float64 `json:"support_fte"`
	SupportSalary         float64 `json:"support_salary"`
	RevenueIncreasePct    float64 `json:"revenue_increase_pct"`
	ErrorReductionPct     float64 `json:"error_reduction_pct"`
	AnnualErrorCost       float64 `json:"annual_error_cost"`
}

func (r EnhancedRoiRequest) ToDomain() domain.EnhancedRoiInputs {
	return domain.EnhancedRoiInputs{
		RoiInputs:             r.RoiRequest.ToDomain(),
		InfrastructureCost:    r.InfrastructureCost,
		DataEngineeringCost:   r.DataEngineeringCost,
		ChangeManagementCost:  r.ChangeManagementCost,
		OngoingInfrastructure: r.OngoingInfrastructure,
		SupportFTE:            r.SupportFTE,
		SupportSalary:         r.SupportSalary,
		RevenueIncreasePct:    r.RevenueIncreasePct,
		ErrorReductionPct:     r.ErrorReductionPct,
		AnnualErrorCost:       r.AnnualErrorCost,
	}
}

type BriefRequest struct {
	ROI *RoiRequest `json:"roi"`
}

type KPISummaryInput struct {
	AttainmentPct int `json:"attainment_pct"`
	KPICount      int `json:"kpi_count"`
	OnTrackCount  int `json:"on_track_count"`
}

// DecisionRequest carries the signals the server cannot derive from stored
// project state: KPI attainment, financial inputs, and the classification
// sign-off.
type DecisionRequest struct {
	KPI                         *KPISummaryInput `json:"kpi"`
	ROI                         *RoiRequest      `json:"roi"`
	DataClassificationSignedOff bool             `json:"data_classification_signed_off"`
}
