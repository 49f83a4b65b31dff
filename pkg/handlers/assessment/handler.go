package assessment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/api"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/decision"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/feasibility"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/finance"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/governance"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/maturity"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/priority"
	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/services/risk"
	governancestore "github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/store/duckdb/governance"
	responsestore "github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/store/duckdb/responses"
	riskstore "github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/store/duckdb/risks"
)

// Engines bundles the scoring configuration injected into the handler.
type Engines struct {
	Questions    []domain.AssessmentQuestion
	Feasibility  feasibility.Settings
	TierBands    risk.TierBands
	MaturityRecs maturity.Recommendations
	Priority     priority.Weights
	PriorityBand priority.Bands
	Finance      finance.Settings
	Scenarios    []finance.ScenarioDef
	Governance   governance.Settings
	Synthesizer  *decision.Synthesizer
	Briefs       *decision.BriefGenerator
}

type Handler struct {
	engines    Engines
	responses  responsestore.Store
	risks      riskstore.Store
	governance governancestore.Store
}

func NewHandler(engines Engines, responses responsestore.Store, risks riskstore.Store, gov governancestore.Store) *Handler {
	return &Handler{
		engines:    engines,
		responses:  responses,
		risks:      risks,
		governance: gov,
	}
}

// TODO: introduce api response models for the summary endpoints instead of
// encoding domain values directly.

func (h *Handler) SaveResponses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	var req api.SaveResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.responses.Add(ctx, project, req.ToDomain(time.Now().UTC())); err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to save responses")
		http.Error(w, "failed to save responses", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetFeasibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	stored, err := h.responses.GetLatest(ctx, project)
	if err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to load responses")
		http.Error(w, "failed to load responses", http.StatusInternalServerError)
		return
	}

	latest := feasibility.LatestResponses(stored)
	score := feasibility.CalculateFeasibility(latest, h.engines.Questions, h.engines.Feasibility)
	h.encode(w, logger, score)
}

func (h *Handler) SaveRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	var req api.SaveRisksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.risks.Add(ctx, project, req.ToDomain()); err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to save risks")
		http.Error(w, "failed to save risks", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetRiskSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	records, err := h.risks.List(ctx, project)
	if err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to load risks")
		http.Error(w, "failed to load risks", http.StatusInternalServerError)
		return
	}

	h.encode(w, logger, risk.SummarizeRisks(records, h.engines.TierBands))
}

func (h *Handler) ScoreMaturity(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.MaturityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var scores []domain.MaturityDimensionScore
	for _, dim := range req.Dimensions {
		scores = append(scores, maturity.CalculateDimensionScore(
			domain.MaturityDimension(dim.Dimension),
			domain.MaturitySubscores{
				Documentation:  dim.Documentation,
				Implementation: dim.Implementation,
				Enforcement:    dim.Enforcement,
				Measurement:    dim.Measurement,
				Improvement:    dim.Improvement,
			},
		))
	}

	assessment := maturity.CalculateOverallMaturity(scores)
	assessment.Industry = req.Industry
	assessment.Recommendations = maturity.GetMaturityRecommendations(scores, h.engines.MaturityRecs)
	h.encode(w, logger, assessment)
}

func (h *Handler) PrioritizeUseCases(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.PrioritizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.encode(w, logger, priority.PrioritizeUseCases(req.ToDomain(), h.engines.Priority, h.engines.PriorityBand))
}

func (h *Handler) CalculateRoi(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.RoiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.encode(w, logger, finance.CalculateRoi(req.ToDomain(), h.engines.Finance))
}

func (h *Handler) CalculateSensitivity(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.RoiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.encode(w, logger, finance.CalculateSensitivity(req.ToDomain(), h.engines.Finance))
}

func (h *Handler) CalculateEnhancedRoi(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.EnhancedRoiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.encode(w, logger, finance.CalculateEnhancedRoi(req.ToDomain(), h.engines.Finance, h.engines.Scenarios))
}

func (h *Handler) SaveGovernance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	var req api.GovernanceBundle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.governance.AddGates(ctx, project, req.GatesToDomain()); err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to save gates")
		http.Error(w, "failed to save governance state", http.StatusInternalServerError)
		return
	}
	if err := h.governance.AddControls(ctx, project, req.ControlsToDomain()); err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to save controls")
		http.Error(w, "failed to save governance state", http.StatusInternalServerError)
		return
	}
	if err := h.governance.AddExceptions(ctx, project, req.ExceptionsToDomain()); err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to save exceptions")
		http.Error(w, "failed to save governance state", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	gates, controls, exceptions, risks, err := h.loadGovernanceState(r)
	if err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to load governance state")
		http.Error(w, "failed to load governance state", http.StatusInternalServerError)
		return
	}

	classified := classifyRisks(risks, h.engines.TierBands)
	report := governance.EvaluateReadiness(gates, controls, classified, exceptions, h.engines.Governance)
	h.encode(w, logger, report)
}

func (h *Handler) SynthesizeDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	var req api.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	gates, controls, _, risks, err := h.loadGovernanceState(r)
	if err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to load governance state")
		http.Error(w, "failed to load governance state", http.StatusInternalServerError)
		return
	}

	stored, err := h.responses.GetLatest(ctx, project)
	if err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to load responses")
		http.Error(w, "failed to load responses", http.StatusInternalServerError)
		return
	}

	approved := 0
	evidenceComplete := true
	for _, gate := range gates {
		if gate.Decision == domain.GateDecisionApproved {
			approved++
		}
		if !governance.EvidenceComplete(gate) {
			evidenceComplete = false
		}
	}

	signals := domain.DecisionSignals{
		Risks:              classifyRisks(risks, h.engines.TierBands),
		RisksPopulated:     len(risks) > 0,
		ControlPassRate:    governance.ControlPassRate(controls),
		ControlsPopulated:  len(controls) > 0,
		GatesApproved:      approved,
		GatesTotal:         len(gates),
		EvidenceComplete:   evidenceComplete,
		DataClassification: req.DataClassificationSignedOff,
	}
	if req.KPI != nil {
		signals.KPI = domain.KPISummary{
			AttainmentPct: req.KPI.AttainmentPct,
			KPICount:      req.KPI.KPICount,
			OnTrackCount:  req.KPI.OnTrackCount,
			Populated:     true,
		}
	}
	if req.ROI != nil {
		results := finance.CalculateRoi(req.ROI.ToDomain(), h.engines.Finance)
		signals.ROI = &results
	}
	if len(stored) > 0 {
		score := feasibility.CalculateFeasibility(
			feasibility.LatestResponses(stored), h.engines.Questions, h.engines.Feasibility)
		signals.Feasibility = &score
	}

	h.encode(w, logger, h.engines.Synthesizer.Recommend(signals))
}

func (h *Handler) GenerateBrief(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	project := chi.URLParam(r, "project")

	var req api.BriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	gates, controls, exceptions, risks, err := h.loadGovernanceState(r)
	if err != nil {
		logger.Error().Err(err).Str("project", project).Msg("failed to load governance state")
		http.Error(w, "failed to load governance state", http.StatusInternalServerError)
		return
	}

	classified := classifyRisks(risks, h.engines.TierBands)
	summary := risk.SummarizeRisks(risks, h.engines.TierBands)
	readiness := governance.EvaluateReadiness(gates, controls, classified, exceptions, h.engines.Governance)

	inputs := decision.BriefInputs{
		ProjectID:   project,
		RiskSummary: &summary,
		Risks:       classified,
		Readiness:   &readiness,
		Gates:       gates,
	}
	if req.ROI != nil {
		results := finance.CalculateRoi(req.ROI.ToDomain(), h.engines.Finance)
		inputs.ROI = &results
	}

	h.encode(w, logger, h.engines.Briefs.Generate(inputs))
}

func (h *Handler) loadGovernanceState(r *http.Request) (
	[]domain.GovernanceGate,
	[]domain.ControlCheck,
	[]domain.RiskException,
	[]domain.RiskClassification,
	error,
) {
	ctx := r.Context()
	project := chi.URLParam(r, "project")

	gates, err := h.governance.ListGates(ctx, project)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	controls, err := h.governance.ListControls(ctx, project)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	exceptions, err := h.governance.ListExceptions(ctx, project)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	risks, err := h.risks.List(ctx, project)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return gates, controls, exceptions, risks, nil
}

func (h *Handler) encode(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

// classifyRisks derives each risk's tier before governance evaluation; the
// store keeps tiers unmaterialized.
func classifyRisks(risks []domain.RiskClassification, bands risk.TierBands) []domain.RiskClassification {
	out := make([]domain.RiskClassification, len(risks))
	for i, r := range risks {
		r.Tier = risk.Classify(r.Likelihood, r.Impact, bands)
		out[i] = r
	}
	return out
}
