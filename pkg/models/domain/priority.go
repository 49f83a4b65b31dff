package domain

type PriorityDimension string

const (
	PriorityStrategicValue       PriorityDimension = "strategic_value"
	PriorityTechnicalFeasibility PriorityDimension = "technical_feasibility"
	PriorityImplementationRisk   PriorityDimension = "implementation_risk"
	PriorityTimeToValue          PriorityDimension = "time_to_value"
)

type Quadrant string

const (
	QuadrantStrategicImperative Quadrant = "strategic_imperative"
	QuadrantHighValue           Quadrant = "high_value"
	QuadrantFoundationBuilder   Quadrant = "foundation_builder"
	QuadrantWatchList           Quadrant = "watch_list"
)

type UseCaseDimensionScore struct {
	Dimension PriorityDimension
	Score     float64 // 0-10
}

type UseCase struct {
	ID              string
	Name            string
	Description     string
	DimensionScores []UseCaseDimensionScore
}

type UseCasePriority struct {
	UseCase            UseCase
	CompositeScore     float64 // 0-10, 2 decimals
	Quadrant           Quadrant
	ImplementationWave int // 1-3
}
