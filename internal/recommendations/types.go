package recommendations

// Type identifies the rule that produced a recommendation.
type Type string

const (
	TypeCarbonReduction      Type = "carbon_reduction"
	TypeEnergyOptimization   Type = "energy_optimization"
	TypeMaterialSubstitution Type = "material_substitution"
	TypeCategoryOptimization Type = "category_optimization"
	TypeCircularEconomy      Type = "circular_economy"
)

// Priority orders recommendations before impact score.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one ranked, human-readable suggestion.
type Recommendation struct {
	Type               Type     `json:"type"`
	Priority           Priority `json:"priority"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	ImpactScore        float64  `json:"impact_score"`
	Actions            []string `json:"actions"`
	EstimatedReduction string   `json:"estimated_reduction"`
}

// MaterialImpact is one entry of an LCA material breakdown.
type MaterialImpact struct {
	MaterialType string  `json:"material_type"`
	TotalImpact  float64 `json:"total_impact"`
	CO2Impact    float64 `json:"co2_impact"`
}

// CategoryImpact is one entry of an LCA category breakdown.
type CategoryImpact struct {
	Category   string  `json:"category"`
	CO2        float64 `json:"co2"`
	Percentage float64 `json:"percentage"`
}

// LCAResults is the aggregate produced by the external assessment step.
// Summary is kept loosely typed: an empty or absent summary means there is
// nothing to recommend.
type LCAResults struct {
	Summary           map[string]any   `json:"summary"`
	MaterialBreakdown []MaterialImpact `json:"material_breakdown"`
	CategoryBreakdown []CategoryImpact `json:"category_breakdown"`
	Warnings          []string         `json:"warnings"`
}

// Context is accepted with a request and currently has no effect.
type Context map[string]any
