// Package recommendations turns aggregate LCA results into a short, ranked
// list of sustainability recommendations.
package recommendations

import (
	"fmt"
	"math"
	"sort"

	"ai-processor/internal/shared/util"
)

// MaxRecommendations caps the list returned by Generate.
const MaxRecommendations = 6

const (
	carbonThreshold       = 50.0
	carbonHighThreshold   = 200.0
	energyThreshold       = 500.0
	materialImpactMin     = 20.0
	categoryCO2Min        = 30.0
	topMaterials          = 3
	topCategories         = 2
	maxImpactScore        = 10.0
	maxCarbonReductionPct = 50.0
	circularEconomyImpact = 6.0
)

type input struct {
	co2        float64
	energy     float64
	materials  []MaterialImpact
	categories []CategoryImpact
}

// Generate builds recommendations from results. An empty summary yields an
// empty list. The context is currently unused.
func Generate(results LCAResults, _ Context) ([]Recommendation, error) {
	if len(results.Summary) == 0 {
		return []Recommendation{}, nil
	}
	co2, err := summaryValue(results.Summary, "total_co2_kg")
	if err != nil {
		return nil, err
	}
	energy, err := summaryValue(results.Summary, "total_energy_mj")
	if err != nil {
		return nil, err
	}
	in := input{
		co2:        co2,
		energy:     energy,
		materials:  results.MaterialBreakdown,
		categories: results.CategoryBreakdown,
	}

	mappers := []func(input) []Recommendation{
		fromCarbon,
		fromEnergy,
		fromMaterials,
		fromCategories,
		func(input) []Recommendation { return []Recommendation{circularEconomy()} },
	}
	out := make([]Recommendation, 0, 8)
	for _, mapper := range mappers {
		out = append(out, mapper(in)...)
	}

	sortRecommendations(out)
	return truncate(out), nil
}

func summaryValue(summary map[string]any, key string) (float64, error) {
	f, _, err := util.ToFloat(summary[key])
	if err != nil {
		return 0, fmt.Errorf("summary.%s: %w", key, err)
	}
	return f, nil
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// sortRecommendations orders by priority then impact score, both descending.
// Ties keep generation order.
func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if priorityRank(a.Priority) != priorityRank(b.Priority) {
			return priorityRank(a.Priority) > priorityRank(b.Priority)
		}
		return a.ImpactScore > b.ImpactScore
	})
}

// truncate keeps the first MaxRecommendations entries, except that the
// circular economy entry always survives: unlike a plain first-N cut, if
// ranking pushed it out it replaces the entry in the last slot.
func truncate(items []Recommendation) []Recommendation {
	if len(items) <= MaxRecommendations {
		return items
	}
	kept := items[:MaxRecommendations]
	for _, r := range kept {
		if r.Type == TypeCircularEconomy {
			return kept
		}
	}
	for _, r := range items[MaxRecommendations:] {
		if r.Type == TypeCircularEconomy {
			kept[MaxRecommendations-1] = r
			break
		}
	}
	return kept
}

func fromCarbon(in input) []Recommendation {
	if in.co2 <= carbonThreshold {
		return nil
	}
	priority := PriorityMedium
	emphasis := ""
	if in.co2 > carbonHighThreshold {
		priority = PriorityHigh
		emphasis = "significantly "
	}
	reduction := int(math.Min(maxCarbonReductionPct, math.Floor(in.co2*0.3)))
	return []Recommendation{{
		Type:               TypeCarbonReduction,
		Priority:           priority,
		Title:              "Carbon Footprint Optimization",
		Description:        fmt.Sprintf("Your assessment shows %.1f kg CO2 emissions. This is %sabove sustainable levels.", in.co2, emphasis),
		ImpactScore:        math.Min(maxImpactScore, in.co2/20),
		Actions:            carbonActions(in.materials),
		EstimatedReduction: fmt.Sprintf("%d%%", reduction),
	}}
}

func fromEnergy(in input) []Recommendation {
	if in.energy <= energyThreshold {
		return nil
	}
	return []Recommendation{{
		Type:               TypeEnergyOptimization,
		Priority:           PriorityMedium,
		Title:              "Energy Efficiency Improvement",
		Description:        fmt.Sprintf("Total energy consumption of %.1f MJ can be optimized through efficient processes and renewable energy.", in.energy),
		ImpactScore:        math.Min(maxImpactScore, in.energy/100),
		Actions:            append([]string(nil), energyActions...),
		EstimatedReduction: "20-35%",
	}}
}

func fromMaterials(in input) []Recommendation {
	if len(in.materials) == 0 {
		return nil
	}
	ranked := append([]MaterialImpact(nil), in.materials...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalImpact > ranked[j].TotalImpact
	})
	if len(ranked) > topMaterials {
		ranked = ranked[:topMaterials]
	}

	out := make([]Recommendation, 0, len(ranked))
	for _, m := range ranked {
		if m.TotalImpact <= materialImpactMin {
			continue
		}
		title := m.MaterialType
		if title == "" {
			title = "Material"
		}
		out = append(out, Recommendation{
			Type:               TypeMaterialSubstitution,
			Priority:           PriorityMedium,
			Title:              fmt.Sprintf("Optimize %s Usage", title),
			Description:        fmt.Sprintf("%s contributes significantly to environmental impact.", m.MaterialType),
			ImpactScore:        math.Min(maxImpactScore, m.TotalImpact/10),
			Actions:            materialActions(m.MaterialType),
			EstimatedReduction: "15-30%",
		})
	}
	return out
}

func fromCategories(in input) []Recommendation {
	if len(in.categories) == 0 {
		return nil
	}
	ranked := append([]CategoryImpact(nil), in.categories...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CO2 > ranked[j].CO2
	})
	if len(ranked) > topCategories {
		ranked = ranked[:topCategories]
	}

	out := make([]Recommendation, 0, len(ranked))
	for _, c := range ranked {
		if c.CO2 <= categoryCO2Min {
			continue
		}
		out = append(out, Recommendation{
			Type:               TypeCategoryOptimization,
			Priority:           PriorityLow,
			Title:              fmt.Sprintf("Focus on %s Category", c.Category),
			Description:        fmt.Sprintf("%s materials account for %.1f%% of your carbon footprint.", c.Category, c.Percentage),
			ImpactScore:        c.Percentage / 10,
			Actions:            categoryActions(c.Category),
			EstimatedReduction: "10-25%",
		})
	}
	return out
}

func circularEconomy() Recommendation {
	return Recommendation{
		Type:               TypeCircularEconomy,
		Priority:           PriorityLow,
		Title:              "Implement Circular Economy Principles",
		Description:        "Adopting circular economy strategies can significantly reduce environmental impact across all categories.",
		ImpactScore:        circularEconomyImpact,
		Actions:            append([]string(nil), circularActions...),
		EstimatedReduction: "5-20%",
	}
}
