package materials

import (
	"strings"

	"ai-processor/internal/catalog"
	"ai-processor/internal/categorize"
)

// Options is accepted alongside a batch and currently has no effect.
type Options map[string]any

// Info summarizes a processed batch.
type Info struct {
	TotalRecords       int `json:"total_records"`
	ImputedRecords     int `json:"imputed_records"`
	CategorizedRecords int `json:"categorized_records"`
}

// Categorizer maps a material name to a category and confidence.
type Categorizer interface {
	Categorize(name string) (string, float64)
}

// Pipeline runs the record stages in order. Each stage sees the whole batch
// before the next one starts, since imputation and outlier bounds are
// computed per field across all records.
type Pipeline struct {
	Categorizer    Categorizer
	EstimateEnergy func(materialType string) float64
}

// NewPipeline builds a pipeline using the embedded energy factor table.
func NewPipeline(c Categorizer) *Pipeline {
	if c == nil {
		c = categorize.NewDefaultEngine()
	}
	return &Pipeline{Categorizer: c, EstimateEnergy: catalog.EstimateEnergy}
}

// Process enriches a copy of records and returns it with batch counters.
// The input slice and its maps are not modified.
func (p *Pipeline) Process(records []Record, _ Options) ([]Record, Info, error) {
	out := cloneRecords(records)
	initFlags(out)
	if err := p.impute(out); err != nil {
		return nil, Info{}, err
	}
	if err := flagOutliers(out); err != nil {
		return nil, Info{}, err
	}
	p.categorize(out)
	scoreQuality(out)
	return out, summarize(out), nil
}

func initFlags(records []Record) {
	for _, r := range records {
		r[FieldAIImputed] = false
		r[FieldAICategorized] = false
		r[FieldOutlierFlag] = false
		r[FieldConfidenceScore] = 1.0
	}
}

func (p *Pipeline) categorize(records []Record) {
	for _, r := range records {
		name := strings.ToLower(strings.TrimSpace(r.MaterialName()))
		category, confidence := p.Categorizer.Categorize(name)
		r[FieldCategory] = category
		r[FieldConfidenceScore] = confidence
		if categorize.IsAICategorized(confidence) {
			r[FieldAICategorized] = true
		}
	}
}

func summarize(records []Record) Info {
	info := Info{TotalRecords: len(records)}
	for _, r := range records {
		if r.flag(FieldAIImputed) {
			info.ImputedRecords++
		}
		if r.flag(FieldAICategorized) {
			info.CategorizedRecords++
		}
	}
	return info
}
