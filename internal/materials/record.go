// Package materials implements the record pipeline: imputation, outlier
// flagging, categorization and quality scoring over a batch of material
// records.
package materials

import (
	"fmt"
	"maps"

	"ai-processor/internal/shared/util"
)

// Field names read and written by the pipeline.
const (
	FieldMaterialType      = "material_type"
	FieldQuantity          = "quantity"
	FieldEnergyConsumption = "energy_consumption"
	FieldTransportDistance = "transport_distance"

	FieldAIImputed        = "ai_imputed"
	FieldAICategorized    = "ai_categorized"
	FieldOutlierFlag      = "outlier_flag"
	FieldOutlierReason    = "outlier_reason"
	FieldCategory         = "category"
	FieldConfidenceScore  = "confidence_score"
	FieldDataQualityScore = "data_quality_score"
)

// NumericFields lists the imputed and outlier-checked fields in check order.
var NumericFields = []string{FieldQuantity, FieldEnergyConsumption, FieldTransportDistance}

// Record is one material entry. Unknown input fields are carried through.
type Record map[string]any

func (r Record) flag(field string) bool {
	v, _ := r[field].(bool)
	return v
}

func (r Record) number(field string) (float64, bool, error) {
	return util.ToFloat(r[field])
}

// MaterialName returns material_type as text. Absent or null yields "".
func (r Record) MaterialName() string {
	switch v := r[FieldMaterialType].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func cloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		if r == nil {
			out[i] = Record{}
			continue
		}
		out[i] = maps.Clone(r)
	}
	return out
}
