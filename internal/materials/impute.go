package materials

const (
	DefaultQuantity          = 1.0
	DefaultTransportDistance = 100.0
)

// column is one numeric field read across the batch. A cell is missing when
// it is absent, null or exactly zero.
type column struct {
	missing []bool
	valid   []float64
}

func readColumn(records []Record, field string) (column, error) {
	col := column{missing: make([]bool, len(records))}
	for i, r := range records {
		f, ok, err := r.number(field)
		if err != nil {
			return column{}, &FieldError{Index: i, Field: field, Value: r[field]}
		}
		if !ok || f == 0 {
			col.missing[i] = true
			continue
		}
		col.valid = append(col.valid, f)
	}
	return col, nil
}

func (p *Pipeline) impute(records []Record) error {
	for _, field := range NumericFields {
		col, err := readColumn(records, field)
		if err != nil {
			return err
		}
		if len(col.valid) == len(records) {
			continue
		}

		var fill func(Record) float64
		if len(col.valid) == 0 {
			fill = p.defaultFor(field)
		} else {
			m := median(col.valid)
			fill = func(Record) float64 { return m }
		}

		for i, r := range records {
			if !col.missing[i] {
				continue
			}
			r[field] = fill(r)
			r[FieldAIImputed] = true
		}
	}
	return nil
}

// defaultFor returns the per-record value used when a field is missing in
// every record of the batch.
func (p *Pipeline) defaultFor(field string) func(Record) float64 {
	switch field {
	case FieldQuantity:
		return func(Record) float64 { return DefaultQuantity }
	case FieldTransportDistance:
		return func(Record) float64 { return DefaultTransportDistance }
	default:
		return func(r Record) float64 { return p.EstimateEnergy(r.MaterialName()) }
	}
}
