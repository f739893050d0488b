package materials

// flagOutliers marks values outside the IQR fences of their field. Fields are
// checked in NumericFields order, so the reason names the last failing field.
func flagOutliers(records []Record) error {
	for _, field := range NumericFields {
		values := make([]float64, 0, len(records))
		owners := make([]int, 0, len(records))
		for i, r := range records {
			f, ok, err := r.number(field)
			if err != nil {
				return &FieldError{Index: i, Field: field, Value: r[field]}
			}
			if !ok {
				continue
			}
			values = append(values, f)
			owners = append(owners, i)
		}
		if len(values) == 0 {
			continue
		}

		lower, upper := iqrBounds(values)
		for j, v := range values {
			if v < lower || v > upper {
				r := records[owners[j]]
				r[FieldOutlierFlag] = true
				r[FieldOutlierReason] = "Statistical outlier in " + field
			}
		}
	}
	return nil
}
