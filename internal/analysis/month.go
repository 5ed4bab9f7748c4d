package analysis

import (
	"fmt"

	"portfolio-dashboard/internal/data"
)

// PoolMonth gathers every non-missing replicate value from rows whose month
// column equals month. It fails with data.ErrMissingColumn when the table has
// no month column and ErrNoReplicateData when it has no year columns.
func PoolMonth(t *data.Table, month int) ([]float64, error) {
	rows, cols, err := monthRows(t, month)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, c := range cols {
		for _, r := range rows {
			out = append(out, c[r])
		}
	}
	return finite(out), nil
}

// MonthReplicates returns one value per replicate year from the first row of
// the given month. Missing months yield an empty slice.
func MonthReplicates(t *data.Table, month int) ([]float64, error) {
	rows, cols, err := monthRows(t, month)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([]float64, 0, len(cols))
	for _, c := range cols {
		out = append(out, c[rows[0]])
	}
	return finite(out), nil
}

func monthRows(t *data.Table, month int) ([]int, [][]float64, error) {
	months, err := t.Floats("month")
	if err != nil {
		return nil, nil, fmt.Errorf("month filter: %w", err)
	}
	years, cols := t.Replicates()
	if len(years) == 0 {
		return nil, nil, ErrNoReplicateData
	}
	var rows []int
	for i, m := range months {
		if m == float64(month) {
			rows = append(rows, i)
		}
	}
	return rows, cols, nil
}
