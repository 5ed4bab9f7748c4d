package dashboard

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
)

// WriteChartCSV writes every series of c to path, one row per point.
func WriteChartCSV(path string, c *Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodeChartCSV(f, c)
}

// EncodeChartCSV writes the chart in long form: series, index, x, y, lower,
// upper. Panels of a combined chart are prefixed with their metric.
func EncodeChartCSV(out io.Writer, c *Chart) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{"series", "index", "x", "y", "lower", "upper"}
	if err := w.Write(header); err != nil {
		return err
	}
	if err := writeSeriesRows(w, "", c); err != nil {
		return err
	}
	for _, p := range c.Panels {
		if err := writeSeriesRows(w, string(p.Metric)+"/", p); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeSeriesRows(w *csv.Writer, prefix string, c *Chart) error {
	for _, s := range c.Series {
		for i := range s.X {
			row := []string{
				prefix + s.Name,
				strconv.Itoa(i),
				fmtFloat(s.X[i]),
				fmtAt(s.Y, i),
				fmtAt(s.Lower, i),
				fmtAt(s.Upper, i),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func fmtAt(v []float64, i int) string {
	if i >= len(v) {
		return ""
	}
	return fmtFloat(v[i])
}

func fmtFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', 6, 64)
}
