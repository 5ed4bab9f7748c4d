package data

import (
	"math"
	"strconv"
	"time"
)

// LabelKind says where bucket labels come from.
type LabelKind int

const (
	// HasLabelColumn: a preformatted label column exists (month_name, date_label).
	HasLabelColumn LabelKind = iota
	// DeriveFromIndex: labels are synthesized from index columns (month, day).
	DeriveFromIndex
	// Positional: nothing usable; labels follow row position.
	Positional
)

// LabelSource is the outcome of a label capability check.
type LabelSource struct {
	Kind    LabelKind
	Columns []string
}

// HourKind says how the hour of day of a row is obtained.
type HourKind int

const (
	HourFromColumn HourKind = iota
	HourFromTimestamp
	HourFromRowIndex
)

type HourSource struct {
	Kind   HourKind
	Column string
}

// Capabilities summarises which optional columns a table carries so callers
// branch once instead of probing columns repeatedly.
type Capabilities struct {
	MonthLabels LabelSource
	DayLabels   LabelSource
	Hour        HourSource
	HasMean     bool
	HasMonth    bool
	Replicates  int
}

func (t *Table) Capabilities() Capabilities {
	c := Capabilities{
		HasMean:    t.Has("mean"),
		HasMonth:   t.Has("month"),
		Replicates: len(t.YearColumns()),
	}

	switch {
	case t.Has("month_name"):
		c.MonthLabels = LabelSource{Kind: HasLabelColumn, Columns: []string{"month_name"}}
	case t.Has("month"):
		c.MonthLabels = LabelSource{Kind: DeriveFromIndex, Columns: []string{"month"}}
	default:
		c.MonthLabels = LabelSource{Kind: Positional}
	}

	switch {
	case t.Has("date_label"):
		c.DayLabels = LabelSource{Kind: HasLabelColumn, Columns: []string{"date_label"}}
	case t.Has("month") && t.Has("day"):
		c.DayLabels = LabelSource{Kind: DeriveFromIndex, Columns: []string{"month", "day"}}
	default:
		c.DayLabels = LabelSource{Kind: Positional}
	}

	switch {
	case t.Has("hour"):
		c.Hour = HourSource{Kind: HourFromColumn, Column: "hour"}
	case t.Has("datetime"):
		c.Hour = HourSource{Kind: HourFromTimestamp, Column: "datetime"}
	case t.Has("timestamp"):
		c.Hour = HourSource{Kind: HourFromTimestamp, Column: "timestamp"}
	default:
		c.Hour = HourSource{Kind: HourFromRowIndex}
	}
	return c
}

// HasPercentiles reports whether precomputed pNN columns exist for every p.
func (t *Table) HasPercentiles(ps ...float64) bool {
	for _, p := range ps {
		if !t.Has(PercentileColumn(p)) {
			return false
		}
	}
	return true
}

// Hours returns the hour of day per row, NaN where it cannot be determined.
func (t *Table) Hours(src HourSource) []float64 {
	out := make([]float64, t.Len())
	switch src.Kind {
	case HourFromColumn:
		v, err := t.Floats(src.Column)
		if err != nil {
			return fillNaN(out)
		}
		return v
	case HourFromTimestamp:
		raw, err := t.Strings(src.Column)
		if err != nil {
			return fillNaN(out)
		}
		for i, s := range raw {
			ts, ok := parseTimestamp(s)
			if !ok {
				out[i] = math.NaN()
				continue
			}
			out[i] = float64(ts.Hour())
		}
		return out
	default:
		for i := range out {
			out[i] = float64(i % 24)
		}
		return out
	}
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func fillNaN(v []float64) []float64 {
	for i := range v {
		v[i] = math.NaN()
	}
	return v
}

// PercentileColumn is the stats-file column name for percentile p, e.g. "p5".
func PercentileColumn(p float64) string {
	return "p" + strconv.FormatFloat(p, 'f', -1, 64)
}
