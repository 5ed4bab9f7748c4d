package dashboard

import (
	"encoding/json"
	"math"

	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

// Status is the outcome of preparing one chart.
type Status string

const (
	StatusOK Status = "ok"
	// StatusNoData: the dataset is absent. Nothing to show, not a failure.
	StatusNoData Status = "no_data"
	// StatusNotMeaningful: data exists but the analysis does not apply to it.
	StatusNotMeaningful Status = "not_meaningful"
	// StatusError: an unexpected failure scoped to this one chart.
	StatusError Status = "error"
)

// Role tells the renderer how to draw a series.
type Role string

const (
	RoleLine    Role = "line"
	RoleBand    Role = "band"    // fill between Lower and Upper
	RoleArea    Role = "area"    // fill between 0 and Y
	RoleScatter Role = "scatter" // points only
)

// Chart is a fully prepared chart handed to the external renderer.
type Chart struct {
	Kind     string          `json:"kind"`
	Site     string          `json:"site"`
	Metric   model.Metric    `json:"metric,omitempty"`
	Month    int             `json:"month,omitempty"`
	Status   Status          `json:"status"`
	Message  string          `json:"message,omitempty"`
	Title    string          `json:"title,omitempty"`
	Subtitle string          `json:"subtitle,omitempty"`
	Source   *data.Match     `json:"source,omitempty"`
	XAxis    XAxis           `json:"x_axis"`
	YAxis    model.Axis      `json:"y_axis"`
	YRange   *Range          `json:"y_range,omitempty"`
	Series   []Series        `json:"series,omitempty"`
	Markers  []Marker        `json:"markers,omitempty"`
	Lines    []ReferenceLine `json:"reference_lines,omitempty"`
	Stats    []Stat          `json:"stats,omitempty"`
	Notes    []string        `json:"notes,omitempty"`
	Panels   []*Chart        `json:"panels,omitempty"`
}

// OK reports whether the chart has something to render.
func (c *Chart) OK() bool { return c.Status == StatusOK }

// XAxis is the category/position axis. Empty Ticks leave tick placement to
// the renderer.
type XAxis struct {
	model.Axis
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Ticks []Tick   `json:"ticks,omitempty"`
}

type Tick struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

type Range struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

// Series is one drawable sequence. NaN entries are encoded as null.
type Series struct {
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
	Color  string    `json:"color,omitempty"`
	Dashed bool      `json:"dashed,omitempty"`
	Marker string    `json:"marker,omitempty"`
	X      []float64 `json:"-"`
	Y      []float64 `json:"-"`
	Lower  []float64 `json:"-"`
	Upper  []float64 `json:"-"`
}

func (s Series) MarshalJSON() ([]byte, error) {
	type plain Series
	return json.Marshal(struct {
		plain
		X     []*float64 `json:"x"`
		Y     []*float64 `json:"y,omitempty"`
		Lower []*float64 `json:"lower,omitempty"`
		Upper []*float64 `json:"upper,omitempty"`
	}{
		plain: plain(s),
		X:     nullable(s.X),
		Y:     nullable(s.Y),
		Lower: nullable(s.Lower),
		Upper: nullable(s.Upper),
	})
}

// Marker is a labelled point, used for duration percentiles.
type Marker struct {
	Label string  `json:"label"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Above bool    `json:"above"`
}

// ReferenceLine is a straight horizontal or vertical guide.
type ReferenceLine struct {
	Vertical bool    `json:"vertical"`
	Value    float64 `json:"value"`
	Label    string  `json:"label,omitempty"`
	Color    string  `json:"color"`
	Style    string  `json:"style"` // solid, dashed, dotted
}

// Stat is a summary text row shown next to a chart.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func nullable(v []float64) []*float64 {
	if v == nil {
		return nil
	}
	out := make([]*float64, len(v))
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			continue
		}
		x := v[i]
		out[i] = &x
	}
	return out
}

func positions(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

func lineSeries(name string, x, y []float64, color string) Series {
	return Series{Name: name, Role: RoleLine, Color: color, X: x, Y: y}
}

func bandSeries(name string, x, lower, upper []float64, color string) Series {
	return Series{Name: name, Role: RoleBand, Color: color, X: x, Lower: lower, Upper: upper}
}

func ptr(v float64) *float64 { return &v }
