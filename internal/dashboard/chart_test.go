package dashboard

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesJSONEncodesNaNAsNull(t *testing.T) {
	s := Series{Name: "Mean", Role: RoleLine, X: []float64{0, 1}, Y: []float64{1.5, math.NaN()}}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Mean","role":"line","x":[0,1],"y":[1.5,null]}`, string(b))
}

func TestChartJSON(t *testing.T) {
	c := &Chart{Kind: KindMonthly, Site: testSite, Status: StatusNoData, Message: "No Generation data available"}
	b, err := json.Marshal(c)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "no_data", got["status"])
	assert.NotContains(t, got, "series")
}

func TestEncodeChartCSV(t *testing.T) {
	c := &Chart{
		Series: []Series{
			bandSeries("Band", []float64{0, 1}, []float64{1, 2}, []float64{3, 4}, ""),
			lineSeries("Mean", []float64{0, 1}, []float64{2, math.NaN()}, ""),
		},
		Panels: []*Chart{{Metric: "price", Series: []Series{lineSeries("RT", []float64{0}, []float64{7}, "")}}},
	}
	var buf bytes.Buffer
	require.NoError(t, EncodeChartCSV(&buf, c))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "series,index,x,y,lower,upper", lines[0])
	assert.Equal(t, "Band,0,0.000000,,1.000000,3.000000", lines[1])
	assert.Equal(t, "Mean,1,1.000000,,,", lines[4])
	assert.Equal(t, "price/RT,0,0.000000,7.000000,,", lines[5])
}

func TestWriteChartCSV(t *testing.T) {
	c := &Chart{Series: []Series{lineSeries("Mean", []float64{0}, []float64{2}, "")}}
	path := filepath.Join(t.TempDir(), "chart.csv")
	require.NoError(t, WriteChartCSV(path, c))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "series,index,x,y,lower,upper\nMean,0,0.000000,2.000000,,\n", string(raw))

	assert.Error(t, WriteChartCSV(filepath.Join(t.TempDir(), "missing", "chart.csv"), c))
}
