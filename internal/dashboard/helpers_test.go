package dashboard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio-dashboard/internal/data"
)

const testSite = "Sunny_Ridge_LLC"

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// monthlyTimeseries builds 12 month rows with one column per year; values
// grow with both month and year.
func monthlyTimeseries(years ...int) string {
	var b strings.Builder
	b.WriteString("month")
	for _, y := range years {
		fmt.Fprintf(&b, ",%d", y)
	}
	b.WriteString("\n")
	for m := 1; m <= 12; m++ {
		fmt.Fprintf(&b, "%d", m)
		for i := range years {
			fmt.Fprintf(&b, ",%d", m*100+i*10)
		}
		b.WriteString("\n")
	}
	return b.String()
}

type recordedChart struct {
	chart, status string
}

type fakeRecorder struct {
	mu       sync.Mutex
	charts   []recordedChart
	overlays []string
}

func (f *fakeRecorder) ObserveChart(chart, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.charts = append(f.charts, recordedChart{chart, status})
}

func (f *fakeRecorder) ObserveOverlay(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overlays = append(f.overlays, outcome)
}

func newTestService(t *testing.T, root string) (*Service, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	return NewService(data.NewResolver(root), nil, DefaultOptions(), rec), rec
}

// panicSource panics for paths containing the trigger and reads the rest.
type panicSource struct{ trigger string }

func (p panicSource) Load(path string) (*data.Table, error) {
	if strings.Contains(path, p.trigger) {
		panic("corrupt table")
	}
	return data.LoadTable(path)
}

func seriesNames(c *Chart) []string {
	var out []string
	for _, s := range c.Series {
		out = append(out, s.Name)
	}
	return out
}
