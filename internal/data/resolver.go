package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"portfolio-dashboard/internal/model"

	"github.com/rs/zerolog/log"
)

// Rule is one filename glob in a resolution strategy table. Pattern may use
// the placeholders {metric}, {resolution} and {kind}.
type Rule struct {
	Pattern string
	Kind    model.FileKind
}

// Rules are evaluated in order; the first rule with any match wins.
var (
	statsRules = []Rule{
		{Pattern: "*_{metric}_{resolution}_stats.csv", Kind: model.KindStats},
		{Pattern: "*_{resolution}_stats.csv", Kind: model.KindStats},
		{Pattern: "*{resolution}stats.csv", Kind: model.KindStats},
	}
	timeseriesRules = []Rule{
		{Pattern: "*_{metric}_{resolution}_timeseries.csv", Kind: model.KindTimeseries},
		{Pattern: "*_{resolution}_timeseries.csv", Kind: model.KindTimeseries},
		{Pattern: "*{resolution}timeseries.csv", Kind: model.KindTimeseries},
		{Pattern: "*_{metric}_{resolution}_timeseries_compressed.csv", Kind: model.KindTimeseries},
	}
	// Day-ahead files live in Price_da and follow a looser naming convention.
	dayAheadRules = []Rule{
		{Pattern: "*_{resolution}_{kind}.csv"},
		{Pattern: "*{resolution}_{kind}.csv"},
		{Pattern: "*_price_da_{resolution}_{kind}.csv"},
	}
)

// Match is a resolved backing file.
type Match struct {
	Path string         `json:"path"`
	Kind model.FileKind `json:"kind"`
}

// Resolver locates metric files under {root}/{site}/{MetricFolder}/.
type Resolver struct {
	Root string
}

func NewResolver(root string) *Resolver {
	return &Resolver{Root: root}
}

func (r *Resolver) SiteDir(site string) string {
	return filepath.Join(r.Root, site)
}

func (r *Resolver) MetricDir(site string, m model.Metric) string {
	return filepath.Join(r.Root, site, m.Folder())
}

// Resolve returns the file for (site, metric, resolution, kind), or ErrNotFound.
// A missing metric folder is ErrNotFound too.
func (r *Resolver) Resolve(site string, m model.Metric, res model.Resolution, kind model.FileKind) (string, error) {
	rules := statsRules
	if kind == model.KindTimeseries {
		rules = timeseriesRules
	}
	match, err := r.evaluate(r.MetricDir(site, m), m, res, kind, rules)
	if err != nil {
		return "", err
	}
	return match.Path, nil
}

// ResolvePreferred prefers the timeseries file and falls back to stats.
func (r *Resolver) ResolvePreferred(site string, m model.Metric, res model.Resolution) (Match, error) {
	for _, kind := range []model.FileKind{model.KindTimeseries, model.KindStats} {
		p, err := r.Resolve(site, m, res, kind)
		if err == nil {
			return Match{Path: p, Kind: kind}, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Match{}, err
		}
	}
	return Match{}, fmt.Errorf("%s %s %s: %w", site, m, res, ErrNotFound)
}

// ResolveDayAhead locates the day-ahead overlay file, trying kinds in order.
func (r *Resolver) ResolveDayAhead(site string, res model.Resolution, kinds ...model.FileKind) (Match, error) {
	dir := r.MetricDir(site, model.MetricPriceDayAhead)
	for _, kind := range kinds {
		match, err := r.evaluate(dir, model.MetricPriceDayAhead, res, kind, dayAheadRules)
		if err == nil {
			return match, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Match{}, err
		}
	}
	return Match{}, fmt.Errorf("%s day-ahead %s: %w", site, res, ErrNotFound)
}

// ResolveFile returns dir/name under the metric folder when it exists.
func (r *Resolver) ResolveFile(site string, m model.Metric, name string) (string, error) {
	p := filepath.Join(r.MetricDir(site, m), name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	return p, nil
}

// Glob lists files in the metric folder matching a single pattern, sorted.
func (r *Resolver) Glob(site string, m model.Metric, pattern string) ([]string, error) {
	return globDir(r.MetricDir(site, m), pattern)
}

func (r *Resolver) evaluate(dir string, m model.Metric, res model.Resolution, kind model.FileKind, rules []Rule) (Match, error) {
	if !isDir(dir) {
		return Match{}, fmt.Errorf("%s: %w", dir, ErrNotFound)
	}
	for _, rule := range rules {
		pattern := expand(rule.Pattern, m, res, kind)
		files, err := globDir(dir, pattern)
		if err != nil {
			return Match{}, err
		}
		if len(files) == 0 {
			continue
		}
		if len(files) > 1 {
			log.Debug().Str("component", "resolver").Str("pattern", pattern).
				Strs("candidates", files).Msg("Multiple files match, using first")
		}
		return Match{Path: files[0], Kind: kind}, nil
	}
	return Match{}, fmt.Errorf("%s %s %s in %s: %w", m, res, kind, dir, ErrNotFound)
}

func expand(pattern string, m model.Metric, res model.Resolution, kind model.FileKind) string {
	return strings.NewReplacer(
		"{metric}", string(m),
		"{resolution}", string(res),
		"{kind}", string(kind),
	).Replace(pattern)
}

// globDir matches base names only, so glob metacharacters in dir are literal.
func globDir(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
