package data

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"portfolio-dashboard/internal/model"
)

// Dataset is one (metric, resolution, kind) file available for a site.
type Dataset struct {
	Metric     model.Metric     `json:"metric"`
	Resolution model.Resolution `json:"resolution"`
	Kind       model.FileKind   `json:"kind"`
	Path       string           `json:"path"`
}

// Catalog enumerates sites and their datasets.
type Catalog struct {
	resolver *Resolver
}

func NewCatalog(r *Resolver) *Catalog {
	return &Catalog{resolver: r}
}

// Sites lists folders under the root that contain at least one metric folder,
// sorted by id. A missing root is ErrNotFound.
func (c *Catalog) Sites() ([]model.Site, error) {
	entries, err := os.ReadDir(c.resolver.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("portfolio root %s: %w", c.resolver.Root, ErrNotFound)
		}
		return nil, err
	}
	sites := make([]model.Site, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		metrics := c.AvailableMetrics(e.Name())
		if len(metrics) == 0 {
			continue
		}
		sites = append(sites, model.Site{
			ID:          e.Name(),
			DisplayName: model.CleanSiteName(e.Name()),
			Metrics:     metrics,
		})
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].ID < sites[j].ID })
	return sites, nil
}

// Site returns one site, or ErrNotFound when the id is not a site folder.
func (c *Catalog) Site(id string) (model.Site, error) {
	if err := c.CheckSite(id); err != nil {
		return model.Site{}, err
	}
	metrics := c.AvailableMetrics(id)
	if len(metrics) == 0 {
		return model.Site{}, fmt.Errorf("site %q has no metric folders: %w", id, ErrNotFound)
	}
	return model.Site{ID: id, DisplayName: model.CleanSiteName(id), Metrics: metrics}, nil
}

// CheckSite rejects ids that are not a direct child folder of the root.
func (c *Catalog) CheckSite(id string) error {
	if !validSiteID(id) || !isDir(c.resolver.SiteDir(id)) {
		return fmt.Errorf("site %q: %w", id, ErrNotFound)
	}
	return nil
}

// AvailableMetrics is the metrics whose folder exists, in model.Metrics order.
func (c *Catalog) AvailableMetrics(site string) []model.Metric {
	var out []model.Metric
	for _, m := range model.Metrics {
		if isDir(c.resolver.MetricDir(site, m)) {
			out = append(out, m)
		}
	}
	return out
}

// HasMetric reports whether the site has a folder for m.
func (c *Catalog) HasMetric(site string, m model.Metric) bool {
	return isDir(c.resolver.MetricDir(site, m))
}

// Availability resolves every (metric, resolution, kind) combination.
func (c *Catalog) Availability(site string) []Dataset {
	var out []Dataset
	for _, m := range c.AvailableMetrics(site) {
		for _, res := range model.Resolutions {
			for _, kind := range []model.FileKind{model.KindTimeseries, model.KindStats} {
				var (
					p   string
					err error
				)
				if m == model.MetricPriceDayAhead {
					var match Match
					match, err = c.resolver.ResolveDayAhead(site, res, kind)
					p = match.Path
				} else {
					p, err = c.resolver.Resolve(site, m, res, kind)
				}
				if err != nil {
					continue
				}
				out = append(out, Dataset{Metric: m, Resolution: res, Kind: kind, Path: p})
			}
		}
	}
	return out
}

// HasMonthlyFiles reports whether the metric folder holds any *monthly*.csv.
func (c *Catalog) HasMonthlyFiles(site string, m model.Metric) bool {
	files, err := c.resolver.Glob(site, m, "*monthly*.csv")
	return err == nil && len(files) > 0
}

func validSiteID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
