package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/data"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Percentiles.Band = []float64{10, 90}
	cfg.Palette.Price = "#000000"
	cfg.Cache.TTL = "1m"

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, [2]float64{10, 90}, opts.Band)
	assert.Equal(t, [2]float64{25, 75}, opts.DailyBand)
	assert.Equal(t, "#000000", opts.Palette.Price)
	assert.Equal(t, 7, opts.Rolling.Window)

	svc, err := NewServiceFromConfig(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &data.TableCache{}, svc.tables)
}
