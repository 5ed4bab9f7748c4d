package analysis

import (
	"strings"
	"testing"

	"portfolio-dashboard/internal/data"

	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, csv string) *data.Table {
	t.Helper()
	tbl, err := data.ReadTable(strings.NewReader(csv))
	require.NoError(t, err)
	return tbl
}
