package analysis

import (
	"testing"

	"portfolio-dashboard/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolMonth(t *testing.T) {
	tbl := mustTable(t, "month,hour,2020,2021\n1,0,10,x\n1,1,20,40\n2,0,99,99\n")
	v, err := PoolMonth(tbl, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []float64{10, 20, 40}, v)

	v, err = PoolMonth(tbl, 3)
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = PoolMonth(mustTable(t, "hour,2020\n0,1\n"), 1)
	assert.ErrorIs(t, err, data.ErrMissingColumn)

	_, err = PoolMonth(mustTable(t, "month,mean\n1,1\n"), 1)
	assert.ErrorIs(t, err, ErrNoReplicateData)
}

func TestMonthReplicatesUsesFirstRow(t *testing.T) {
	tbl := mustTable(t, "month,2020,2021,2022\n6,1,bad,3\n6,100,100,100\n")
	v, err := MonthReplicates(tbl, 6)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, v)

	v, err = MonthReplicates(tbl, 7)
	require.NoError(t, err)
	assert.Empty(t, v)
}
