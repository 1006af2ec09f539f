package cases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dase955/VectorDBBench/config"
	"github.com/dase955/VectorDBBench/dataset"
)

func TestFilteredPerformanceCaseEndToEnd(t *testing.T) {
	// 10M-record dataset at 1% filter: the predicate is derived against the
	// slice size the manager was created with.
	c, err := Resolve(Performance768D10M1P)
	require.NoError(t, err)

	assert.Equal(t, LabelPerformance, c.Label)
	assert.Equal(t, int64(10_000_000), c.Dataset.RecordCount())

	f, err := c.Filters()
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, int64(100_000), f.Threshold)
	assert.Equal(t, ">=100000", f.Expr())
}

func TestCapacityCaseEndToEnd(t *testing.T) {
	c, err := Resolve(CapacityDim128)
	require.NoError(t, err)

	assert.Equal(t, LabelLoad, c.Label)
	assert.Nil(t, c.OptimizeTimeout)
	assert.Equal(t, config.CapacityTimeout, c.LoadTimeout)

	f, err := c.Filters()
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestTimeoutOverridesWin(t *testing.T) {
	c, err := Resolve(Performance768D10M)
	require.NoError(t, err)
	assert.Equal(t, config.LoadTimeout768D10M, c.LoadTimeout)
	require.NotNil(t, c.OptimizeTimeout)
	assert.Equal(t, config.OptimizeTimeout768D10M, *c.OptimizeTimeout)

	// Ladder entries keep the family defaults.
	c, err = Resolve(Performance960D100K50P)
	require.NoError(t, err)
	assert.Equal(t, config.LoadTimeoutDefault, c.LoadTimeout)
	require.NotNil(t, c.OptimizeTimeout)
	assert.Equal(t, config.OptimizeTimeoutDefault, *c.OptimizeTimeout)
}

func TestFiltersTrackRecordCount(t *testing.T) {
	// The predicate scales with the record count read at derivation time,
	// not one captured at construction.
	rate := 0.5
	c := build(CaseTypeCustom, performanceFamily, caseSpec{
		dataset:    dataset.Cohere.Manager(1_000),
		filterRate: &rate,
		name:       "tracking",
	})

	f, err := c.Filters()
	require.NoError(t, err)
	assert.Equal(t, int64(500), f.Threshold)
}

func TestFiltersZeroRecords(t *testing.T) {
	rate := 0.5
	c := build(CaseTypeCustom, performanceFamily, caseSpec{
		dataset:    dataset.Cohere.Manager(0),
		filterRate: &rate,
		name:       "empty",
	})

	_, err := c.Filters()
	var invalid *ErrInvalidFilterConfig
	assert.ErrorAs(t, err, &invalid)
}

func TestBuildCopiesOptionalDurations(t *testing.T) {
	first := build(CaseTypeCustom, performanceFamily, caseSpec{
		dataset: dataset.SIFT.Manager(100),
		name:    "a",
	})
	second := build(CaseTypeCustom, performanceFamily, caseSpec{
		dataset: dataset.SIFT.Manager(100),
		name:    "b",
	})

	require.NotNil(t, first.OptimizeTimeout)
	require.NotNil(t, second.OptimizeTimeout)
	assert.NotSame(t, first.OptimizeTimeout, second.OptimizeTimeout)

	*first.OptimizeTimeout = time.Nanosecond
	assert.NotEqual(t, *first.OptimizeTimeout, *second.OptimizeTimeout)
}

func TestCatalogFilterLadder(t *testing.T) {
	ladder := map[CaseType]float64{
		Performance960D100K90P: 0.90,
		Performance960D100K80P: 0.80,
		Performance960D100K70P: 0.70,
		Performance960D100K60P: 0.60,
		Performance960D100K50P: 0.50,
		Performance960D100K40P: 0.40,
		Performance960D100K30P: 0.30,
		Performance960D100K20P: 0.20,
		Performance960D100K10P: 0.10,
		Performance128D500K90P: 0.90,
		Performance128D500K80P: 0.80,
		Performance128D500K70P: 0.70,
		Performance128D500K60P: 0.60,
		Performance128D500K50P: 0.50,
		Performance128D500K40P: 0.40,
		Performance128D500K30P: 0.30,
		Performance128D500K20P: 0.20,
		Performance128D500K10P: 0.10,
	}

	for id, want := range ladder {
		c, err := Resolve(id)
		require.NoError(t, err)
		require.NotNil(t, c.FilterRate, "%s", id)
		assert.InDelta(t, want, *c.FilterRate, 1e-9, "%s", id)
	}
}

func TestCatalogDatasets(t *testing.T) {
	tests := []struct {
		id   CaseType
		name string
		size int64
	}{
		{CapacityDim960, "GIST", 100_000},
		{CapacityDim128, "SIFT", 500_000},
		{Performance768D100M, "LAION", 100_000_000},
		{Performance768D10M, "Cohere", 10_000_000},
		{Performance768D1M, "Cohere", 1_000_000},
		{Performance1536D500K, "OpenAI", 500_000},
		{Performance1536D5M, "OpenAI", 5_000_000},
		{Performance960D100K10P, "GIST", 100_000},
		{Performance128D500K10P, "SIFT", 500_000},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			c, err := Resolve(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.name, c.Dataset.Data().Name)
			assert.Equal(t, tt.size, c.Dataset.RequestedSize())
		})
	}
}
