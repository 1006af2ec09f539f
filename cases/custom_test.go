package cases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCustom(t *testing.T) {
	path := writeSpec(t, `
name: Filtered Cohere Slice
dataset: cohere
size: 2000000
filter_rate: 0.25
load_timeout: 3h
optimize_timeout: 45m
`)

	c, err := LoadCustom(path)
	require.NoError(t, err)

	assert.Equal(t, CaseTypeCustom, c.CaseID)
	assert.Equal(t, LabelPerformance, c.Label)
	assert.Equal(t, "Filtered Cohere Slice", c.Name)
	assert.Equal(t, "Cohere", c.Dataset.Data().Name)
	assert.Equal(t, int64(2_000_000), c.Dataset.RequestedSize())
	assert.Equal(t, 3*time.Hour, c.LoadTimeout)
	require.NotNil(t, c.OptimizeTimeout)
	assert.Equal(t, 45*time.Minute, *c.OptimizeTimeout)

	f, err := c.Filters()
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), f.Threshold)
}

func TestCustomSpecDefaults(t *testing.T) {
	spec := CustomSpec{Dataset: "sift", Size: 100_000}
	c, err := spec.Build()
	require.NoError(t, err)

	assert.Equal(t, LabelPerformance, c.Label)
	assert.NotNil(t, c.OptimizeTimeout)
	assert.NotEmpty(t, c.Name)
	assert.Nil(t, c.FilterRate)
}

func TestCustomSpecLoadLabel(t *testing.T) {
	spec := CustomSpec{Dataset: "gist", Size: 50_000, Label: "load"}
	c, err := spec.Build()
	require.NoError(t, err)

	assert.Equal(t, LabelLoad, c.Label)
	assert.Nil(t, c.OptimizeTimeout)
}

func TestCustomSpecValidation(t *testing.T) {
	tests := []struct {
		name string
		spec CustomSpec
	}{
		{"UnknownDataset", CustomSpec{Dataset: "glove", Size: 100}},
		{"SizeZero", CustomSpec{Dataset: "sift", Size: 0}},
		{"SizeTooLarge", CustomSpec{Dataset: "sift", Size: 500_001}},
		{"UnknownLabel", CustomSpec{Dataset: "sift", Size: 100, Label: "stress"}},
		{"BadLoadTimeout", CustomSpec{Dataset: "sift", Size: 100, LoadTimeout: "soon"}},
		{"BadOptimizeTimeout", CustomSpec{Dataset: "sift", Size: 100, OptimizeTimeout: "later"}},
		{"OptimizeOnLoadCase", CustomSpec{Dataset: "sift", Size: 100, Label: "load", OptimizeTimeout: "5m"}},
		{"FilterRateZero", CustomSpec{Dataset: "sift", Size: 100, FilterRate: ratePtr(0)}},
		{"FilterRateAboveOne", CustomSpec{Dataset: "sift", Size: 100, FilterRate: ratePtr(1.1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Build()
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomMalformed(t *testing.T) {
	path := writeSpec(t, "dataset: [this is not\n  a mapping")
	_, err := LoadCustom(path)
	assert.Error(t, err)

	_, err = LoadCustom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
