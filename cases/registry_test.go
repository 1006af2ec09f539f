package cases

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCaseEqual compares descriptors by value, including the dataset
// slice identity.
func assertCaseEqual(t *testing.T, want, got *Case) {
	t.Helper()
	assert.Equal(t, want.CaseID, got.CaseID)
	assert.Equal(t, want.Label, got.Label)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.LoadTimeout, got.LoadTimeout)
	assert.Equal(t, want.OptimizeTimeout, got.OptimizeTimeout)
	assert.Equal(t, want.FilterRate, got.FilterRate)
	assert.Equal(t, want.Dataset.Data(), got.Dataset.Data())
	assert.Equal(t, want.Dataset.RequestedSize(), got.Dataset.RequestedSize())
}

func TestResolveRoundTrip(t *testing.T) {
	for _, id := range ListIdentifiers() {
		t.Run(id.String(), func(t *testing.T) {
			c, err := Resolve(id)
			require.NoError(t, err)
			assert.Equal(t, id, c.CaseID)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Description)
			assert.NotNil(t, c.Dataset)
			assert.Positive(t, c.LoadTimeout)
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	for _, id := range ListIdentifiers() {
		first, err := Resolve(id)
		require.NoError(t, err)
		second, err := Resolve(id)
		require.NoError(t, err)
		assertCaseEqual(t, first, second)
	}
}

func TestFamilyInvariants(t *testing.T) {
	for _, id := range ListIdentifiers() {
		c, err := Resolve(id)
		require.NoError(t, err)

		switch c.Label {
		case LabelPerformance:
			assert.NotNil(t, c.OptimizeTimeout, "%s: performance cases carry an optimize timeout", id)
		case LabelLoad:
			assert.Nil(t, c.OptimizeTimeout, "%s: load cases carry no optimize timeout", id)
			assert.Nil(t, c.FilterRate, "%s: load cases are unfiltered", id)
		default:
			t.Fatalf("%s: unexpected label %v", id, c.Label)
		}
	}
}

func TestResolveUnsupported(t *testing.T) {
	_, err := Resolve(CaseTypeCustom)
	assert.ErrorIs(t, err, ErrUnsupportedCase)

	_, err = Resolve(CaseType(9999))
	assert.ErrorIs(t, err, ErrUnsupportedCase)

	_, err = Constructor(CaseTypeCustom)
	assert.ErrorIs(t, err, ErrUnsupportedCase)
}

func TestListIdentifiers(t *testing.T) {
	ids := ListIdentifiers()
	assert.Len(t, ids, len(constructors))

	seen := make(map[CaseType]struct{}, len(ids))
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate identifier %s", id)
		seen[id] = struct{}{}
		assert.NotEqual(t, CaseTypeCustom, id)
	}

	// Callers may not mutate the catalog order through the returned slice.
	ids[0] = CaseTypeCustom
	assert.NotEqual(t, CaseTypeCustom, ListIdentifiers()[0])
}

func TestNameAndDescription(t *testing.T) {
	name, err := Name(Performance768D10M)
	require.NoError(t, err)
	assert.Equal(t, "Search Performance Test (10M Dataset, 768 Dim)", name)

	desc, err := Description(Performance768D10M)
	require.NoError(t, err)
	assert.Contains(t, desc, "Cohere 10M vectors")

	_, err = Name(CaseTypeCustom)
	assert.ErrorIs(t, err, ErrUnsupportedCase)
	_, err = Description(CaseTypeCustom)
	assert.ErrorIs(t, err, ErrUnsupportedCase)
}

func TestNameUsesCachedDescriptor(t *testing.T) {
	// Two accessor calls hit the same cached descriptor.
	first, err := cached(Performance768D1M)
	require.NoError(t, err)
	second, err := cached(Performance768D1M)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestParseCaseType(t *testing.T) {
	id, err := ParseCaseType("Performance768D10M1P")
	require.NoError(t, err)
	assert.Equal(t, Performance768D10M1P, id)

	id, err = ParseCaseType("6")
	require.NoError(t, err)
	assert.Equal(t, Performance768D10M1P, id)

	_, err = ParseCaseType("NoSuchCase")
	assert.Error(t, err)
	_, err = ParseCaseType("9999")
	assert.Error(t, err)
}

func TestCaseTypeValuesStable(t *testing.T) {
	// Published identifier values; renumbering breaks external reports.
	assert.Equal(t, 1, int(CapacityDim128))
	assert.Equal(t, 2, int(CapacityDim960))
	assert.Equal(t, 3, int(Performance768D100M))
	assert.Equal(t, 16, int(Performance960D100K90P))
	assert.Equal(t, 33, int(Performance128D500K10P))
	assert.Equal(t, 100, int(CaseTypeCustom))
}

func TestUnknownCaseTypeString(t *testing.T) {
	assert.Equal(t, "CaseType(42)", CaseType(42).String())
	var err error
	_, err = Resolve(CaseType(42))
	assert.True(t, errors.Is(err, ErrUnsupportedCase))
}
