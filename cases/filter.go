package cases

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// FilterField is the ordinal metadata field filter predicates apply to.
// Every record carries its zero-based insert ordinal under this field.
const FilterField = "metadata"

// Filter is a concrete predicate derived from a filter rate: it keeps
// records whose ordinal metadata value is >= Threshold.
type Filter struct {
	Field     string
	Threshold int64
}

// DeriveFilter turns a filter rate into a predicate against a dataset of
// recordCount records, read at derivation time.
//
// The threshold is round(rate*recordCount), rounding ties to even, and the
// predicate keeps ordinals >= threshold: rate names the fraction of the
// dataset the predicate EXCLUDES, so (1-rate) of the records match. This
// asymmetry is the published convention and is preserved exactly, including
// at rates close to 0 or 1 where rounding pushes the threshold to 0 or
// recordCount.
func DeriveFilter(rate float64, recordCount int64) (*Filter, error) {
	if rate <= 0 || rate > 1 || recordCount <= 0 {
		return nil, &ErrInvalidFilterConfig{Rate: rate, RecordCount: recordCount}
	}

	return &Filter{
		Field:     FilterField,
		Threshold: int64(math.RoundToEven(rate * float64(recordCount))),
	}, nil
}

// Expr returns the predicate's wire form, e.g. ">=100000".
func (f *Filter) Expr() string {
	return fmt.Sprintf(">=%d", f.Threshold)
}

// Matches reports whether a record at the given ordinal satisfies the
// predicate.
func (f *Filter) Matches(ordinal int64) bool {
	return ordinal >= f.Threshold
}

// Bitmap materializes the matching ordinals of an n-record dataset as a
// Roaring bitmap, for engines that pre-filter candidate sets.
func (f *Filter) Bitmap(n int64) *roaring64.Bitmap {
	rb := roaring64.New()
	if f.Threshold < n {
		rb.AddRange(uint64(f.Threshold), uint64(n))
	}
	return rb
}
