package cases

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCase is returned when an identifier has no registered
	// constructor, including CaseTypeCustom used without an explicit
	// descriptor.
	ErrUnsupportedCase = errors.New("case unsupported")
)

// ErrInvalidFilterConfig indicates a filter rate outside (0,1] or a record
// count that is zero or not yet available at derivation time. Callers must
// fix the configuration or defer derivation until the dataset is loaded;
// values are never clamped.
type ErrInvalidFilterConfig struct {
	Rate        float64
	RecordCount int64
}

func (e *ErrInvalidFilterConfig) Error() string {
	return fmt.Sprintf("invalid filter configuration: rate %v, record count %d",
		e.Rate, e.RecordCount)
}
