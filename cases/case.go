package cases

import (
	"time"

	"github.com/dase955/VectorDBBench/dataset"
)

// Case is the immutable descriptor of one benchmark scenario. It is
// constructed once, has no side effects, and is safe for any number of
// concurrent readers. Timeouts are parameters handed to the external
// runner, not enforced here.
type Case struct {
	CaseID CaseType
	Label  CaseLabel

	// Name and Description are presentation metadata; correctness depends
	// only on the dataset, timeouts and filter rate.
	Name        string
	Description string

	Dataset *dataset.Manager

	LoadTimeout time.Duration
	// OptimizeTimeout is present for performance cases and absent for load
	// cases, which build no secondary index to optimize.
	OptimizeTimeout *time.Duration

	// FilterRate, when present, is the fraction of the dataset excluded by
	// the derived predicate. See DeriveFilter.
	FilterRate *float64
}

// Filters derives the scenario's filter predicate against the dataset's
// record count as of this call. It returns (nil, nil) when the case has no
// filter rate. The result is not memoized: a Prepare that changes the
// effective record count changes the next derivation.
func (c *Case) Filters() (*Filter, error) {
	if c.FilterRate == nil {
		return nil, nil
	}
	return DeriveFilter(*c.FilterRate, c.Dataset.RecordCount())
}

// familyDefaults pre-fills the label and timeout fields shared by all
// members of a case family.
type familyDefaults struct {
	label           CaseLabel
	loadTimeout     time.Duration
	optimizeTimeout *time.Duration
}

// caseSpec carries the per-scenario overrides applied on top of family
// defaults. Overrides always win; zero values fall back to the family.
type caseSpec struct {
	dataset     *dataset.Manager
	name        string
	description string

	filterRate      *float64
	loadTimeout     time.Duration
	optimizeTimeout *time.Duration
}

// build composes a descriptor: family defaults first, scenario overrides on
// top. Optional durations are copied so descriptors never alias shared
// state.
func build(id CaseType, def familyDefaults, spec caseSpec) *Case {
	c := &Case{
		CaseID:      id,
		Label:       def.label,
		Name:        spec.name,
		Description: spec.description,
		Dataset:     spec.dataset,
		LoadTimeout: def.loadTimeout,
		FilterRate:  spec.filterRate,
	}

	if spec.loadTimeout > 0 {
		c.LoadTimeout = spec.loadTimeout
	}

	opt := def.optimizeTimeout
	if spec.optimizeTimeout != nil {
		opt = spec.optimizeTimeout
	}
	if opt != nil {
		d := *opt
		c.OptimizeTimeout = &d
	}

	return c
}

func ratePtr(r float64) *float64 { return &r }

func timeoutPtr(d time.Duration) *time.Duration { return &d }
