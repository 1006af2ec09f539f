// Package cases defines the closed set of benchmark scenarios a runner can
// execute and resolves each scenario identifier into a fully parameterized,
// immutable case descriptor.
//
// A descriptor bundles the dataset slice to load, the timeouts handed to
// the runner, and an optional filter rate. The filter rate r in (0,1]
// names the fraction of the dataset EXCLUDED by the derived predicate:
// the predicate keeps ordinals >= round(r*N), so (1-r) of the records
// match it. See DeriveFilter.
//
// Identifiers are stable integers published in external reports; they are
// never renumbered. CaseTypeCustom is reserved for caller-constructed
// descriptors and has no registry entry.
package cases
