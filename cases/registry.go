package cases

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// descriptorCache holds constructed descriptors for the presentation
// accessors (Name, Description), which would otherwise rebuild a descriptor
// per call. Resolve always constructs fresh.
var descriptorCache *lru.Cache

// The registry/enumeration bijection is a programming invariant, not a
// runtime condition: a mismatch means the catalog was edited incorrectly
// and no case can be served until it is fixed.
func init() {
	for t := range caseTypeNames {
		if t == CaseTypeCustom {
			continue
		}
		if _, ok := constructors[t]; !ok {
			panic(fmt.Sprintf("cases: %s declared but not registered", t))
		}
	}
	if _, ok := constructors[CaseTypeCustom]; ok {
		panic("cases: Custom must not have a registered constructor")
	}
	if len(constructors) != len(caseTypeNames)-1 {
		panic(fmt.Sprintf("cases: %d constructors registered for %d declared case types",
			len(constructors), len(caseTypeNames)-1))
	}
	if len(catalogOrder) != len(constructors) {
		panic(fmt.Sprintf("cases: catalog order lists %d of %d registered cases",
			len(catalogOrder), len(constructors)))
	}
	seen := make(map[CaseType]struct{}, len(catalogOrder))
	for _, t := range catalogOrder {
		if _, dup := seen[t]; dup {
			panic(fmt.Sprintf("cases: %s listed twice in catalog order", t))
		}
		seen[t] = struct{}{}
		if _, ok := constructors[t]; !ok {
			panic(fmt.Sprintf("cases: %s in catalog order but not registered", t))
		}
	}

	var err error
	descriptorCache, err = lru.New(len(constructors))
	if err != nil {
		panic(err)
	}
}

// Constructor returns the zero-argument factory registered for the
// identifier. It fails with ErrUnsupportedCase for CaseTypeCustom or any
// identifier without an entry; the caller supplies its own descriptor for
// custom cases.
func Constructor(t CaseType) (func() *Case, error) {
	ctor, ok := constructors[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCase, t)
	}
	return ctor, nil
}

// Resolve constructs the descriptor registered for the identifier.
// Construction is deterministic; resolving the same identifier twice yields
// descriptors with identical field values.
func Resolve(t CaseType) (*Case, error) {
	ctor, err := Constructor(t)
	if err != nil {
		return nil, err
	}
	return ctor(), nil
}

// Name returns the case's presentation name.
func Name(t CaseType) (string, error) {
	c, err := cached(t)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

// Description returns the case's presentation description.
func Description(t CaseType) (string, error) {
	c, err := cached(t)
	if err != nil {
		return "", err
	}
	return c.Description, nil
}

// ListIdentifiers returns the registered identifiers in stable catalog
// order.
func ListIdentifiers() []CaseType {
	out := make([]CaseType, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

func cached(t CaseType) (*Case, error) {
	if v, ok := descriptorCache.Get(t); ok {
		return v.(*Case), nil
	}
	c, err := Resolve(t)
	if err != nil {
		return nil, err
	}
	descriptorCache.Add(t, c)
	return c, nil
}
