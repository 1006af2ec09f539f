package cases

import (
	"fmt"
	"strconv"
)

// CaseType is the stable identifier of one benchmark scenario. The integer
// values are published in external reports and must never be renumbered.
type CaseType int

const (
	CapacityDim128 CaseType = 1
	CapacityDim960 CaseType = 2

	Performance768D100M CaseType = 3
	Performance768D10M  CaseType = 4
	Performance768D1M   CaseType = 5

	Performance768D10M1P  CaseType = 6
	Performance768D1M1P   CaseType = 7
	Performance768D10M99P CaseType = 8
	Performance768D1M99P  CaseType = 9

	Performance1536D500K CaseType = 10
	Performance1536D5M   CaseType = 11

	Performance1536D500K1P  CaseType = 12
	Performance1536D5M1P    CaseType = 13
	Performance1536D500K99P CaseType = 14
	Performance1536D5M99P   CaseType = 15

	Performance960D100K90P CaseType = 16
	Performance128D500K90P CaseType = 17

	Performance960D100K80P CaseType = 18
	Performance128D500K80P CaseType = 19

	Performance960D100K70P CaseType = 20
	Performance128D500K70P CaseType = 21

	Performance960D100K60P CaseType = 22
	Performance128D500K60P CaseType = 23

	Performance960D100K50P CaseType = 24
	Performance128D500K50P CaseType = 25

	Performance960D100K40P CaseType = 26
	Performance128D500K40P CaseType = 27

	Performance960D100K30P CaseType = 28
	Performance128D500K30P CaseType = 29

	Performance960D100K20P CaseType = 30
	Performance128D500K20P CaseType = 31

	Performance960D100K10P CaseType = 32
	Performance128D500K10P CaseType = 33

	// CaseTypeCustom marks a caller-constructed descriptor that bypasses the
	// registry.
	CaseTypeCustom CaseType = 100
)

var caseTypeNames = map[CaseType]string{
	CapacityDim128:          "CapacityDim128",
	CapacityDim960:          "CapacityDim960",
	Performance768D100M:     "Performance768D100M",
	Performance768D10M:      "Performance768D10M",
	Performance768D1M:       "Performance768D1M",
	Performance768D10M1P:    "Performance768D10M1P",
	Performance768D1M1P:     "Performance768D1M1P",
	Performance768D10M99P:   "Performance768D10M99P",
	Performance768D1M99P:    "Performance768D1M99P",
	Performance1536D500K:    "Performance1536D500K",
	Performance1536D5M:      "Performance1536D5M",
	Performance1536D500K1P:  "Performance1536D500K1P",
	Performance1536D5M1P:    "Performance1536D5M1P",
	Performance1536D500K99P: "Performance1536D500K99P",
	Performance1536D5M99P:   "Performance1536D5M99P",
	Performance960D100K90P:  "Performance960D100K90P",
	Performance128D500K90P:  "Performance128D500K90P",
	Performance960D100K80P:  "Performance960D100K80P",
	Performance128D500K80P:  "Performance128D500K80P",
	Performance960D100K70P:  "Performance960D100K70P",
	Performance128D500K70P:  "Performance128D500K70P",
	Performance960D100K60P:  "Performance960D100K60P",
	Performance128D500K60P:  "Performance128D500K60P",
	Performance960D100K50P:  "Performance960D100K50P",
	Performance128D500K50P:  "Performance128D500K50P",
	Performance960D100K40P:  "Performance960D100K40P",
	Performance128D500K40P:  "Performance128D500K40P",
	Performance960D100K30P:  "Performance960D100K30P",
	Performance128D500K30P:  "Performance128D500K30P",
	Performance960D100K20P:  "Performance960D100K20P",
	Performance128D500K20P:  "Performance128D500K20P",
	Performance960D100K10P:  "Performance960D100K10P",
	Performance128D500K10P:  "Performance128D500K10P",
	CaseTypeCustom:          "Custom",
}

// String returns the identifier name.
func (t CaseType) String() string {
	if name, ok := caseTypeNames[t]; ok {
		return name
	}
	return "CaseType(" + strconv.Itoa(int(t)) + ")"
}

// ParseCaseType resolves an identifier from its name or numeric value.
func ParseCaseType(s string) (CaseType, error) {
	for t, name := range caseTypeNames {
		if name == s {
			return t, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := caseTypeNames[CaseType(n)]; ok {
			return CaseType(n), nil
		}
	}
	return 0, fmt.Errorf("unknown case type %q", s)
}

// CaseLabel classifies a scenario as capacity/ingestion or search.
type CaseLabel int

const (
	// LabelLoad marks capacity scenarios; the quantity loaded is the result.
	LabelLoad CaseLabel = iota + 1
	// LabelPerformance marks search scenarios measured for latency, QPS and
	// recall.
	LabelPerformance
)

// String returns the label name.
func (l CaseLabel) String() string {
	switch l {
	case LabelLoad:
		return "Load"
	case LabelPerformance:
		return "Performance"
	default:
		return "CaseLabel(" + strconv.Itoa(int(l)) + ")"
	}
}
