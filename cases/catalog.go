package cases

import (
	"fmt"

	"github.com/dase955/VectorDBBench/config"
	"github.com/dase955/VectorDBBench/dataset"
)

// Family default profiles. Load cases get the capacity budget and no
// optimize timeout; performance cases get the default load and optimize
// budgets. Concrete entries override dataset, presentation strings and,
// where the tier requires it, timeouts and filter rate.
var (
	loadFamily = familyDefaults{
		label:       LabelLoad,
		loadTimeout: config.CapacityTimeout,
	}

	performanceFamily = familyDefaults{
		label:           LabelPerformance,
		loadTimeout:     config.LoadTimeoutDefault,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeoutDefault),
	}
)

func newCapacityDim960() *Case {
	return build(CapacityDim960, loadFamily, caseSpec{
		dataset: dataset.GIST.Manager(100_000),
		name:    "Capacity Test (960 Dim Repeated)",
		description: "This case tests the vector database's loading capacity by repeatedly inserting large-dimension vectors (GIST 100K vectors, 960 dimensions) until it is fully loaded. " +
			"Number of inserted vectors will be reported.",
	})
}

func newCapacityDim128() *Case {
	return build(CapacityDim128, loadFamily, caseSpec{
		dataset: dataset.SIFT.Manager(500_000),
		name:    "Capacity Test (128 Dim Repeated)",
		description: "This case tests the vector database's loading capacity by repeatedly inserting small-dimension vectors (SIFT 100K vectors, 128 dimensions) until it is fully loaded. " +
			"Number of inserted vectors will be reported.",
	})
}

func newPerformance768D100M() *Case {
	return build(Performance768D100M, performanceFamily, caseSpec{
		dataset: dataset.LAION.Manager(100_000_000),
		name:    "Search Performance Test (100M Dataset, 768 Dim)",
		description: "This case tests the search performance of a vector database with a large 100M dataset (LAION 100M vectors, 768 dimensions), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout768D100M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout768D100M),
	})
}

func newPerformance768D10M() *Case {
	return build(Performance768D10M, performanceFamily, caseSpec{
		dataset: dataset.Cohere.Manager(10_000_000),
		name:    "Search Performance Test (10M Dataset, 768 Dim)",
		description: "This case tests the search performance of a vector database with a large dataset (Cohere 10M vectors, 768 dimensions) at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout768D10M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout768D10M),
	})
}

func newPerformance768D1M() *Case {
	return build(Performance768D1M, performanceFamily, caseSpec{
		dataset: dataset.Cohere.Manager(1_000_000),
		name:    "Search Performance Test (1M Dataset, 768 Dim)",
		description: "This case tests the search performance of a vector database with a medium dataset (Cohere 1M vectors, 768 dimensions) at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout768D1M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout768D1M),
	})
}

func newPerformance768D10M1P() *Case {
	return build(Performance768D10M1P, performanceFamily, caseSpec{
		dataset:    dataset.Cohere.Manager(10_000_000),
		filterRate: ratePtr(0.01),
		name:       "Filtering Search Performance Test (10M Dataset, 768 Dim, Filter 1%)",
		description: "This case tests the search performance of a vector database with a large dataset (Cohere 10M vectors, 768 dimensions) under a low filtering rate (1% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout768D10M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout768D10M),
	})
}

func newPerformance768D1M1P() *Case {
	return build(Performance768D1M1P, performanceFamily, caseSpec{
		dataset:    dataset.Cohere.Manager(1_000_000),
		filterRate: ratePtr(0.01),
		name:       "Filtering Search Performance Test (1M Dataset, 768 Dim, Filter 1%)",
		description: "This case tests the search performance of a vector database with a medium dataset (Cohere 1M vectors, 768 dimensions) under a low filtering rate (1% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout768D1M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout768D1M),
	})
}

func newPerformance768D10M99P() *Case {
	return build(Performance768D10M99P, performanceFamily, caseSpec{
		dataset:    dataset.Cohere.Manager(10_000_000),
		filterRate: ratePtr(0.99),
		name:       "Filtering Search Performance Test (10M Dataset, 768 Dim, Filter 99%)",
		description: "This case tests the search performance of a vector database with a large dataset (Cohere 10M vectors, 768 dimensions) under a high filtering rate (99% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout768D10M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout768D10M),
	})
}

func newPerformance768D1M99P() *Case {
	return build(Performance768D1M99P, performanceFamily, caseSpec{
		dataset:    dataset.Cohere.Manager(1_000_000),
		filterRate: ratePtr(0.99),
		name:       "Filtering Search Performance Test (1M Dataset, 768 Dim, Filter 99%)",
		description: "This case tests the search performance of a vector database with a medium dataset (Cohere 1M vectors, 768 dimensions) under a high filtering rate (99% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout768D1M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout768D1M),
	})
}

func newPerformance1536D500K() *Case {
	return build(Performance1536D500K, performanceFamily, caseSpec{
		dataset: dataset.OpenAI.Manager(500_000),
		name:    "Search Performance Test (500K Dataset, 1536 Dim)",
		description: "This case tests the search performance of a vector database with a medium 500K dataset (OpenAI 500K vectors, 1536 dimensions), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout1536D500K,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout1536D500K),
	})
}

func newPerformance1536D5M() *Case {
	return build(Performance1536D5M, performanceFamily, caseSpec{
		dataset: dataset.OpenAI.Manager(5_000_000),
		name:    "Search Performance Test (5M Dataset, 1536 Dim)",
		description: "This case tests the search performance of a vector database with a medium 5M dataset (OpenAI 5M vectors, 1536 dimensions), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout1536D5M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout1536D5M),
	})
}

func newPerformance1536D500K1P() *Case {
	return build(Performance1536D500K1P, performanceFamily, caseSpec{
		dataset:    dataset.OpenAI.Manager(500_000),
		filterRate: ratePtr(0.01),
		name:       "Filtering Search Performance Test (500K Dataset, 1536 Dim, Filter 1%)",
		description: "This case tests the search performance of a vector database with a large dataset (OpenAI 500K vectors, 1536 dimensions) under a low filtering rate (1% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout1536D500K,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout1536D500K),
	})
}

func newPerformance1536D5M1P() *Case {
	return build(Performance1536D5M1P, performanceFamily, caseSpec{
		dataset:    dataset.OpenAI.Manager(5_000_000),
		filterRate: ratePtr(0.01),
		name:       "Filtering Search Performance Test (5M Dataset, 1536 Dim, Filter 1%)",
		description: "This case tests the search performance of a vector database with a large dataset (OpenAI 5M vectors, 1536 dimensions) under a low filtering rate (1% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout1536D5M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout1536D5M),
	})
}

func newPerformance1536D500K99P() *Case {
	return build(Performance1536D500K99P, performanceFamily, caseSpec{
		dataset:    dataset.OpenAI.Manager(500_000),
		filterRate: ratePtr(0.99),
		name:       "Filtering Search Performance Test (500K Dataset, 1536 Dim, Filter 99%)",
		description: "This case tests the search performance of a vector database with a medium dataset (OpenAI 500K vectors, 1536 dimensions) under a high filtering rate (99% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout1536D500K,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout1536D500K),
	})
}

func newPerformance1536D5M99P() *Case {
	return build(Performance1536D5M99P, performanceFamily, caseSpec{
		dataset:    dataset.OpenAI.Manager(5_000_000),
		filterRate: ratePtr(0.99),
		name:       "Filtering Search Performance Test (5M Dataset, 1536 Dim, Filter 99%)",
		description: "This case tests the search performance of a vector database with a medium dataset (OpenAI 5M vectors, 1536 dimensions) under a high filtering rate (99% vectors), at varying parallel levels. " +
			"Results will show index building time, recall, and maximum QPS.",
		loadTimeout:     config.LoadTimeout1536D5M,
		optimizeTimeout: timeoutPtr(config.OptimizeTimeout1536D5M),
	})
}

// newLadderCase builds one step of the small-dataset filter ladder
// (10%–90% in 10-point steps over GIST 100K and SIFT 500K). These entries
// keep the family default timeouts.
func newLadderCase(id CaseType, ds dataset.Dataset, size int64, rate float64, sizeLabel, dimLabel, datasetLabel string) *Case {
	pct := int(rate * 100)
	return build(id, performanceFamily, caseSpec{
		dataset:    ds.Manager(size),
		filterRate: ratePtr(rate),
		name: fmt.Sprintf("Filtering Search Performance Test (%s Dataset, %s Dim, Filter %d%%)",
			sizeLabel, dimLabel, pct),
		description: fmt.Sprintf("This case tests the search performance of a vector database with a small dataset (%s vectors, %s dimensions) under a filtering rate (%d%% vectors), at varying parallel levels. "+
			"Results will show index building time, recall, and maximum QPS.",
			datasetLabel, dimLabel, pct),
	})
}

func newGistLadderCase(id CaseType, rate float64) *Case {
	return newLadderCase(id, dataset.GIST, 100_000, rate, "100K", "960", "Gist 100k")
}

func newSiftLadderCase(id CaseType, rate float64) *Case {
	return newLadderCase(id, dataset.SIFT, 500_000, rate, "500K", "128", "Sift 500k")
}

// constructors is the fixed identifier-to-constructor table, built once at
// process start. CaseTypeCustom deliberately has no entry.
var constructors = map[CaseType]func() *Case{
	CapacityDim960: newCapacityDim960,
	CapacityDim128: newCapacityDim128,

	Performance768D100M: newPerformance768D100M,
	Performance768D10M:  newPerformance768D10M,
	Performance768D1M:   newPerformance768D1M,

	Performance768D10M1P:  newPerformance768D10M1P,
	Performance768D1M1P:   newPerformance768D1M1P,
	Performance768D10M99P: newPerformance768D10M99P,
	Performance768D1M99P:  newPerformance768D1M99P,

	Performance1536D500K: newPerformance1536D500K,
	Performance1536D5M:   newPerformance1536D5M,

	Performance1536D500K1P:  newPerformance1536D500K1P,
	Performance1536D5M1P:    newPerformance1536D5M1P,
	Performance1536D500K99P: newPerformance1536D500K99P,
	Performance1536D5M99P:   newPerformance1536D5M99P,

	Performance960D100K90P: func() *Case { return newGistLadderCase(Performance960D100K90P, 0.90) },
	Performance128D500K90P: func() *Case { return newSiftLadderCase(Performance128D500K90P, 0.90) },

	Performance960D100K80P: func() *Case { return newGistLadderCase(Performance960D100K80P, 0.80) },
	Performance128D500K80P: func() *Case { return newSiftLadderCase(Performance128D500K80P, 0.80) },

	Performance960D100K70P: func() *Case { return newGistLadderCase(Performance960D100K70P, 0.70) },
	Performance128D500K70P: func() *Case { return newSiftLadderCase(Performance128D500K70P, 0.70) },

	Performance960D100K60P: func() *Case { return newGistLadderCase(Performance960D100K60P, 0.60) },
	Performance128D500K60P: func() *Case { return newSiftLadderCase(Performance128D500K60P, 0.60) },

	Performance960D100K50P: func() *Case { return newGistLadderCase(Performance960D100K50P, 0.50) },
	Performance128D500K50P: func() *Case { return newSiftLadderCase(Performance128D500K50P, 0.50) },

	Performance960D100K40P: func() *Case { return newGistLadderCase(Performance960D100K40P, 0.40) },
	Performance128D500K40P: func() *Case { return newSiftLadderCase(Performance128D500K40P, 0.40) },

	Performance960D100K30P: func() *Case { return newGistLadderCase(Performance960D100K30P, 0.30) },
	Performance128D500K30P: func() *Case { return newSiftLadderCase(Performance128D500K30P, 0.30) },

	Performance960D100K20P: func() *Case { return newGistLadderCase(Performance960D100K20P, 0.20) },
	Performance128D500K20P: func() *Case { return newSiftLadderCase(Performance128D500K20P, 0.20) },

	Performance960D100K10P: func() *Case { return newGistLadderCase(Performance960D100K10P, 0.10) },
	Performance128D500K10P: func() *Case { return newSiftLadderCase(Performance128D500K10P, 0.10) },
}

// catalogOrder is the stable presentation order of the catalog.
var catalogOrder = []CaseType{
	CapacityDim960,
	CapacityDim128,

	Performance768D100M,
	Performance768D10M,
	Performance768D1M,

	Performance768D10M1P,
	Performance768D1M1P,
	Performance768D10M99P,
	Performance768D1M99P,

	Performance1536D500K,
	Performance1536D5M,

	Performance1536D500K1P,
	Performance1536D5M1P,
	Performance1536D500K99P,
	Performance1536D5M99P,

	Performance960D100K90P,
	Performance128D500K90P,

	Performance960D100K80P,
	Performance128D500K80P,

	Performance960D100K70P,
	Performance128D500K70P,

	Performance960D100K60P,
	Performance128D500K60P,

	Performance960D100K50P,
	Performance128D500K50P,

	Performance960D100K40P,
	Performance128D500K40P,

	Performance960D100K30P,
	Performance128D500K30P,

	Performance960D100K20P,
	Performance128D500K20P,

	Performance960D100K10P,
	Performance128D500K10P,
}
