package dataset

import (
	"fmt"
	"strings"
)

// MetricType is the distance metric a dataset's ground truth was computed with.
type MetricType string

const (
	// MetricL2 is squared Euclidean distance.
	MetricL2 MetricType = "L2"
	// MetricCosine is cosine similarity over normalized vectors.
	MetricCosine MetricType = "COSINE"
)

// Data is the static description of a named dataset family at its natural
// size. It carries everything needed to locate and decode the backing files;
// it holds no loaded state.
type Data struct {
	Name      string
	Dimension int
	Size      int64
	Metric    MetricType

	// ShardSize is the number of records per shard file.
	ShardSize int64
}

// ShardCount returns the number of shard files backing the full dataset.
func (d Data) ShardCount() int {
	return int((d.Size + d.ShardSize - 1) / d.ShardSize)
}

// ShardName returns the object key of the i-th shard, relative to the
// dataset prefix (e.g. "sift/train-00-of-05.bin.zst").
func (d Data) ShardName(i int) string {
	return fmt.Sprintf("%s/train-%02d-of-%02d.bin.zst",
		strings.ToLower(d.Name), i, d.ShardCount())
}

// Dataset identifies one of the published embedding collections.
type Dataset int

const (
	// SIFT is the 128-dimension SIFT descriptor set.
	SIFT Dataset = iota
	// GIST is the 960-dimension GIST descriptor set.
	GIST
	// Cohere is the 768-dimension Cohere multilingual embedding set.
	Cohere
	// OpenAI is the 1536-dimension OpenAI embedding set.
	OpenAI
	// LAION is the 768-dimension LAION image embedding set.
	LAION
)

var datasets = map[Dataset]Data{
	SIFT:   {Name: "SIFT", Dimension: 128, Size: 500_000, Metric: MetricL2, ShardSize: 100_000},
	GIST:   {Name: "GIST", Dimension: 960, Size: 1_000_000, Metric: MetricL2, ShardSize: 100_000},
	Cohere: {Name: "Cohere", Dimension: 768, Size: 10_000_000, Metric: MetricCosine, ShardSize: 500_000},
	OpenAI: {Name: "OpenAI", Dimension: 1536, Size: 5_000_000, Metric: MetricCosine, ShardSize: 500_000},
	LAION:  {Name: "LAION", Dimension: 768, Size: 100_000_000, Metric: MetricL2, ShardSize: 500_000},
}

// Data returns the static description of the dataset.
func (d Dataset) Data() Data {
	return datasets[d]
}

// String returns the dataset name.
func (d Dataset) String() string {
	return datasets[d].Name
}

// Parse resolves a dataset by name, case-insensitively.
func Parse(name string) (Dataset, error) {
	for d, data := range datasets {
		if strings.EqualFold(data.Name, name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dataset %q", name)
}
