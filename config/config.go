// Package config holds the tunable constants shared by the benchmark case
// catalog. Every value can be overridden through a VDB_-prefixed environment
// variable holding a Go duration string (e.g. VDB_LOAD_TIMEOUT_DEFAULT=3h).
package config

import (
	"os"
	"time"
)

// Timeouts handed to the external runner. Capacity cases insert until the
// target is full, so they get a generous day-long budget; load and optimize
// timeouts scale with the dataset tier they belong to.
var (
	CapacityTimeout = durationEnv("VDB_CAPACITY_TIMEOUT", 24*time.Hour)

	LoadTimeoutDefault   = durationEnv("VDB_LOAD_TIMEOUT_DEFAULT", 150*time.Minute)
	LoadTimeout768D1M    = durationEnv("VDB_LOAD_TIMEOUT_768D_1M", 150*time.Minute)
	LoadTimeout768D10M   = durationEnv("VDB_LOAD_TIMEOUT_768D_10M", 25*time.Hour)
	LoadTimeout768D100M  = durationEnv("VDB_LOAD_TIMEOUT_768D_100M", 250*time.Hour)
	LoadTimeout1536D500K = durationEnv("VDB_LOAD_TIMEOUT_1536D_500K", 150*time.Minute)
	LoadTimeout1536D5M   = durationEnv("VDB_LOAD_TIMEOUT_1536D_5M", 25*time.Hour)

	OptimizeTimeoutDefault   = durationEnv("VDB_OPTIMIZE_TIMEOUT_DEFAULT", 30*time.Minute)
	OptimizeTimeout768D1M    = durationEnv("VDB_OPTIMIZE_TIMEOUT_768D_1M", 30*time.Minute)
	OptimizeTimeout768D10M   = durationEnv("VDB_OPTIMIZE_TIMEOUT_768D_10M", 5*time.Hour)
	OptimizeTimeout768D100M  = durationEnv("VDB_OPTIMIZE_TIMEOUT_768D_100M", 50*time.Hour)
	OptimizeTimeout1536D500K = durationEnv("VDB_OPTIMIZE_TIMEOUT_1536D_500K", 15*time.Minute)
	OptimizeTimeout1536D5M   = durationEnv("VDB_OPTIMIZE_TIMEOUT_1536D_5M", 150*time.Minute)
)

// Dataset source defaults used by the CLI when no flags are given.
var (
	DefaultBucket   = stringEnv("VDB_DATASET_BUCKET", "assets.vectordbbench")
	DefaultCacheDir = stringEnv("VDB_DATASET_CACHE", "/tmp/vectordb_bench/dataset")
)

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
