package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationEnv(t *testing.T) {
	t.Run("Unset_ReturnsFallback", func(t *testing.T) {
		assert.Equal(t, 2*time.Hour, durationEnv("VDB_TEST_UNSET", 2*time.Hour))
	})

	t.Run("Set_ParsesDuration", func(t *testing.T) {
		t.Setenv("VDB_TEST_TIMEOUT", "45m")
		assert.Equal(t, 45*time.Minute, durationEnv("VDB_TEST_TIMEOUT", time.Hour))
	})

	t.Run("Malformed_ReturnsFallback", func(t *testing.T) {
		t.Setenv("VDB_TEST_TIMEOUT", "not-a-duration")
		assert.Equal(t, time.Hour, durationEnv("VDB_TEST_TIMEOUT", time.Hour))
	})
}

func TestStringEnv(t *testing.T) {
	t.Setenv("VDB_TEST_BUCKET", "my-bucket")
	assert.Equal(t, "my-bucket", stringEnv("VDB_TEST_BUCKET", "fallback"))
	assert.Equal(t, "fallback", stringEnv("VDB_TEST_BUCKET_UNSET", "fallback"))
}

func TestTimeoutTiers(t *testing.T) {
	// The larger the dataset tier, the larger its budget.
	assert.Greater(t, LoadTimeout768D100M, LoadTimeout768D10M)
	assert.Greater(t, LoadTimeout768D10M, LoadTimeout768D1M)
	assert.Greater(t, OptimizeTimeout768D100M, OptimizeTimeout768D10M)
	assert.Greater(t, OptimizeTimeout768D10M, OptimizeTimeoutDefault)
}
