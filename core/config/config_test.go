package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmidspace/portfolio/core/config"
)

type testConfig struct {
	Origin     string        `env:"TEST_APP_ORIGIN" envDefault:"https://tahmid.space"`
	SessionTTL time.Duration `env:"TEST_APP_SESSION_TTL" envDefault:"5m"`
	Production bool          `env:"TEST_APP_PRODUCTION" envDefault:"false"`
}

type requiredConfig struct {
	URL string `env:"TEST_APP_REQUIRED_URL,required"`
}

// Not parallel: these tests mutate the process environment and the shared cache.

func TestLoadDefaultsAndOverrides(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_APP_PRODUCTION", "true")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://tahmid.space", cfg.Origin)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.Production)
}

func TestLoadIsCachedPerType(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_APP_ORIGIN", "https://first.example")

	var first testConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_APP_ORIGIN", "https://second.example")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "https://first.example", second.Origin)

	config.Reset()
	var third testConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "https://second.example", third.Origin)
}

func TestLoadRequiredMissing(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadNil(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}
