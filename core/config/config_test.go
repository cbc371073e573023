package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outputtracker/core/config"
)

type trackingConfig struct {
	Nulled   bool          `env:"OT_TEST_NULLED" envDefault:"true"`
	Interval time.Duration `env:"OT_TEST_INTERVAL" envDefault:"2s"`
	Name     string        `env:"OT_TEST_NAME"`
}

type requiredConfig struct {
	Token string `env:"OT_TEST_REQUIRED_TOKEN,required"`
}

type cachedConfig struct {
	Value string `env:"OT_TEST_CACHED_VALUE"`
}

func TestLoad_ParsesEnvironment(t *testing.T) {
	t.Setenv("OT_TEST_NULLED", "false")
	t.Setenv("OT_TEST_NAME", "demo")

	var cfg trackingConfig
	require.NoError(t, config.Load(&cfg))

	assert.False(t, cfg.Nulled)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, "demo", cfg.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("OT_TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("OT_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	config.MustLoad(&second)

	assert.Equal(t, "first", first.Value)
	assert.Equal(t, first, second)
}
