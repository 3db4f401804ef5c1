package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granjalabs/avikit/pkg/config"
)

// Each test uses its own struct type because loaded configs are cached per
// type for the process lifetime.

func TestLoad(t *testing.T) {
	t.Run("parses environment into struct", func(t *testing.T) {
		type testCfgParse struct {
			Name  string `env:"CFG_TEST_NAME"`
			Count int    `env:"CFG_TEST_COUNT" envDefault:"3"`
		}

		t.Setenv("CFG_TEST_NAME", "acme")

		var cfg testCfgParse
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "acme", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
	})

	t.Run("caches per type", func(t *testing.T) {
		type testCfgCache struct {
			Value string `env:"CFG_TEST_CACHE"`
		}

		t.Setenv("CFG_TEST_CACHE", "first")
		var cfg testCfgCache
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "first", cfg.Value)

		// A later environment change must not affect the cached value.
		t.Setenv("CFG_TEST_CACHE", "second")
		var again testCfgCache
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)
	})

	t.Run("required variable missing", func(t *testing.T) {
		type testCfgRequired struct {
			Secret string `env:"CFG_TEST_ABSENT_SECRET,required"`
		}

		var cfg testCfgRequired
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var nilCfg *struct{}
		err := config.Load(nilCfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type testCfgMust struct {
			Secret string `env:"CFG_TEST_MUST_SECRET,required"`
		}

		assert.Panics(t, func() {
			var cfg testCfgMust
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads valid config", func(t *testing.T) {
		type testCfgMustOK struct {
			Port int `env:"CFG_TEST_MUST_PORT" envDefault:"8080"`
		}

		var cfg testCfgMustOK
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, 8080, cfg.Port)
	})
}
