package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "purchases.html", cfg.Files.Input)
	assert.Equal(t, "purchase_transactions.csv", cfg.Files.Output)
	assert.Equal(t, "purchase_report.html", cfg.Files.Report)
	assert.Equal(t, "product_families.yaml", cfg.Files.Families)
	assert.Equal(t, "categories.yaml", cfg.Files.Categories)
	assert.Equal(t, 900, cfg.Chart.Width)
	assert.Equal(t, 400, cfg.Chart.Height)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PURCHASES_LOG_LEVEL", "debug")
	t.Setenv("PURCHASES_FILES_OUTPUT", "ledger.csv")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ledger.csv", cfg.Files.Output)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.CSV.Delimiter = ","
		cfg.Chart.Width = 900
		cfg.Chart.Height = 400
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validateConfig(valid()))
	})

	t.Run("unsupported log level", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Level = "verbose"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("multi-character delimiter", func(t *testing.T) {
		cfg := valid()
		cfg.CSV.Delimiter = ";;"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("empty delimiter", func(t *testing.T) {
		cfg := valid()
		cfg.CSV.Delimiter = ""
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("non-positive chart dimensions", func(t *testing.T) {
		cfg := valid()
		cfg.Chart.Width = 0
		assert.Error(t, validateConfig(cfg))
	})
}
