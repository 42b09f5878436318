package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration. Values resolve in the
// usual Viper order: defaults, then an optional config.yaml, then
// PURCHASES_-prefixed environment variables.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Files struct {
		Input      string `mapstructure:"input" yaml:"input"`
		Output     string `mapstructure:"output" yaml:"output"`
		Report     string `mapstructure:"report" yaml:"report"`
		Families   string `mapstructure:"families" yaml:"families"`
		Categories string `mapstructure:"categories" yaml:"categories"`
	} `mapstructure:"files" yaml:"files"`

	Chart struct {
		Width  int `mapstructure:"width" yaml:"width"`
		Height int `mapstructure:"height" yaml:"height"`
	} `mapstructure:"chart" yaml:"chart"`
}

// InitializeConfig loads the hierarchical configuration.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.purchases-csv")
	v.AddConfigPath(".purchases-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PURCHASES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// a present but broken config file is worth a warning; defaults
			// and env vars still apply
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	// the fixed file names of the original workflow
	v.SetDefault("files.input", "purchases.html")
	v.SetDefault("files.output", "purchase_transactions.csv")
	v.SetDefault("files.report", "purchase_report.html")
	v.SetDefault("files.families", "product_families.yaml")
	v.SetDefault("files.categories", "categories.yaml")

	v.SetDefault("chart.width", 900)
	v.SetDefault("chart.height", 400)
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("unsupported log level: %s", config.Log.Level)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d",
			config.Chart.Width, config.Chart.Height)
	}

	return nil
}
