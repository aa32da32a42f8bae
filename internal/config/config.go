package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ReportConfig defines the report to generate: which treatment groups form
// the table columns (in display order) and which baseline variables to
// summarize. The treatment group order given here is the single source of
// truth for column order in every table of the report.
type ReportConfig struct {
	TreatmentGroups []string `yaml:"treatment_groups" envconfig:"TREATMENT_GROUPS" validate:"required,min=1,unique"`
	ContinuousVars  []string `yaml:"continuous_vars" envconfig:"CONTINUOUS_VARS"`
	CategoricalVars []string `yaml:"categorical_vars" envconfig:"CATEGORICAL_VARS"`
}

// OutputConfig contains export configuration
type OutputConfig struct {
	Dir    string `yaml:"dir" envconfig:"DIR"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=csv xlsx json"`
}

// Load loads configuration from environment variables and an optional YAML
// file. Environment variables (prefix ESUB) take precedence over file values;
// defaults from constants.go fill whatever neither source set.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("ESUB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	cfg.applyDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if len(envConfig.Report.TreatmentGroups) == 0 {
		envConfig.Report.TreatmentGroups = fileConfig.Report.TreatmentGroups
	}
	if len(envConfig.Report.ContinuousVars) == 0 {
		envConfig.Report.ContinuousVars = fileConfig.Report.ContinuousVars
	}
	if len(envConfig.Report.CategoricalVars) == 0 {
		envConfig.Report.CategoricalVars = fileConfig.Report.CategoricalVars
	}
	if envConfig.Output.Dir == "" {
		envConfig.Output.Dir = fileConfig.Output.Dir
	}
	if envConfig.Output.Format == "" {
		envConfig.Output.Format = fileConfig.Output.Format
	}

	return envConfig
}

// applyDefaults fills unset fields with application defaults
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = DefaultLogOutput
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultReportsDir
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultExportFormat
	}
}

// Validate checks the configuration for structural problems before any
// dataset is touched.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}
