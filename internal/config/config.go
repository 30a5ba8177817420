package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docfrag.yaml"

// Config represents the application configuration
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Frontmatter FrontmatterConfig `yaml:"frontmatter"`
	Logging     LoggingConfig     `yaml:"logging"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// OutputConfig controls where and how rendered files are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Format    string `yaml:"format"`    // markdown | html
	Overwrite bool   `yaml:"overwrite"` // replace existing output files
}

// FrontmatterConfig controls the YAML frontmatter prepended to Markdown output.
type FrontmatterConfig struct {
	Enabled     bool           `yaml:"enabled"`
	UID         bool           `yaml:"uid"`
	Fingerprint bool           `yaml:"fingerprint"`
	Fields      map[string]any `yaml:"fields,omitempty"` // merged into every document
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// MetricsConfig controls Prometheus metric export.
type MetricsConfig struct {
	// Textfile, when set, receives the metrics of a run in the node exporter
	// textfile collector format.
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Directory: "./out",
			Format:    "markdown",
			Overwrite: true,
		},
		Frontmatter: FrontmatterConfig{
			Enabled:     true,
			UID:         true,
			Fingerprint: true,
		},
		Logging: LoggingConfig{
			Level:  string(LogLevelInfo),
			Format: string(LogFormatText),
		},
	}
}

// Load loads configuration from the specified file. Values missing from the
// file keep their defaults.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to load .env file")
	}

	// #nosec G304 -- the path is supplied by the CLI user.
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.ConfigNotFound(configPath)
		}
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to read config file").
			WithContext("path", configPath)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to unmarshal config").
			WithContext("path", configPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configPath, falling back to Default when the file does
// not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := loadEnvFile(); err != nil {
			return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to load .env file")
		}
		return Default(), nil
	}
	return Load(configPath)
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.New(derrors.CategoryConfig, derrors.SeverityFatal, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath)
	}

	example := Default()
	example.Frontmatter.Fields = map[string]any{
		"generator": "docfrag",
	}
	example.Metrics.Textfile = ""

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return derrors.OutputError(configPath, err)
	}
	return nil
}
