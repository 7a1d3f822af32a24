package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

// EnvPrefix prefixes environment overrides, e.g. JDIFF_ENGINE_BASIS=jalali.
const EnvPrefix = "JDIFF"

// Config holds all configuration for the calculator
type Config struct {
	App     AppConfig             `yaml:"app" mapstructure:"app"`
	Engine  domain.EngineSettings `yaml:"engine" mapstructure:"engine"`
	Output  OutputConfig          `yaml:"output" mapstructure:"output"`
	Server  ServerConfig          `yaml:"server" mapstructure:"server"`
	Logger  LoggerConfig          `yaml:"logger" mapstructure:"logger"`
	Metrics MetricsConfig         `yaml:"metrics" mapstructure:"metrics"`
}

// AppConfig holds application-wide settings
type AppConfig struct {
	Name   string `yaml:"name" mapstructure:"name"`
	Locale string `yaml:"locale" mapstructure:"locale"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format        string `yaml:"format" mapstructure:"format"`
	ShowGregorian bool   `yaml:"show_gregorian" mapstructure:"show_gregorian"`
	ShowSummary   bool   `yaml:"show_summary" mapstructure:"show_summary"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	BodyLimit    string        `yaml:"body_limit" mapstructure:"body_limit"`
	RateLimit    float64       `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst    int           `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level    string `yaml:"level" mapstructure:"level"`
	Format   string `yaml:"format" mapstructure:"format"`
	Output   string `yaml:"output" mapstructure:"output"`
	Filename string `yaml:"filename" mapstructure:"filename"`
}

// MetricsConfig holds Prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// Supported enumerations
var (
	Locales      = []string{"fa", "en"}
	LogLevels    = []string{"debug", "info", "warn", "error"}
	LogFormats   = []string{"json", "console"}
	LogOutputs   = []string{"stdout", "stderr", "file"}
	ReservedSeps = []string{"/", "\n"}
)

// Load reads configuration with a fresh InputParser.
func Load(filename string) (*Config, error) {
	return NewInputParser().LoadFromFile(filename)
}

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	return NewInputParser().ValidateConfiguration(c)
}

// Example returns the configuration written by "jdiff config init".
func Example() *Config {
	return NewInputParser().CreateExampleConfiguration()
}

// InputParser handles loading of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from defaults, an optional YAML file and
// JDIFF_* environment variables, in increasing order of precedence. An empty
// filename skips the file.
func (ip *InputParser) LoadFromFile(filename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", filename)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "jdiff")
	v.SetDefault("app.locale", "fa")

	v.SetDefault("engine.basis", string(domain.BasisGregorian))
	v.SetDefault("engine.separator", ",")
	v.SetDefault("engine.workers", 0)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.show_gregorian", false)
	v.SetDefault("output.show_summary", false)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.body_limit", "1M")
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.filename", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Config) error {
	if !contains(Locales, config.App.Locale) {
		return errors.Newf("app.locale must be one of %s, got %q", strings.Join(Locales, ", "), config.App.Locale)
	}

	if err := ip.validateEngine(&config.Engine); err != nil {
		return errors.Wrap(err, "engine")
	}

	if config.Output.Format == "" {
		return errors.New("output.format is required")
	}

	if err := ip.validateServer(&config.Server); err != nil {
		return errors.Wrap(err, "server")
	}

	if err := ip.validateLogger(&config.Logger); err != nil {
		return errors.Wrap(err, "logger")
	}

	if config.Metrics.Enabled && !strings.HasPrefix(config.Metrics.Path, "/") {
		return errors.Newf("metrics.path must start with '/', got %q", config.Metrics.Path)
	}

	return nil
}

func (ip *InputParser) validateEngine(engine *domain.EngineSettings) error {
	if !engine.Basis.Valid() {
		return errors.Newf("basis must be %q or %q, got %q", domain.BasisGregorian, domain.BasisJalali, engine.Basis)
	}
	if engine.Separator == "" {
		return errors.New("separator is required")
	}
	for _, r := range ReservedSeps {
		if strings.Contains(engine.Separator, r) {
			return errors.Newf("separator %q cannot contain %q", engine.Separator, r)
		}
	}
	if engine.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateServer(server *ServerConfig) error {
	if server.Port < 1 || server.Port > 65535 {
		return errors.Newf("port must be between 1 and 65535, got %d", server.Port)
	}
	if server.ReadTimeout < 0 || server.WriteTimeout < 0 {
		return errors.New("timeouts cannot be negative")
	}
	if server.RateLimit < 0 {
		return errors.New("rate_limit cannot be negative")
	}
	if server.RateLimit > 0 && server.RateBurst < 1 {
		return errors.New("rate_burst must be positive when rate_limit is set")
	}
	return nil
}

func (ip *InputParser) validateLogger(logger *LoggerConfig) error {
	if !contains(LogLevels, logger.Level) {
		return errors.Newf("level must be one of %s, got %q", strings.Join(LogLevels, ", "), logger.Level)
	}
	if !contains(LogFormats, logger.Format) {
		return errors.Newf("format must be one of %s, got %q", strings.Join(LogFormats, ", "), logger.Format)
	}
	if !contains(LogOutputs, logger.Output) {
		return errors.Newf("output must be one of %s, got %q", strings.Join(LogOutputs, ", "), logger.Output)
	}
	if logger.Output == "file" && logger.Filename == "" {
		return errors.New("filename is required when output is file")
	}
	return nil
}

// CreateExampleConfiguration returns the default configuration
func (ip *InputParser) CreateExampleConfiguration() *Config {
	return &Config{
		App: AppConfig{Name: "jdiff", Locale: "fa"},
		Engine: domain.EngineSettings{
			Basis:     domain.BasisGregorian,
			Separator: ",",
			Workers:   0,
		},
		Output: OutputConfig{Format: "text", ShowGregorian: false, ShowSummary: true},
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			BodyLimit:    "1M",
			RateLimit:    20,
			RateBurst:    40,
		},
		Logger:  LoggerConfig{Level: "info", Format: "console", Output: "stderr"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Save writes config to filename as YAML
func Save(config *Config, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to encode configuration")
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
