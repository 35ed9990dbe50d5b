package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/condense/internal/model"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Language    LanguageConfig    `yaml:"language"`
	Summary     SummaryConfig     `yaml:"summary"`
	Abstractive AbstractiveConfig `yaml:"abstractive"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

type LanguageConfig struct {
	// StopwordsFile overrides the built-in English stopword list.
	StopwordsFile string `yaml:"stopwords_file"`
	// PunktModelFile overrides the built-in English sentence boundary model.
	PunktModelFile string `yaml:"punkt_model_file"`
}

type SummaryConfig struct {
	DefaultPercentage int    `yaml:"default_percentage"`
	DefaultMethod     string `yaml:"default_method"`
}

type AbstractiveConfig struct {
	Backend           string        `yaml:"backend"`
	Model             string        `yaml:"model"`
	MinWords          int           `yaml:"min_words"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Command           string        `yaml:"command"`
	CommandArgs       []string      `yaml:"command_args"`
	Timeout           time.Duration `yaml:"timeout"`
	// WorkDir is where the command backend runs; empty means the current directory.
	WorkDir string `yaml:"work_dir"`

	// APIKeys is filled from GEMINI_API_KEYS / GEMINI_API_KEY, never from YAML.
	APIKeys []string `yaml:"-"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Processing string `yaml:"processing"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

const (
	BackendNone    = "none"
	BackendGemini  = "gemini"
	BackendCommand = "command"
)

// Load reads the YAML file at path, pulls secrets from the environment
// (a .env file in the working directory is honoured) and validates the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	cfg.Abstractive.APIKeys = apiKeysFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func apiKeysFromEnv() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Config) Validate() error {
	if c.Summary.DefaultPercentage == 0 {
		c.Summary.DefaultPercentage = 30
	}
	if c.Summary.DefaultPercentage < 0 || c.Summary.DefaultPercentage > 100 {
		return fmt.Errorf("summary.default_percentage must be in (0, 100]")
	}
	if c.Summary.DefaultMethod == "" {
		c.Summary.DefaultMethod = "extractive"
	}

	if c.Abstractive.Backend == "" {
		c.Abstractive.Backend = BackendNone
	}
	switch c.Abstractive.Backend {
	case BackendNone:
	case BackendGemini:
		if len(c.Abstractive.APIKeys) == 0 {
			return fmt.Errorf("abstractive.backend gemini requires GEMINI_API_KEYS or GEMINI_API_KEY")
		}
	case BackendCommand:
		if c.Abstractive.Command == "" {
			return fmt.Errorf("abstractive.command is required for the command backend")
		}
	default:
		return fmt.Errorf("abstractive.backend must be one of none, gemini, command")
	}

	method, err := model.ParseMethod(c.Summary.DefaultMethod)
	if err != nil {
		return fmt.Errorf("summary.default_method: %w", err)
	}
	c.Summary.DefaultMethod = string(method)
	if method == model.MethodAbstractive && c.Abstractive.Backend == BackendNone {
		return fmt.Errorf("summary.default_method abstractive requires an abstractive.backend")
	}

	if c.Paths.Input != "" && c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required when paths.input is set")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 2 * time.Minute
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 10 << 20
	}
	if c.Abstractive.Model == "" {
		c.Abstractive.Model = "gemini-2.5-flash"
	}
	if c.Abstractive.MinWords == 0 {
		c.Abstractive.MinWords = 30
	}
	if c.Abstractive.RequestsPerSecond == 0 {
		c.Abstractive.RequestsPerSecond = 1
	}
	if c.Abstractive.Timeout == 0 {
		c.Abstractive.Timeout = 90 * time.Second
	}
	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
