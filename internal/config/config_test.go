package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "gemini without keys",
			config: Config{
				Abstractive: AbstractiveConfig{Backend: BackendGemini},
			},
			wantErr: true,
		},
		{
			name: "gemini with keys",
			config: Config{
				Abstractive: AbstractiveConfig{Backend: BackendGemini, APIKeys: []string{"k1"}},
			},
			wantErr: false,
		},
		{
			name: "command backend without command",
			config: Config{
				Abstractive: AbstractiveConfig{Backend: BackendCommand},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Abstractive: AbstractiveConfig{Backend: "t5"},
			},
			wantErr: true,
		},
		{
			name: "input without output",
			config: Config{
				Paths: PathsConfig{Input: "data/input"},
			},
			wantErr: true,
		},
		{
			name: "unknown default method",
			config: Config{
				Summary: SummaryConfig{DefaultMethod: "lexrank"},
			},
			wantErr: true,
		},
		{
			name: "abstractive default without backend",
			config: Config{
				Summary: SummaryConfig{DefaultMethod: "abstractive"},
			},
			wantErr: true,
		},
		{
			name: "abstractive default with command backend",
			config: Config{
				Summary:     SummaryConfig{DefaultMethod: "Abstractive"},
				Abstractive: AbstractiveConfig{Backend: BackendCommand, Command: "ollama"},
			},
			wantErr: false,
		},
		{
			name: "default percentage out of range",
			config: Config{
				Summary: SummaryConfig{DefaultPercentage: 150},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Summary.DefaultPercentage)
	assert.Equal(t, "extractive", cfg.Summary.DefaultMethod)
	assert.Equal(t, BackendNone, cfg.Abstractive.Backend)
	assert.Equal(t, 30, cfg.Abstractive.MinWords)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Performance.MaxConcurrent)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestValidateNormalizesDefaultMethod(t *testing.T) {
	cfg := Config{Summary: SummaryConfig{DefaultMethod: " Extractive "}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "extractive", cfg.Summary.DefaultMethod)
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "key-a, key-b,")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
  read_timeout: 5s
  cors_origins: ["http://localhost:3000"]

summary:
  default_percentage: 40

abstractive:
  backend: gemini
  model: "gemini-2.5-pro"
  work_dir: "/srv/models"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
  format: "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 40, cfg.Summary.DefaultPercentage)
	assert.Equal(t, "gemini-2.5-pro", cfg.Abstractive.Model)
	assert.Equal(t, "/srv/models", cfg.Abstractive.WorkDir)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.Abstractive.APIKeys)
	assert.Equal(t, "data/input", cfg.Paths.Input)
	assert.Equal(t, "data/archived", cfg.Paths.Archived)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadSingleKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("GEMINI_API_KEY", "only")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, cfg.Abstractive.APIKeys)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
