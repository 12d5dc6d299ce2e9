package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "api_base_url": "https://calculator.example.com/api",
    "request_timeout": 5000,
    "session_path": "/tmp/turnkey-session.json",
    "debug_logging": true
}`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "valid config",
			content: validConfigJSON,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://calculator.example.com/api", cfg.APIBaseURL)
				assert.Equal(t, 5000, cfg.RequestTimeoutMS)
				assert.Equal(t, "/tmp/turnkey-session.json", cfg.SessionPath)
				assert.True(t, cfg.DebugLogging)
			},
		},
		{
			name:    "defaults fill missing fields",
			content: `{}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
				assert.Equal(t, DefaultRequestTimeoutMS, cfg.RequestTimeoutMS)
				assert.Equal(t, DefaultSessionPath, cfg.SessionPath)
				assert.False(t, cfg.DebugLogging)
			},
		},
		{
			name:    "bad scheme",
			content: `{"api_base_url": "ftp://example.com/api"}`,
			wantErr: true,
		},
		{
			name:    "empty base url",
			content: `{"api_base_url": ""}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			content: `{invalid json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.content)
			cfg, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRequestTimeoutDerivation(t *testing.T) {
	path := writeTestConfig(t, `{"request_timeout": 2500}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2500, cfg.RequestTimeoutMS)
	assert.Equal(t, "2.5s", cfg.RequestTimeout.String())
}
