package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexicon-tools/logeion/internal/testutil"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     func(dbPath string) string
		wantErr           bool
		wantErrorContains []string
		want              func(dbPath string) *Config
	}{
		{
			name: "valid config file with custom values",
			configContent: func(dbPath string) string {
				return fmt.Sprintf(`dictionary:
  path: %s
lemmatizer:
  base_url: http://latincy:9000
  model: la_core_web_sm
  timeout_seconds: 10
`, dbPath)
			},
			want: func(dbPath string) *Config {
				return &Config{
					Dictionary: DictionaryConfig{Path: dbPath},
					Lemmatizer: LemmatizerConfig{
						BaseURL:        "http://latincy:9000",
						Model:          "la_core_web_sm",
						TimeoutSeconds: 10,
					},
				}
			},
		},
		{
			name: "defaults fill missing lemmatizer fields",
			configContent: func(dbPath string) string {
				return fmt.Sprintf("dictionary:\n  path: %s\n", dbPath)
			},
			want: func(dbPath string) *Config {
				return &Config{
					Dictionary: DictionaryConfig{Path: dbPath},
					Lemmatizer: LemmatizerConfig{
						BaseURL:        "http://localhost:8000",
						Model:          "la_core_web_lg",
						TimeoutSeconds: 30,
					},
				}
			},
		},
		{
			name: "missing dictionary file fails validation",
			configContent: func(dbPath string) string {
				return "dictionary:\n  path: /nonexistent/dictionary.sqlite\n"
			},
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"must be an existing and readable file",
			},
		},
		{
			name: "invalid YAML format",
			configContent: func(dbPath string) string {
				return "dictionary:\n  invalid yaml here [[[\n"
			},
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
			},
		},
		{
			name: "invalid lemmatizer URL fails validation",
			configContent: func(dbPath string) string {
				return fmt.Sprintf(`dictionary:
  path: %s
lemmatizer:
  base_url: not-a-url
`, dbPath)
			},
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			dbPath := testutil.CreateTestDictionary(t, tmpDir, testutil.DefaultEntries())

			cfgPath := filepath.Join(tmpDir, "config.yml")
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.configContent(dbPath)), 0644))

			loader, err := NewConfigLoader(cfgPath)
			require.NoError(t, err)

			got, err := loader.Load()
			if tt.wantErr {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(dbPath), got)
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := testutil.CreateTestDictionary(t, tmpDir, testutil.DefaultEntries())

	t.Setenv("LOGEION_DATABASE", dbPath)
	t.Setenv("LATINCY_URL", "http://latincy.internal:8000")
	t.Setenv("LATINCY_MODEL", "la_core_web_trf")

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dictionary:\n  path: /ignored/by/env.sqlite\n"), 0644))

	loader, err := NewConfigLoader(cfgPath)
	require.NoError(t, err)

	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, dbPath, got.Dictionary.Path)
	assert.Equal(t, "http://latincy.internal:8000", got.Lemmatizer.BaseURL)
	assert.Equal(t, "la_core_web_trf", got.Lemmatizer.Model)
}

func TestConfig_Validate(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := testutil.CreateTestDictionary(t, tmpDir, testutil.DefaultEntries())

	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid",
			config: Config{
				Dictionary: DictionaryConfig{Path: dbPath},
				Lemmatizer: LemmatizerConfig{BaseURL: "http://localhost:8000", Model: "la_core_web_lg"},
			},
		},
		{
			name: "directory is not a readable file",
			config: Config{
				Dictionary: DictionaryConfig{Path: tmpDir},
				Lemmatizer: LemmatizerConfig{BaseURL: "http://localhost:8000", Model: "la_core_web_lg"},
			},
			wantErr: "must be an existing and readable file",
		},
		{
			name: "missing model",
			config: Config{
				Dictionary: DictionaryConfig{Path: dbPath},
				Lemmatizer: LemmatizerConfig{BaseURL: "http://localhost:8000"},
			},
			wantErr: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
