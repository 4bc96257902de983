package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
)

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   filepath.Join("data", "flashcards.db"),
			Port:   3306,
		},
		Reverso: ReversoConfig{
			ContextBaseURL: reverso.DefaultContextBaseURL,
			TranslateURL:   reverso.DefaultTranslateURL,
			Origin:         reverso.DefaultOrigin,
			TimeoutSeconds: 15,
		},
		Review: ReviewConfig{
			IntervalHours: 24,
		},
		Reader: ReaderConfig{
			UserID:         "local",
			SourceLanguage: "german",
			TargetLanguage: "russian",
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `database:
  driver: sqlite3
  path: custom/cards.db
reverso:
  timeout_seconds: 5
  max_retry_attempts: 2
  user_agents:
    - test-agent
review:
  interval_hours: 12
reader:
  user_id: alice
  source_language: french
  target_language: english
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Path = "custom/cards.db"
				cfg.Reverso.TimeoutSeconds = 5
				cfg.Reverso.MaxRetryAttempts = 2
				cfg.Reverso.UserAgents = []string{"test-agent"}
				cfg.Review.IntervalHours = 12
				cfg.Reader = ReaderConfig{UserID: "alice", SourceLanguage: "french", TargetLanguage: "english"}
				return cfg
			},
		},
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "unknown keys are ignored",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name: "mysql settings with password from environment",
			configContent: `database:
  driver: mysql
  host: db.example.com
  port: 3307
  database: cards
  username: reader
`,
			useExplicitPath: true,
			env:             map[string]string{"DB_PASSWORD": "secret"},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Driver = DriverMySQL
				cfg.Database.Host = "db.example.com"
				cfg.Database.Port = 3307
				cfg.Database.Database = "cards"
				cfg.Database.Username = "reader"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `database:
  driver: sqlite3
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unsupported driver",
			configContent: `database:
  driver: postgres
`,
			wantErrorContains: []string{"invalid configuration", "driver must be one of"},
		},
		{
			name: "mysql without host",
			configContent: `database:
  driver: mysql
  database: cards
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"invalid configuration", "host is a required field"},
		},
		{
			name: "unsupported language",
			configContent: `reader:
  source_language: klingon
`,
			wantErrorContains: []string{"reader.source_language must be one of the supported languages"},
		},
		{
			name: "same source and target language",
			configContent: `reader:
  source_language: german
  target_language: german
`,
			wantErrorContains: []string{"target_language"},
		},
		{
			name: "zero review interval",
			configContent: `review:
  interval_hours: 0
`,
			wantErrorContains: []string{"interval_hours"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_PASSWORD", "")
			t.Setenv("FLASHREADER_USER_ID", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					require.NoError(t, os.Chdir(originalDir))
				}()
				require.NoError(t, os.Chdir(tempDir))
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, 15*time.Second, cfg.Reverso.Timeout())
	assert.Equal(t, 24*time.Hour, cfg.Review.Interval())
}

func TestReaderConfig_Languages(t *testing.T) {
	source, target, err := ReaderConfig{SourceLanguage: "ger", TargetLanguage: "Russian"}.Languages()
	require.NoError(t, err)
	assert.Equal(t, reverso.German, source)
	assert.Equal(t, reverso.Russian, target)

	_, _, err = ReaderConfig{SourceLanguage: "german", TargetLanguage: "elvish"}.Languages()
	assert.Error(t, err)
}
