// Package testutil provides shared test helpers for creating config files and text fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption changes one value of the generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	reversoURL     string
	translateURL   string
	userID         string
	sourceLanguage string
	targetLanguage string
}

// WithReversoServer points both Reverso endpoints at baseURL, usually an httptest server.
func WithReversoServer(baseURL string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.reversoURL = baseURL
		cfg.translateURL = baseURL + "/translate/v1/translation"
	}
}

// WithUserID sets the reader's user id.
func WithUserID(userID string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.userID = userID
	}
}

// WithLanguages sets the reader's default languages.
func WithLanguages(source, target string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.sourceLanguage = source
		cfg.targetLanguage = target
	}
}

// SetupTestConfig creates a config file backed by a sqlite database under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		reversoURL:     "http://127.0.0.1:1",
		translateURL:   "http://127.0.0.1:1/translate/v1/translation",
		userID:         "tester",
		sourceLanguage: "german",
		targetLanguage: "russian",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	configContent := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
reverso:
  context_base_url: %s
  translate_url: %s
  timeout_seconds: 5
review:
  interval_hours: 24
reader:
  user_id: %s
  source_language: %s
  target_language: %s
`,
		filepath.Join(dataDir, "flashcards.db"),
		cfg.reversoURL,
		cfg.translateURL,
		cfg.userID,
		cfg.sourceLanguage,
		cfg.targetLanguage,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateTextFile writes content to dir/name and returns the path.
func CreateTextFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
