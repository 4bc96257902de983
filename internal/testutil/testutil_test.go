package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	tests := []struct {
		name       string
		opts       []ConfigOption
		wantUser   string
		wantSource string
		wantURL    string
	}{
		{
			name:       "defaults",
			wantUser:   "tester",
			wantSource: "german",
			wantURL:    "http://127.0.0.1:1",
		},
		{
			name: "options",
			opts: []ConfigOption{
				WithReversoServer("http://127.0.0.1:8080"),
				WithUserID("reader-2"),
				WithLanguages("english", "french"),
			},
			wantUser:   "reader-2",
			wantSource: "english",
			wantURL:    "http://127.0.0.1:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FLASHREADER_USER_ID", "")
			tmpDir := t.TempDir()
			got := SetupTestConfig(t, tmpDir, tt.opts...)
			assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

			info, err := os.Stat(filepath.Join(tmpDir, "data"))
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			loader, err := config.NewConfigLoader(got)
			require.NoError(t, err)
			cfg, err := loader.Load()
			require.NoError(t, err)
			assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
			assert.Equal(t, filepath.Join(tmpDir, "data", "flashcards.db"), cfg.Database.Path)
			assert.Equal(t, tt.wantUser, cfg.Reader.UserID)
			assert.Equal(t, tt.wantSource, cfg.Reader.SourceLanguage)
			assert.Equal(t, tt.wantURL, cfg.Reverso.ContextBaseURL)
		})
	}
}

func TestCreateTextFile(t *testing.T) {
	dir := t.TempDir()
	path := CreateTextFile(t, dir, "nested/chapter.txt", "Das Haus ist alt.")

	assert.Equal(t, filepath.Join(dir, "nested", "chapter.txt"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Das Haus ist alt.", string(content))
}
