package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fragsearch "github.com/rawwwulea/QuickSearch"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Index.MinKeywordLength)
	assert.Equal(t, "ratio", cfg.Index.Scorer)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fragsearch.yaml")
	content := []byte("index:\n  minKeywordLength: 3\n  scorer: length\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Index.MinKeywordLength)
	assert.Equal(t, "length", cfg.Index.Scorer)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidMinKeywordLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fragsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("index:\n  minKeywordLength: 0\n"), 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, fragsearch.ErrInvalidMinKeywordLength))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FRAGSEARCH_MIN_KEYWORD_LENGTH", "5")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Index.MinKeywordLength)
}

func TestOptionsProducesUsableOptionList(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	opts := cfg.Options()
	assert.NotEmpty(t, opts)
}
