package chesscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesConfig(t *testing.T) {
	cfg := DefaultRulesConfig()
	assert.Equal(t, "traditional", cfg.Rules)
	assert.False(t, cfg.UseStrictRules)
}

func TestLoadRulesConfigFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("use_strict_rules = true\n"), 0o644))

	cfg, err := LoadRulesConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.UseStrictRules)
	assert.Equal(t, "traditional", cfg.Rules)
}

func TestLoadRulesConfigMissingFile(t *testing.T) {
	_, err := LoadRulesConfig("/nonexistent/rules.toml")
	assert.Error(t, err)
}
