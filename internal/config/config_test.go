package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	configHome := t.TempDir()
	dir := filepath.Join(configHome, "quizdeck")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	t.Setenv("XDG_CONFIG_HOME", configHome)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, string(quiz.DifficultyEasy), cfg.Defaults.Difficulty)
	assert.Equal(t, quiz.DefaultAmount, cfg.Defaults.Amount)
	assert.Equal(t, "", cfg.Defaults.Category)
	assert.Equal(t, "", cfg.Debug.LogFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	writeConfig(t, `
defaults:
  difficulty: hard
  amount: 15
  category: "22"
debug:
  log_file: /tmp/quizdeck.log
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hard", cfg.Defaults.Difficulty)
	assert.Equal(t, 15, cfg.Defaults.Amount)
	assert.Equal(t, "22", cfg.Defaults.Category)
	assert.Equal(t, "/tmp/quizdeck.log", cfg.Debug.LogFile)
}

func TestLoad_InvalidDifficulty(t *testing.T) {
	writeConfig(t, `
defaults:
  difficulty: impossible
`)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidAmount(t *testing.T) {
	writeConfig(t, `
defaults:
  amount: -3
`)

	_, err := Load()
	assert.Error(t, err)
}

func TestQuizDefaults(t *testing.T) {
	cfg := &Config{Defaults: Defaults{Difficulty: "medium", Amount: 5, Category: "9"}}

	got := cfg.QuizDefaults()
	want := quiz.Config{Difficulty: quiz.DifficultyMedium, Amount: 5, Category: "9"}
	assert.Equal(t, want, got)
}
