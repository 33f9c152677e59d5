package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// Config holds application settings loaded from an optional config file
// and QUIZDECK_* environment variables.
type Config struct {
	Defaults Defaults `mapstructure:"defaults"` // start screen pre-selections
	Debug    Debug    `mapstructure:"debug"`
}

// Defaults pre-fills the start screen configuration.
type Defaults struct {
	Difficulty string `mapstructure:"difficulty"` // easy, medium or hard
	Amount     int    `mapstructure:"amount"`     // questions per quiz
	Category   string `mapstructure:"category"`   // provider category id, "" for any
}

// Debug holds development-only settings.
type Debug struct {
	LogFile string `mapstructure:"log_file"` // empty disables logging
}

// Load reads configuration. A missing config file is not an error; all
// keys have defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configDirs() {
		v.AddConfigPath(dir)
	}

	v.SetDefault("defaults.difficulty", string(quiz.DifficultyEasy))
	v.SetDefault("defaults.amount", quiz.DefaultAmount)
	v.SetDefault("defaults.category", "")
	v.SetDefault("debug.log_file", "")

	v.SetEnvPrefix("quizdeck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// QuizDefaults converts the configured defaults into a quiz configuration.
func (c *Config) QuizDefaults() quiz.Config {
	return quiz.Config{
		Difficulty: quiz.Difficulty(c.Defaults.Difficulty),
		Category:   c.Defaults.Category,
		Amount:     c.Defaults.Amount,
	}
}

func (c *Config) validate() error {
	if !quiz.Difficulty(c.Defaults.Difficulty).Valid() {
		return fmt.Errorf("invalid defaults.difficulty %q", c.Defaults.Difficulty)
	}
	if c.Defaults.Amount <= 0 {
		return fmt.Errorf("invalid defaults.amount %d", c.Defaults.Amount)
	}
	return nil
}

func configDirs() []string {
	var dirs []string
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		dirs = append(dirs, filepath.Join(configHome, "quizdeck"))
	}
	return append(dirs, ".")
}
