// Package config assembles the runtime configuration from defaults, an
// optional YAML file, a .env file, the environment and command-line flags,
// in that order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/llm"
	"github.com/abhisek/shiseikan/internal/session"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// MaxQuestions caps the number of questions requested per quiz.
const MaxQuestions = 100

// Config is the complete runtime configuration.
type Config struct {
	LLM  llm.Config `yaml:"llm"`
	Quiz QuizConfig `yaml:"quiz"`
	Log  LogConfig  `yaml:"log"`

	// EventsDB is the path of the LLM audit log. Empty disables it.
	EventsDB string `yaml:"events_db"`
}

// QuizConfig controls the quiz flow.
type QuizConfig struct {
	Total        int           `yaml:"total"`
	AdvanceDelay time.Duration `yaml:"advance_delay"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// File receives JSON logs. Empty means no log file.
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LLM: llm.DefaultConfig(),
		Quiz: QuizConfig{
			Total:        content.DefaultTotal,
			AdvanceDelay: session.DefaultAdvanceDelay,
		},
		Log: LogConfig{Level: "info"},
	}
}

// envOverrides mirrors the environment variables. Pointer fields stay nil
// when the variable is unset so that lower layers are kept.
type envOverrides struct {
	APIKey       *string        `env:"API_KEY"`
	Provider     *string        `env:"SHISEIKAN_LLM_PROVIDER"`
	Model        *string        `env:"SHISEIKAN_LLM_MODEL"`
	BaseURL      *string        `env:"SHISEIKAN_LLM_BASE_URL"`
	Timeout      *time.Duration `env:"SHISEIKAN_LLM_TIMEOUT"`
	Total        *int           `env:"SHISEIKAN_QUIZ_TOTAL"`
	AdvanceDelay *time.Duration `env:"SHISEIKAN_QUIZ_ADVANCE_DELAY"`
	LogFile      *string        `env:"SHISEIKAN_LOG_FILE"`
	LogLevel     *string        `env:"SHISEIKAN_LOG_LEVEL"`
	EventsDB     *string        `env:"SHISEIKAN_EVENTS_DB"`
}

// Options tells Load where to look.
type Options struct {
	// Path is an explicit config file. It must exist when set. Defaults
	// to the --config flag.
	Path string

	// EnvFile is the dotenv file to read. Default ".env"; a missing file
	// is ignored.
	EnvFile string

	// Environ replaces the process environment. Used by tests.
	Environ map[string]string

	// Flags, when set, applies the flags registered with RegisterFlags
	// that were changed on the command line.
	Flags *pflag.FlagSet

	// NoCredential skips the API key check, for commands that never call
	// the LLM.
	NoCredential bool
}

// Load builds and validates the configuration.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	environ, err := environment(opts)
	if err != nil {
		return nil, err
	}

	if opts.Path == "" && opts.Flags != nil {
		opts.Path = pathFlag(opts.Flags)
	}
	path, required := configPath(opts, environ)
	if path != "" {
		if err := cfg.loadFile(path, required); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(environ); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := cfg.applyFlags(opts.Flags); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		if !opts.NoCredential || !errors.Is(err, llm.ErrMissingCredential) {
			return nil, err
		}
	}
	return cfg, nil
}

// environment merges the dotenv file under the process environment. Values
// already set in the environment win.
func environment(opts Options) (map[string]string, error) {
	base := opts.Environ
	if base == nil {
		base = env.ToMap(os.Environ())
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}

	merged := make(map[string]string, len(base)+len(dotenv))
	for k, v := range dotenv {
		merged[k] = v
	}
	for k, v := range base {
		merged[k] = v
	}
	return merged, nil
}

// configPath resolves the config file: explicit path, then
// $SHISEIKAN_CONFIG, then the XDG default if present.
func configPath(opts Options, environ map[string]string) (string, bool) {
	if opts.Path != "" {
		return opts.Path, true
	}
	if p := environ["SHISEIKAN_CONFIG"]; p != "" {
		return p, true
	}
	return DefaultPath(environ), false
}

// DefaultPath returns $XDG_CONFIG_HOME/shiseikan/config.yaml, falling back
// to ~/.config. Returns "" if no home directory can be found.
func DefaultPath(environ map[string]string) string {
	dir := environ["XDG_CONFIG_HOME"]
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "shiseikan", "config.yaml")
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(environ map[string]string) error {
	var ov envOverrides
	if err := env.ParseWithOptions(&ov, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	setString(&c.LLM.APIKey, ov.APIKey)
	setString(&c.LLM.Provider, ov.Provider)
	setString(&c.LLM.Model, ov.Model)
	setString(&c.LLM.BaseURL, ov.BaseURL)
	if ov.Timeout != nil {
		c.LLM.Timeout = *ov.Timeout
	}
	if ov.Total != nil {
		c.Quiz.Total = *ov.Total
	}
	if ov.AdvanceDelay != nil {
		c.Quiz.AdvanceDelay = *ov.AdvanceDelay
	}
	setString(&c.Log.File, ov.LogFile)
	setString(&c.Log.Level, ov.LogLevel)
	setString(&c.EventsDB, ov.EventsDB)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if c.Quiz.Total < 1 || c.Quiz.Total > MaxQuestions {
		return fmt.Errorf("quiz total must be between 1 and %d, got %d", MaxQuestions, c.Quiz.Total)
	}
	if c.Quiz.AdvanceDelay < 0 {
		return fmt.Errorf("quiz advance delay must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return c.LLM.Validate()
}

// Content returns the content provider settings.
func (c *Config) Content() content.Config {
	cc := content.DefaultConfig()
	cc.Total = c.Quiz.Total
	return cc
}

// Session returns the controller settings.
func (c *Config) Session() session.Config {
	return session.Config{
		AdvanceDelay: c.Quiz.AdvanceDelay,
		CallTimeout:  c.LLM.Timeout,
	}
}
