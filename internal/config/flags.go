package config

import (
	"github.com/spf13/pflag"
)

// Flag names registered by RegisterFlags.
const (
	FlagConfig    = "config"
	FlagProvider  = "provider"
	FlagModel     = "model"
	FlagQuestions = "questions"
	FlagLogFile   = "log-file"
	FlagLogLevel  = "log-level"
	FlagEventsDB  = "events-db"
)

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to config file (overrides SHISEIKAN_CONFIG)")
	fs.String(FlagProvider, "", "LLM provider: gemini, anthropic, openai, openrouter or mock")
	fs.String(FlagModel, "", "LLM model name or alias")
	fs.Int(FlagQuestions, 0, "Number of questions to request")
	fs.String(FlagLogFile, "", "Write JSON logs to this file")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn or error")
	fs.String(FlagEventsDB, "", "Record LLM requests in this SQLite file")
}

// pathFlag returns the --config value, or "" if unset.
func pathFlag(fs *pflag.FlagSet) string {
	p, _ := fs.GetString(FlagConfig)
	return p
}

// applyFlags copies the flags that were set on the command line.
func (c *Config) applyFlags(fs *pflag.FlagSet) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{FlagProvider, &c.LLM.Provider},
		{FlagModel, &c.LLM.Model},
		{FlagLogFile, &c.Log.File},
		{FlagLogLevel, &c.Log.Level},
		{FlagEventsDB, &c.EventsDB},
	}
	for _, s := range strs {
		if fs.Lookup(s.name) == nil || !fs.Changed(s.name) {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return err
		}
		*s.dst = v
	}

	if fs.Lookup(FlagQuestions) != nil && fs.Changed(FlagQuestions) {
		n, err := fs.GetInt(FlagQuestions)
		if err != nil {
			return err
		}
		c.Quiz.Total = n
	}
	return nil
}
