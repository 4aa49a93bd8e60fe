// Package config reads binary settings from flags whose defaults come from
// SNEKMAX_* environment variables.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/brensch/snekmax/logging"
	"github.com/brensch/snekmax/rules"
	"github.com/brensch/snekmax/search"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "SNEKMAX_"

func String(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

func Int(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func Float(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func Duration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func Bool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// SearchFlags collects the engine settings registered on a FlagSet.
type SearchFlags struct {
	depth     *int
	wLength   *float64
	wFood     *float64
	wDanger   *float64
	bodyModel *string
}

// BindSearchFlags registers -depth, -w-length, -w-food, -w-danger and -body.
func BindSearchFlags(fs *flag.FlagSet) *SearchFlags {
	def := search.DefaultConfig()
	return &SearchFlags{
		depth:     fs.Int("depth", Int("DEPTH", def.Depth), "Search depth in plies"),
		wLength:   fs.Float64("w-length", Float("W_LENGTH", def.Weights.Length), "Evaluation weight per unit of length"),
		wFood:     fs.Float64("w-food", Float("W_FOOD", def.Weights.Food), "Evaluation weight of the closest-food term"),
		wDanger:   fs.Float64("w-danger", Float("W_DANGER", def.Weights.Danger), "Evaluation weight per adjacent opponent segment"),
		bodyModel: fs.String("body", String("BODY", def.Body.String()), "Simulated body model: full or two-segment"),
	}
}

// Config resolves the parsed flags into a validated search.Config.
func (f *SearchFlags) Config() (search.Config, error) {
	body, err := rules.ParseBodyModel(*f.bodyModel)
	if err != nil {
		return search.Config{}, err
	}
	cfg := search.Config{
		Depth: *f.depth,
		Body:  body,
	}
	cfg.Weights.Length = *f.wLength
	cfg.Weights.Food = *f.wFood
	cfg.Weights.Danger = *f.wDanger
	if err := cfg.Validate(); err != nil {
		return search.Config{}, fmt.Errorf("search config: %w", err)
	}
	return cfg, nil
}

// LogFlags collects the logging settings registered on a FlagSet.
type LogFlags struct {
	format *string
	level  *string
	source *bool
}

// BindLogFlags registers -log-format, -log-level and -log-source.
func BindLogFlags(fs *flag.FlagSet) *LogFlags {
	return &LogFlags{
		format: fs.String("log-format", String("LOG_FORMAT", "console"), "Log format: console, text or json"),
		level:  fs.String("log-level", String("LOG_LEVEL", "info"), "Log level: debug, info, warn or error"),
		source: fs.Bool("log-source", Bool("LOG_SOURCE", false), "Include source file:line in logs"),
	}
}

func (f *LogFlags) Options() logging.Options {
	return logging.Options{Format: *f.format, Level: *f.level, AddSource: *f.source}
}
