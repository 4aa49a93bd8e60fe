package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/snekmax/rules"
	"github.com/brensch/snekmax/search"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SNEKMAX_NAME", "snek")
	t.Setenv("SNEKMAX_COUNT", "7")
	t.Setenv("SNEKMAX_BAD", "seven")
	t.Setenv("SNEKMAX_RATIO", "0.25")
	t.Setenv("SNEKMAX_WAIT", "150ms")
	t.Setenv("SNEKMAX_ON", "yes")

	assert.Equal(t, "snek", String("NAME", "x"))
	assert.Equal(t, "x", String("MISSING", "x"))
	assert.Equal(t, 7, Int("COUNT", 1))
	assert.Equal(t, 1, Int("BAD", 1))
	assert.Equal(t, 0.25, Float("RATIO", 1))
	assert.Equal(t, 150*time.Millisecond, Duration("WAIT", time.Second))
	assert.True(t, Bool("ON", false))
	assert.False(t, Bool("MISSING", false))
}

func TestSearchFlags_Defaults(t *testing.T) {
	fs := newFlagSet()
	sf := BindSearchFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := sf.Config()
	require.NoError(t, err)
	assert.Equal(t, search.DefaultConfig(), cfg)
}

func TestSearchFlags_EnvAndFlags(t *testing.T) {
	t.Setenv("SNEKMAX_DEPTH", "5")
	t.Setenv("SNEKMAX_BODY", "two-segment")

	fs := newFlagSet()
	sf := BindSearchFlags(fs)
	require.NoError(t, fs.Parse([]string{"-w-food", "4"}))

	cfg, err := sf.Config()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Depth)
	assert.Equal(t, rules.BodyTwoSegment, cfg.Body)
	assert.Equal(t, 4.0, cfg.Weights.Food)
	assert.Equal(t, -5.0, cfg.Weights.Danger)
}

func TestSearchFlags_Invalid(t *testing.T) {
	fs := newFlagSet()
	sf := BindSearchFlags(fs)
	require.NoError(t, fs.Parse([]string{"-depth", "-2"}))
	_, err := sf.Config()
	require.Error(t, err)

	fs = newFlagSet()
	sf = BindSearchFlags(fs)
	require.NoError(t, fs.Parse([]string{"-body", "coil"}))
	_, err = sf.Config()
	require.Error(t, err)
}

func TestLogFlags(t *testing.T) {
	fs := newFlagSet()
	lf := BindLogFlags(fs)
	require.NoError(t, fs.Parse([]string{"-log-format", "json", "-log-level", "debug"}))
	opts := lf.Options()
	assert.Equal(t, "json", opts.Format)
	assert.Equal(t, "debug", opts.Level)
	assert.False(t, opts.AddSource)
}
