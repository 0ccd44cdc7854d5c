package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig(t *testing.T) {
	t.Run("empty config gets full defaults", func(t *testing.T) {
		cfg, err := parseAppConfig([]byte(""))
		require.NoError(t, err)

		assert.Equal(t, "RandomTimetable.csv", cfg.Input.Path)
		assert.Equal(t, ".", cfg.Output.Dir)
		assert.Equal(t, []string{"stations", "stops", "changes"}, cfg.Spaces)
		assert.Equal(t, []string{"dsn", "dtn"}, cfg.Modes)
		assert.Equal(t, 10, cfg.Generator.Stations)
		assert.Equal(t, 5, cfg.Generator.Trains)
		assert.Equal(t, []string{"05:00:00", "12:00:00"}, cfg.Generator.DepartureWindow)
		assert.Equal(t, 0.7, cfg.Generator.StopProbability)
	})

	t.Run("explicit values survive defaulting", func(t *testing.T) {
		in := `
input:
  path: trains.csv
output:
  dir: out
spaces: [stops]
modes: [dsn]
generator:
  stations: 25
  seed: 42
`
		cfg, err := parseAppConfig([]byte(in))
		require.NoError(t, err)

		assert.Equal(t, "trains.csv", cfg.Input.Path)
		assert.Equal(t, "out", cfg.Output.Dir)
		assert.Equal(t, []string{"stops"}, cfg.Spaces)
		assert.Equal(t, []string{"dsn"}, cfg.Modes)
		assert.Equal(t, 25, cfg.Generator.Stations)
		assert.Equal(t, int64(42), cfg.Generator.Seed)
		// untouched generator fields still default
		assert.Equal(t, 5, cfg.Generator.Trains)
	})

	t.Run("unknown space name fails validation", func(t *testing.T) {
		_, err := parseAppConfig([]byte("spaces: [stations, lines]"))
		assert.Error(t, err)
	})

	t.Run("unknown mode name fails validation", func(t *testing.T) {
		_, err := parseAppConfig([]byte("modes: [dsn, mean]"))
		assert.Error(t, err)
	})

	t.Run("stop probability outside 0..1 fails validation", func(t *testing.T) {
		_, err := parseAppConfig([]byte("generator:\n  stopProbability: 1.5"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		_, err := parseAppConfig([]byte("spaces: ["))
		assert.Error(t, err)
	})
}
