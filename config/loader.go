package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing config file is not an error: every setting has a
// default, so the tool runs unconfigured.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		Config = withDefaults(AppConfig{})
		return nil
	}
	cfg, err := parseAppConfig(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

func parseAppConfig(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return withDefaults(cfg), nil
}

func withDefaults(cfg AppConfig) AppConfig {
	if cfg.Input.Path == "" {
		cfg.Input.Path = "RandomTimetable.csv"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if len(cfg.Spaces) == 0 {
		cfg.Spaces = []string{"stations", "stops", "changes"}
	}
	if len(cfg.Modes) == 0 {
		cfg.Modes = []string{"dsn", "dtn"}
	}
	g := &cfg.Generator
	if g.Stations == 0 {
		g.Stations = 10
	}
	if g.Trains == 0 {
		g.Trains = 5
	}
	if len(g.DepartureWindow) == 0 {
		g.DepartureWindow = []string{"05:00:00", "12:00:00"}
	}
	if g.StopProbability == 0 {
		g.StopProbability = 0.7
	}
	if g.MinStopMinutes == 0 {
		g.MinStopMinutes = 1
	}
	if g.MaxStopMinutes == 0 {
		g.MaxStopMinutes = 3
	}
	if len(g.LatRange) == 0 {
		g.LatRange = []float64{10, 50}
	}
	if len(g.LonRange) == 0 {
		g.LonRange = []float64{10, 50}
	}
	return cfg
}
