package main

import (
	"flag"
	"strings"

	lib "github.com/theoremus-urban-solutions/timetable-to-network"
	"github.com/theoremus-urban-solutions/timetable-to-network/config"
)

func main() {
	mode := flag.String("mode", "convert", "convert|generate")
	input := flag.String("input", "", "timetable CSV path (overrides config)")
	out := flag.String("out", "", "output directory (overrides config)")
	spaces := flag.String("spaces", "", "comma-separated spaces: stations,stops,changes (overrides config)")
	modes := flag.String("modes", "", "comma-separated weight modes: dsn,dtn (overrides config)")
	seed := flag.Int64("seed", 0, "generator seed, 0 = time-based (overrides config)")
	stations := flag.Int("stations", 0, "number of stations to generate (overrides config)")
	trains := flag.Int("trains", 0, "number of trains to generate (overrides config)")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	cfg := config.Config
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *out != "" {
		cfg.Output.Dir = *out
	}
	if *spaces != "" {
		cfg.Spaces = splitList(*spaces)
	}
	if *modes != "" {
		cfg.Modes = splitList(*modes)
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}
	if *stations > 0 {
		cfg.Generator.Stations = *stations
	}
	if *trains > 0 {
		cfg.Generator.Trains = *trains
	}

	switch *mode {
	case "convert":
		if err := lib.Run(cfg); err != nil {
			panic(err)
		}
	case "generate":
		if err := lib.Generate(cfg); err != nil {
			panic(err)
		}
	default:
		panic("unknown mode")
	}
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(strings.ToLower(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
