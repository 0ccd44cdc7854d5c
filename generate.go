package timetablenetwork

import (
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/theoremus-urban-solutions/timetable-to-network/config"
	"github.com/theoremus-urban-solutions/timetable-to-network/generator"
)

// Output names of the generator, matching the converter's default input.
const (
	StationsCSV  = "RandomStationCoordinates.csv"
	TimetableCSV = "RandomTimetable.csv"
)

// Generate produces a random station list and timetable and writes both
// CSVs into the output directory. A zero seed draws one from the clock;
// any other seed makes the run reproducible.
func Generate(cfg config.AppConfig) error {
	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := generator.New(cfg.Generator, rand.New(rand.NewSource(seed)))

	stations := g.Stations(cfg.Generator.Stations)
	trains, err := g.Trains(cfg.Generator.Trains)
	if err != nil {
		return err
	}
	rows, err := g.Timetable(stations, trains)
	if err != nil {
		return err
	}

	stationsPath := filepath.Join(cfg.Output.Dir, StationsCSV)
	if err := generator.WriteStationsCSV(stationsPath, stations); err != nil {
		return err
	}
	log.Printf("generated %d station coordinates saved to %s", len(stations), stationsPath)

	timetablePath := filepath.Join(cfg.Output.Dir, TimetableCSV)
	if err := generator.WriteTimetableCSV(timetablePath, rows); err != nil {
		return err
	}
	log.Printf("generated timetable with %d rows for %d trains saved to %s",
		len(rows), len(trains), timetablePath)
	return nil
}
