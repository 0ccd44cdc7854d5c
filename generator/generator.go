package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/timetable-to-network/config"
	"github.com/theoremus-urban-solutions/timetable-to-network/timetable"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const digits = "0123456789"

// Station is a generated station with a synthetic location.
type Station struct {
	ID    int
	Code  string
	Name  string
	Coord orb.Point // lon, lat
}

// Train is a generated service window: code plus first departure and last
// arrival as HH:MM:SS.
type Train struct {
	Code           string
	FirstDeparture string
	LastArrival    string
}

// Generator produces random timetable fixtures. All randomness comes from
// the injected source, so a seeded generator is fully deterministic.
type Generator struct {
	rng *rand.Rand
	cfg config.GeneratorConfig
}

// New creates a generator drawing from rng with the given parameters.
func New(cfg config.GeneratorConfig, rng *rand.Rand) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// Stations generates n stations with unique 3-letter codes, shuffled unique
// IDs, and coordinates uniform within the configured lat/lon ranges.
func (g *Generator) Stations(n int) []Station {
	seen := map[string]struct{}{}
	ids := g.rng.Perm(n)
	out := make([]Station, 0, n)
	for i := 0; i < n; i++ {
		code := g.stationCode(seen)
		out = append(out, Station{
			ID:   ids[i],
			Code: code,
			Name: code,
			Coord: orb.Point{
				g.uniform(g.cfg.LonRange[0], g.cfg.LonRange[1]),
				g.uniform(g.cfg.LatRange[0], g.cfg.LatRange[1]),
			},
		})
	}
	return out
}

func (g *Generator) stationCode(seen map[string]struct{}) string {
	for {
		b := make([]byte, 3)
		for i := range b {
			b[i] = letters[g.rng.Intn(len(letters))]
		}
		code := string(b)
		if _, ok := seen[code]; !ok {
			seen[code] = struct{}{}
			return code
		}
	}
}

// Trains generates n trains with unique codes ('R' or 'E' plus two digits),
// a first departure uniform within the configured window, and a total
// travel time of one to two hours.
func (g *Generator) Trains(n int) ([]Train, error) {
	depStart, err := timetable.ParseClock(g.cfg.DepartureWindow[0])
	if err != nil {
		return nil, fmt.Errorf("departure window: %w", err)
	}
	depEnd, err := timetable.ParseClock(g.cfg.DepartureWindow[1])
	if err != nil {
		return nil, fmt.Errorf("departure window: %w", err)
	}
	rangeMinutes := (depEnd - depStart) / 60
	if rangeMinutes <= 0 {
		return nil, fmt.Errorf("departure window %s..%s must span at least one minute",
			g.cfg.DepartureWindow[0], g.cfg.DepartureWindow[1])
	}
	seen := map[string]struct{}{}
	out := make([]Train, 0, n)
	for i := 0; i < n; i++ {
		dep := depStart + g.rng.Intn(rangeMinutes)*60
		travelMinutes := 60 + g.rng.Intn(60)
		out = append(out, Train{
			Code:           g.trainCode(seen),
			FirstDeparture: timetable.FormatClock(dep),
			LastArrival:    timetable.FormatClock(dep + travelMinutes*60),
		})
	}
	return out, nil
}

func (g *Generator) trainCode(seen map[string]struct{}) string {
	prefix := "R"
	if g.rng.Intn(2) == 1 {
		prefix = "E"
	}
	for {
		code := prefix +
			string(digits[g.rng.Intn(len(digits))]) +
			string(digits[g.rng.Intn(len(digits))])
		if _, ok := seen[code]; !ok {
			seen[code] = struct{}{}
			return code
		}
	}
}

// Timetable generates the per-train event rows. Each train visits a random
// subset of at least two stations in random order: the first row is a begin
// (departure only), the last an end (arrival only), and each intermediate
// station is a stop with a short dwell with the configured probability,
// otherwise a pass with departure equal to arrival. Intermediate arrival
// offsets are uniform over the train's travel window, in travel order.
func (g *Generator) Timetable(stations []Station, trains []Train) ([]timetable.Row, error) {
	if len(stations) < 2 {
		return nil, fmt.Errorf("need at least 2 stations, have %d", len(stations))
	}
	var rows []timetable.Row
	for _, tr := range trains {
		dep, err := timetable.ParseClock(tr.FirstDeparture)
		if err != nil {
			return nil, fmt.Errorf("train %s: %w", tr.Code, err)
		}
		arr, err := timetable.ParseClock(tr.LastArrival)
		if err != nil {
			return nil, fmt.Errorf("train %s: %w", tr.Code, err)
		}
		total := arr - dep

		nStops := 2 + g.rng.Intn(len(stations)-1)
		route := g.rng.Perm(len(stations))[:nStops]

		offsets := make([]float64, 0, nStops)
		offsets = append(offsets, 0)
		if nStops > 2 {
			mids := make([]float64, nStops-2)
			for i := range mids {
				mids[i] = g.uniform(0, float64(total))
			}
			sort.Float64s(mids)
			offsets = append(offsets, mids...)
		}
		offsets = append(offsets, float64(total))

		rows = append(rows, timetable.Row{
			TrainID:   tr.Code,
			Station:   stations[route[0]].Code,
			Departure: tr.FirstDeparture,
			StopKind:  timetable.KindBegin,
		})
		for i := 1; i < nStops-1; i++ {
			arrival := dep + int(offsets[i])
			dwell := 0
			kind := timetable.KindPass
			if g.rng.Float64() < g.cfg.StopProbability {
				kind = timetable.KindStop
				span := g.cfg.MaxStopMinutes - g.cfg.MinStopMinutes + 1
				if span < 1 {
					span = 1
				}
				dwell = (g.cfg.MinStopMinutes + g.rng.Intn(span)) * 60
			}
			rows = append(rows, timetable.Row{
				TrainID:   tr.Code,
				Station:   stations[route[i]].Code,
				Arrival:   timetable.FormatClock(arrival),
				Departure: timetable.FormatClock(arrival + dwell),
				StopKind:  kind,
			})
		}
		rows = append(rows, timetable.Row{
			TrainID:  tr.Code,
			Station:  stations[route[nStops-1]].Code,
			Arrival:  tr.LastArrival,
			StopKind: timetable.KindEnd,
		})
	}
	return rows, nil
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
