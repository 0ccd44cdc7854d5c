package network

import (
	"strings"

	"github.com/theoremus-urban-solutions/timetable-to-network/timetable"
)

// Network is the aggregated directed weighted graph for one space. Vertices
// are trimmed station codes; edge statistics are additive across trains, so
// the result does not depend on train iteration order.
type Network struct {
	Vertices map[string]struct{}
	Edges    map[EdgeKey]*EdgeStats
}

// Build constructs the directed network for one space from a timetable.
// Each train contributes edges independently: consecutive pairs of its
// filtered route for the stations and stops spaces, or every ordered pair
// of its deduplicated stops for the changes space.
func Build(t *timetable.Table, space Space) (*Network, error) {
	if _, err := ParseSpace(string(space)); err != nil {
		return nil, err
	}
	allowed := space.allowedKinds()
	n := &Network{
		Vertices: map[string]struct{}{},
		Edges:    map[EdgeKey]*EdgeStats{},
	}
	for _, train := range t.Trains() {
		rows := filterRoute(t.Route(train), allowed)
		if space.clique() {
			rows = dedupeStops(rows)
		}
		for _, r := range rows {
			n.Vertices[strings.TrimSpace(r.Station)] = struct{}{}
		}
		if space.clique() {
			// Every ordered pair (i, j), i < j, in travel order. A train
			// with n distinct stops contributes n(n-1)/2 edges and never a
			// reverse edge.
			for i := 0; i < len(rows); i++ {
				for j := i + 1; j < len(rows); j++ {
					n.record(rows[i], rows[j])
				}
			}
		} else {
			for i := 0; i+1 < len(rows); i++ {
				n.record(rows[i], rows[i+1])
			}
		}
	}
	return n, nil
}

// filterRoute keeps the rows whose stop kind is allowed for the space,
// preserving route order. Matching is case-insensitive.
func filterRoute(rows []timetable.Row, allowed map[string]struct{}) []timetable.Row {
	out := make([]timetable.Row, 0, len(rows))
	for _, r := range rows {
		if _, ok := allowed[strings.ToLower(r.StopKind)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// dedupeStops drops repeated visits to the same physical station within one
// train's route, keeping first occurrences in travel order. Stations are
// matched by trimmed, uppercased code; the kept row retains its original
// spelling.
func dedupeStops(rows []timetable.Row) []timetable.Row {
	seen := map[string]struct{}{}
	out := make([]timetable.Row, 0, len(rows))
	for _, r := range rows {
		norm := strings.ToUpper(strings.TrimSpace(r.Station))
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, r)
	}
	return out
}

// record counts one (train, pair) occurrence for the directed edge from src
// to tgt and, when both times are present and parseable, one travel-time
// sample. Negative differences (arrival numerically before departure, e.g.
// across midnight) are discarded; times are date-free.
func (n *Network) record(src, tgt timetable.Row) {
	key := EdgeKey{
		Source: strings.TrimSpace(src.Station),
		Target: strings.TrimSpace(tgt.Station),
	}
	st := n.Edges[key]
	if st == nil {
		st = &EdgeStats{}
		n.Edges[key] = st
	}
	st.DSN++
	if src.Departure == "" || tgt.Arrival == "" {
		return
	}
	dep, err := timetable.ParseClock(src.Departure)
	if err != nil {
		return
	}
	arr, err := timetable.ParseClock(tgt.Arrival)
	if err != nil {
		return
	}
	diff := arr - dep
	if diff < 0 {
		return
	}
	st.addSample(float64(diff))
}
