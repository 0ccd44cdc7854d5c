package network

import (
	"fmt"

	"github.com/theoremus-urban-solutions/timetable-to-network/timetable"
)

// Space is a transportation-space abstraction of the timetable. It fixes
// which stop kinds count as routing events and how edges are generated from
// a train's route.
type Space string

const (
	// SpaceStations keeps every event, pass-throughs included, and links
	// consecutive stations.
	SpaceStations Space = "stations"
	// SpaceStops keeps boarding-relevant events only and links consecutive
	// stops.
	SpaceStops Space = "stops"
	// SpaceChanges keeps boarding-relevant events and links every ordered
	// pair of distinct stops a train visits, modelling possible changes.
	SpaceChanges Space = "changes"
)

// ParseSpace validates a space name from configuration.
func ParseSpace(s string) (Space, error) {
	switch Space(s) {
	case SpaceStations, SpaceStops, SpaceChanges:
		return Space(s), nil
	}
	return "", fmt.Errorf("unknown space type %q", s)
}

// Title returns the capitalized space name used in output file names.
func (s Space) Title() string {
	switch s {
	case SpaceStations:
		return "Stations"
	case SpaceStops:
		return "Stops"
	case SpaceChanges:
		return "Changes"
	}
	return ""
}

// allowedKinds returns the stop kinds that survive route filtering, keyed
// by their lowercase form.
func (s Space) allowedKinds() map[string]struct{} {
	switch s {
	case SpaceStations:
		return map[string]struct{}{
			timetable.KindBegin:       {},
			timetable.KindPass:        {},
			timetable.KindStop:        {},
			timetable.KindEnd:         {},
			timetable.KindServiceStop: {},
		}
	default:
		return map[string]struct{}{
			timetable.KindBegin: {},
			timetable.KindStop:  {},
			timetable.KindEnd:   {},
		}
	}
}

// clique reports whether the space uses the all-ordered-pairs strategy
// instead of consecutive adjacency.
func (s Space) clique() bool {
	return s == SpaceChanges
}
