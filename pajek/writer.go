package pajek

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/theoremus-urban-solutions/timetable-to-network/network"
)

// Mode selects how arc weights are rendered.
type Mode string

const (
	// ModeDSN writes the raw occurrence count as an integer weight.
	ModeDSN Mode = "dsn"
	// ModeDTN writes the reciprocal mean travel time with two decimals.
	ModeDTN Mode = "dtn"
)

// ParseMode validates a weight mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDSN, ModeDTN:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown weight mode %q, use dsn or dtn", s)
}

// Write serializes a network in the Pajek arc-list convention:
//
//	*Vertices <count>
//	<id> "<station_code>"
//	*Arcs <edge_count>
//	<src_id> <dst_id> <weight>
//
// Vertex IDs are 1..|V| in ascending lexicographic order of station code,
// and arcs are emitted sorted by (source ID, target ID), so the same
// network always serializes to identical bytes. The arc count is the number
// of distinct directed edges, not the sum of their occurrence counts.
func Write(w io.Writer, n *network.Network, mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	codes := make([]string, 0, len(n.Vertices))
	for code := range n.Vertices {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	ids := make(map[string]int, len(codes))
	for i, code := range codes {
		ids[code] = i + 1
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "*Vertices %d\n", len(codes))
	for i, code := range codes {
		fmt.Fprintf(bw, "%d %q\n", i+1, code)
	}

	keys := make([]network.EdgeKey, 0, len(n.Edges))
	for key := range n.Edges {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		if ids[keys[a].Source] != ids[keys[b].Source] {
			return ids[keys[a].Source] < ids[keys[b].Source]
		}
		return ids[keys[a].Target] < ids[keys[b].Target]
	})
	fmt.Fprintf(bw, "*Arcs %d\n", len(keys))
	for _, key := range keys {
		st := n.Edges[key]
		if mode == ModeDSN {
			fmt.Fprintf(bw, "%d %d %d\n", ids[key.Source], ids[key.Target], st.DSNWeight())
		} else {
			fmt.Fprintf(bw, "%d %d %.2f\n", ids[key.Source], ids[key.Target], st.DTNWeight())
		}
	}
	return bw.Flush()
}

// WriteFile serializes a network to a .net file on disk.
func WriteFile(path string, n *network.Network, mode Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, n, mode); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
