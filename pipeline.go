package timetablenetwork

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/timetable-to-network/config"
	"github.com/theoremus-urban-solutions/timetable-to-network/network"
	"github.com/theoremus-urban-solutions/timetable-to-network/pajek"
	"github.com/theoremus-urban-solutions/timetable-to-network/timetable"
)

// Run executes the full conversion: load the timetable once, build the
// network for each configured space, and write one Pajek file per weight
// mode. Space and mode names are validated up front so a bad configuration
// fails before any file is written.
func Run(cfg config.AppConfig) error {
	spaces := make([]network.Space, 0, len(cfg.Spaces))
	for _, s := range cfg.Spaces {
		space, err := network.ParseSpace(s)
		if err != nil {
			return err
		}
		spaces = append(spaces, space)
	}
	modes := make([]pajek.Mode, 0, len(cfg.Modes))
	for _, m := range cfg.Modes {
		mode, err := pajek.ParseMode(m)
		if err != nil {
			return err
		}
		modes = append(modes, mode)
	}

	table, err := timetable.LoadTable(cfg.Input.Path)
	if err != nil {
		return err
	}
	log.Printf("loaded %d timetable rows for %d trains from %s",
		table.Len(), len(table.Trains()), cfg.Input.Path)

	for _, space := range spaces {
		net, err := network.Build(table, space)
		if err != nil {
			return err
		}
		for _, mode := range modes {
			path := filepath.Join(cfg.Output.Dir, FileName(mode, space))
			if err := pajek.WriteFile(path, net, mode); err != nil {
				return fmt.Errorf("space %s: %w", space, err)
			}
			log.Printf("space of %s: %s network saved to %s (%d vertices, %d arcs)",
				space, strings.ToUpper(string(mode)), path, len(net.Vertices), len(net.Edges))
		}
	}
	return nil
}

// FileName returns the output file name for one space and weight mode,
// e.g. DSN_SpaceStations.net.
func FileName(mode pajek.Mode, space network.Space) string {
	return fmt.Sprintf("%s_Space%s.net", strings.ToUpper(string(mode)), space.Title())
}
