package timetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Required columns of the input table. Header matching is case-insensitive.
const (
	ColTrainNumber   = "Train number"
	ColStation       = "Station"
	ColArrivalTime   = "Arrival time"
	ColDepartureTime = "Departure time"
	ColStopType      = "Stop type"
)

// LoadTable reads a semicolon-separated timetable CSV from disk.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open timetable %s: %w", path, err)
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("timetable %s: %w", path, err)
	}
	return t, nil
}

// ReadTable parses a semicolon-separated timetable. The header must contain
// the five required columns; a missing column is a schema error reported
// before any row is processed. An empty table is valid and yields an empty
// Table.
func ReadTable(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.Comma = ';'
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	t := NewTable()
	if len(rec) == 0 {
		return t, nil
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	iTrain := idx(ColTrainNumber)
	iStation := idx(ColStation)
	iArr := idx(ColArrivalTime)
	iDep := idx(ColDepartureTime)
	iKind := idx(ColStopType)
	for _, c := range []struct {
		name string
		i    int
	}{
		{ColTrainNumber, iTrain},
		{ColStation, iStation},
		{ColArrivalTime, iArr},
		{ColDepartureTime, iDep},
		{ColStopType, iKind},
	} {
		if c.i < 0 {
			return nil, fmt.Errorf("missing required column %q", c.name)
		}
	}
	for _, row := range rec[1:] {
		t.Append(Row{
			TrainID:   row[iTrain],
			Station:   row[iStation],
			Arrival:   row[iArr],
			Departure: row[iDep],
			StopKind:  row[iKind],
		})
	}
	return t, nil
}
