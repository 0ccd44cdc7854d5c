package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/theoremus-urban-solutions/timetable-to-network/timetable"
)

// WriteStationsCSV writes the generated station list with coordinates as a
// semicolon-separated CSV.
func WriteStationsCSV(path string, stations []Station) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write([]string{
		"Station ID", "Station Code", "Station Name",
		"Longitude (degrees)", "Latitude (degrees)",
	}); err != nil {
		return err
	}
	for _, s := range stations {
		if err := w.Write([]string{
			strconv.Itoa(s.ID),
			s.Code,
			s.Name,
			strconv.FormatFloat(s.Coord.Lon(), 'f', -1, 64),
			strconv.FormatFloat(s.Coord.Lat(), 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteTimetableCSV writes generated timetable rows in the converter's
// input schema.
func WriteTimetableCSV(path string, rows []timetable.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write([]string{
		timetable.ColTrainNumber, timetable.ColStation,
		timetable.ColArrivalTime, timetable.ColDepartureTime,
		timetable.ColStopType,
	}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			r.TrainID, r.Station, r.Arrival, r.Departure, r.StopKind,
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
