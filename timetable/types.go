package timetable

// Row is one timetable event: a train calling at, or passing through, a
// station. Arrival and Departure are wall-clock HH:MM:SS values or empty
// (the first row of a route has no arrival, the last has no departure, and
// times may be missing for pass-through rows).
type Row struct {
	TrainID   string
	Station   string
	Arrival   string
	Departure string
	StopKind  string
}

// Stop kinds as they appear in the Stop type column. Matching is
// case-insensitive throughout.
const (
	KindBegin       = "begin"
	KindPass        = "pass"
	KindStop        = "stop"
	KindEnd         = "end"
	KindServiceStop = "service_stop"
)

// Table holds a whole timetable grouped by train. Row order within a train
// is the physical route order and is preserved exactly as read; train order
// is first appearance in the file.
type Table struct {
	trainOrder []string
	routes     map[string][]Row
}

// NewTable creates an empty timetable
func NewTable() *Table {
	return &Table{routes: map[string][]Row{}}
}

// Append adds a row to its train's route, keeping file order
func (t *Table) Append(r Row) {
	if _, ok := t.routes[r.TrainID]; !ok {
		t.trainOrder = append(t.trainOrder, r.TrainID)
	}
	t.routes[r.TrainID] = append(t.routes[r.TrainID], r)
}

// Trains returns train IDs in first-appearance order
func (t *Table) Trains() []string {
	return t.trainOrder
}

// Route returns one train's rows in original order
func (t *Table) Route(trainID string) []Row {
	return t.routes[trainID]
}

// Len returns the total number of rows
func (t *Table) Len() int {
	n := 0
	for _, rows := range t.routes {
		n += len(rows)
	}
	return n
}
