package network

// EdgeKey identifies a directed edge. The pair is ordered: (A,B) and (B,A)
// are distinct edges.
type EdgeKey struct {
	Source string
	Target string
}

// EdgeStats accumulates the contributions of every train occurrence to one
// directed edge. DSN counts every occurrence; DTSum/DTCount only cover
// occurrences where a valid travel time could be computed, so DTCount is
// never larger than DSN.
type EdgeStats struct {
	DSN     int
	DTSum   float64 // seconds
	DTCount int
}

// addSample records one valid travel-time observation in seconds.
func (e *EdgeStats) addSample(seconds float64) {
	e.DTSum += seconds
	e.DTCount++
}

// MeanMinutes returns the mean travel time in minutes, or 0 when no valid
// samples were observed.
func (e *EdgeStats) MeanMinutes() float64 {
	if e.DTCount == 0 {
		return 0
	}
	return e.DTSum / float64(e.DTCount) / 60
}

// DSNWeight is the raw occurrence count weight.
func (e *EdgeStats) DSNWeight() int {
	return e.DSN
}

// DTNWeight is the reciprocal mean travel time in inverse minutes. Higher
// means faster to traverse; edges without a computable mean weigh 0.
func (e *EdgeStats) DTNWeight() float64 {
	mean := e.MeanMinutes()
	if mean > 0 {
		return 1 / mean
	}
	return 0
}
