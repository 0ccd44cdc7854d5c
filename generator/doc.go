// Package generator produces randomized timetable fixtures: stations with
// synthetic coordinates, train codes with service windows, and per-train
// event rows in the converter's input schema. All randomness flows through
// an injected rand source, so seeded runs are reproducible.
package generator
