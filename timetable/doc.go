/*
Package timetable provides the input schema and loading for event-level
train timetables.

A timetable is a semicolon-separated table with one row per station visit:

	Train number;Station;Arrival time;Departure time;Stop type
	R42;AAA;;05:00:00;begin
	R42;BBB;05:10:00;05:12:00;stop
	R42;CCC;05:30:00;;end

Row order within a train is the physical route order and is the only
ordering signal available: arrival/departure times may be missing, so the
loader never reorders rows. Times are date-free wall-clock values.
*/
package timetable
