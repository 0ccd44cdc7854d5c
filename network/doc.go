/*
Package network builds directed weighted graphs from timetables.

Three transportation-space abstractions of the same timetable are supported:

  - stations: every event counts, edges link consecutive stations of each
    train's route.
  - stops: only begin/stop/end events count, edges link consecutive stops.
  - changes: only begin/stop/end events count; each train's distinct stops
    form a full ordered clique, one edge per ordered pair in travel order.

Every edge accumulates a raw occurrence count (DSN) and the sum and count of
valid travel-time samples, from which the reciprocal-mean-travel-time weight
(DTN) is derived at serialization time. Aggregation is a commutative fold:
the result is determined by the multiset of contributing (train, pair)
events, not by iteration order.
*/
package network
