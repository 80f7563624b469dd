// Package engine resolves category values through an almanac's tables.
//
// ResolveHop is the atomic step: a value tagged C is looked up by the table
// whose destination is C, and the first rule whose destination window holds
// the magnitude recovers the source magnitude in C's predecessor. Uncovered
// magnitudes pass through unchanged. ResolveForward is the same step in the
// seed-to-location direction.
//
// Walk and Trace repeat hops until a target category is reached, always
// taking exactly as many hops as the chain distance between the two.
// ResolveSeeds walks many seeds concurrently; the tables are read-only after
// New returns, so no locking is involved. ResolveIntervals walks whole seed
// ranges at once by splitting intervals on rule boundaries and merging the
// results at every hop.
package engine
