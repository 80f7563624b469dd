// Package almanac holds the remapping tables between categories.
//
// A Rule is a (dest, source, length) triple: source magnitudes in
// [source, source+length) map to dest + (m - source). A table is the list of
// rules for one category pair; rules may come in any order and may overlap,
// the first rule containing a magnitude wins and uncovered magnitudes map to
// themselves.
//
// Tables is keyed by category pair, the way a producer reads them. FindTable
// scans it by destination category. Index re-keys the same tables by a single
// category so lookups are direct and a second table for the same category is
// rejected when the index is built.
package almanac
