// Package diagnostic collects structured errors, warnings and notes about an
// almanac's tables.
//
// Key capabilities:
//   - Duplicate or misplaced table reports
//   - Overlapping range warnings (first match decides at resolution time)
//   - Missing hop warnings for chains that are not fully covered
package diagnostic
