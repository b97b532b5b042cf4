// Package sensor solves the beacon exclusion puzzle. Every sensor knows the
// position of its closest beacon, so no other beacon can lie within that
// Manhattan distance (its usable range). The covered area of one sensor is a
// diamond; on a single row it projects to one closed interval.
//
// Rows are handled with package interval: start from the full-width row and
// subtract every sensor's projection, in input order. What remains is the
// uncovered part of that row.
//
//   - CoveredInRow counts positions on one row where a beacon cannot be.
//   - FindGap scans rows 0..=areaSize in order and returns the first
//     uncovered position, the distress beacon.
//   - FindGapParallel splits the rows into chunks scanned concurrently and
//     still returns the lowest-row gap.
package sensor
