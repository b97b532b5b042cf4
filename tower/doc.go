// Package tower simulates rocks falling into a chamber seven units wide.
//
// Five rock shapes appear in a fixed cycle. Each rock spawns with its left
// edge two units from the left wall and its bottom three units above the
// highest rock. It is then pushed one unit by the next jet of hot gas and
// falls one unit, alternately, until falling would make it overlap the floor
// or a settled rock. The jet pattern repeats when exhausted.
//
// Rows are stored as 7-bit masks, bit x set when column x holds rock.
// HeightAfter detects when the chamber state repeats and skips whole cycles,
// so a trillion rocks cost only a few thousand simulated drops.
package tower
