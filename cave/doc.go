// Package cave simulates sand pouring into a cave slice. Rock paths are read
// from the scan; sand enters one grain at a time at (500,0) and falls down,
// then down-left, then down-right, until it rests, drops into the abyss
// below the lowest rock, or finds the source itself covered.
//
// Part 1 counts grains at rest before the first grain falls into the abyss.
// Part 2 adds an infinite floor two rows under the lowest rock and counts
// grains until the source is blocked. The grid is sized up front so the
// full pile always fits: with a floor at depth f the pile spans source±f.
package cave
