// Package aoc22 solves a handful of Advent of Code 2022 days on top of two
// small reusable libraries.
//
// What is in here?
//
//	gridgraph/  rectangular grids viewed as graphs: bounds, 4/8-neighborhoods, DOT export
//	bfs/        layered breadth-first search over a gridgraph with step filters and hooks
//	interval/   generic closed integer intervals and sorted disjoint interval sets
//	elevation/  day 12: fewest climbing steps across a heightmap
//	cave/       day 14: sand pouring into a rock scan
//	sensor/     day 15: beacon exclusion zones via row interval subtraction
//	tower/      day 17: falling rocks pushed by jets, with cycle skipping
//	droplet/    day 18: lava droplet surface area with an exterior flood fill
//	puzzle/     solver registry, answers, input helpers
//	cmd/aoc22   the command line front end
//
// Quick start:
//
//	go run ./cmd/aoc22 list
//	go run ./cmd/aoc22 solve 12 --input inputs/input12.txt
//	go run ./cmd/aoc22 --area-size 20 --format yaml solve 15 -i example15.txt
//	go run ./cmd/aoc22 dot -i inputs/input12.txt | dot -Tsvg > hill.svg
//
// Inputs default to <input-dir>/input<day>.txt. AOC22_INPUT_DIR and
// AOC22_WORKERS, read from the environment or a .env file, override the
// --input-dir and --workers defaults.
//
// The library packages never log and report failures as sentinel errors
// that callers match with errors.Is. An unreachable target or a missing
// gap is a (value, false) result, not an error.
package aoc22
