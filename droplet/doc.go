// Package droplet measures the surface of a lava droplet scanned as unit
// cubes on an integer lattice.
//
// SurfaceArea counts every cube face not shared with another cube, pockets
// of trapped air included. ExteriorSurfaceArea floods the air around the
// droplet, starting from a corner of its bounding box grown by one, and
// counts only the faces that flood reaches.
package droplet
