package tower

import (
	"strings"
)

// Tower is the chamber with the rocks that have come to rest.
type Tower struct {
	rows  []uint8 // rows[0] is the bottom row
	jets  []Jet
	jet   int // next jet to apply
	rocks int // rocks dropped so far
}

// New returns an empty chamber driven by jets. jets must not be empty.
func New(jets []Jet) *Tower {
	return &Tower{jets: jets}
}

// Height returns the height of the highest settled rock.
func (t *Tower) Height() int { return len(t.rows) }

// Rocks returns how many rocks have been dropped.
func (t *Tower) Rocks() int { return t.rocks }

// collides reports whether s placed with its bottom row at y overlaps the
// floor or a settled rock.
func (t *Tower) collides(s shape, y int) bool {
	if y < 0 {
		return true
	}
	for i, r := range s {
		if y+i < len(t.rows) && t.rows[y+i]&r != 0 {
			return true
		}
	}

	return false
}

// Drop spawns the next rock and lets it fall until it rests.
func (t *Tower) Drop() {
	s := shapes[t.rocks%len(shapes)]
	y := len(t.rows) + 3
	for {
		j := t.jets[t.jet]
		t.jet = (t.jet + 1) % len(t.jets)
		if moved, ok := s.push(j); ok && !t.collides(moved, y) {
			s = moved
		}
		if t.collides(s, y-1) {
			break
		}
		y--
	}

	for i, r := range s {
		for y+i >= len(t.rows) {
			t.rows = append(t.rows, 0)
		}
		t.rows[y+i] |= r
	}
	t.rocks++
}

// Simulate drops n more rocks and returns the resulting height.
func (t *Tower) Simulate(n int) int {
	for i := 0; i < n; i++ {
		t.Drop()
	}

	return t.Height()
}

// String draws the chamber top row first, walls as '|' and the floor as
// "+-------+".
func (t *Tower) String() string {
	var b strings.Builder
	for y := len(t.rows) - 1; y >= 0; y-- {
		b.WriteByte('|')
		for x := 0; x < Width; x++ {
			if t.rows[y]&(1<<x) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", Width) + "+\n")

	return b.String()
}
