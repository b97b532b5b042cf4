package cave

import (
	"strings"

	"github.com/katalvlaran/aoc22/gridgraph"
)

// Cave is a vertical slice of tiles. Columns are stored shifted by offset so
// the leftmost tile the pile can reach sits at column 0.
type Cave struct {
	tiles    [][]Tile // tiles[y][x-offset]
	offset   int
	maxY     int // lowest rock row from the scan
	hasFloor bool
	grains   int
}

// New builds a cave from rock paths. The grid spans rows 0..maxY+2 and every
// column a floored pile could reach, plus one column of margin each side.
func New(paths []Path) *Cave {
	minX, maxX, maxY := Source.X, Source.X, 0
	for _, path := range paths {
		for _, p := range path {
			minX, maxX, maxY = min(minX, p.X), max(maxX, p.X), max(maxY, p.Y)
		}
	}
	floorY := maxY + 2
	left := min(minX, Source.X-floorY) - 1
	right := max(maxX, Source.X+floorY) + 1

	c := &Cave{
		tiles:  make([][]Tile, floorY+1),
		offset: left,
		maxY:   maxY,
	}
	for y := range c.tiles {
		c.tiles[y] = make([]Tile, right-left+1)
	}
	for _, path := range paths {
		for i := 1; i < len(path); i++ {
			c.drawLine(path[i-1], path[i])
		}
		if len(path) == 1 {
			c.set(path[0], Rock)
		}
	}

	return c
}

// drawLine marks every tile on the straight segment a-b as rock.
func (c *Cave) drawLine(a, b gridgraph.Point) {
	for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			c.set(gridgraph.Point{X: x, Y: y}, Rock)
		}
	}
}

// Width returns the number of stored columns.
func (c *Cave) Width() int { return len(c.tiles[0]) }

// Height returns the number of stored rows, floor row included.
func (c *Cave) Height() int { return len(c.tiles) }

// MaxY returns the lowest rock row of the scan.
func (c *Cave) MaxY() int { return c.maxY }

// Grains returns how many grains have come to rest so far.
func (c *Cave) Grains() int { return c.grains }

// HasFloor reports whether AddFloor has been called.
func (c *Cave) HasFloor() bool { return c.hasFloor }

func (c *Cave) contains(p gridgraph.Point) bool {
	x := p.X - c.offset
	return p.Y >= 0 && p.Y < len(c.tiles) && x >= 0 && x < len(c.tiles[0])
}

// At returns the tile at p. Points outside the stored grid read as Air.
func (c *Cave) At(p gridgraph.Point) Tile {
	if !c.contains(p) {
		return Air
	}
	return c.tiles[p.Y][p.X-c.offset]
}

func (c *Cave) set(p gridgraph.Point, t Tile) {
	c.tiles[p.Y][p.X-c.offset] = t
}

// Clone returns an independent copy.
func (c *Cave) Clone() *Cave {
	out := *c
	out.tiles = make([][]Tile, len(c.tiles))
	for y, row := range c.tiles {
		out.tiles[y] = append([]Tile(nil), row...)
	}

	return &out
}

// AddFloor turns row maxY+2 into rock across the whole grid. Calling it
// again is a no-op.
func (c *Cave) AddFloor() {
	if c.hasFloor {
		return
	}
	floor := c.tiles[len(c.tiles)-1]
	for x := range floor {
		floor[x] = Rock
	}
	c.hasFloor = true
}

// fallOrder lists the moves a grain tries, in priority order.
var fallOrder = [...]int{0, -1, 1}

// Drop releases one grain at Source and follows it until it rests or falls
// past the lowest rock. A covered source drops nothing.
func (c *Cave) Drop() Outcome {
	if c.At(Source) != Air {
		return Blocked
	}
	// Without a floor, a grain below maxY has nothing left to land on.
	abyss := len(c.tiles) - 1
	p := Source
	for {
		if p.Y >= abyss {
			return Abyss
		}
		moved := false
		for _, dx := range fallOrder {
			next := p.Add(dx, 1)
			if c.contains(next) && c.At(next) == Air {
				p, moved = next, true
				break
			}
		}
		if !moved {
			c.set(p, Sand)
			c.grains++
			return Rest
		}
	}
}

// Fill drops grains until one falls into the abyss or the source is blocked
// and returns how many came to rest during the call.
func (c *Cave) Fill() int {
	n := 0
	for c.Drop() == Rest {
		n++
	}

	return n
}

// String draws the non-empty columns, one row per line, with '+' at the
// source while it is still open. Rows stop at the lowest rock, or at the
// floor once one is added.
func (c *Cave) String() string {
	lo, hi := c.Width(), -1
	for _, row := range c.tiles {
		for x, t := range row {
			if t != Air {
				lo, hi = min(lo, x), max(hi, x)
			}
		}
	}
	src := Source.X - c.offset
	lo, hi = min(lo, src), max(hi, src)

	var b strings.Builder
	for y, row := range c.tiles {
		if !c.hasFloor && y > c.maxY {
			break
		}
		for x := lo; x <= hi; x++ {
			if y == Source.Y && x == src && row[x] == Air {
				b.WriteByte('+')
				continue
			}
			b.WriteString(row[x].String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
