package tower

import "fmt"

// profileRows is how many top rows identify a chamber state. Rocks never
// fall deeper than this below the top on puzzle inputs.
const profileRows = 48

// state is what decides the future of the simulation: which rock and jet
// come next and the shape of the top of the pile.
type state struct {
	shape, jet int
	top        [profileRows]uint8
}

type snapshot struct {
	rocks, height int
}

func (t *Tower) state() state {
	st := state{shape: t.rocks % len(shapes), jet: t.jet}
	copy(st.top[:], t.rows[len(t.rows)-profileRows:])

	return st
}

// HeightAfter returns the tower height after n rocks. Once a state repeats,
// whole cycles are skipped and only the remainder is simulated.
func HeightAfter(jets []Jet, n int64) (int64, error) {
	if len(jets) == 0 {
		return 0, ErrNoJets
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	t := New(jets)
	seen := make(map[state]snapshot)
	for int64(t.rocks) < n {
		if len(t.rows) >= profileRows {
			st := t.state()
			if prev, ok := seen[st]; ok {
				cycleRocks := int64(t.rocks - prev.rocks)
				cycleHeight := int64(t.Height() - prev.height)
				remaining := n - int64(t.rocks)
				skipped := remaining / cycleRocks
				t.Simulate(int(remaining % cycleRocks))

				return int64(t.Height()) + skipped*cycleHeight, nil
			}
			seen[st] = snapshot{rocks: t.rocks, height: t.Height()}
		}
		t.Drop()
	}

	return int64(t.Height()), nil
}
