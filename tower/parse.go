package tower

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads the jet pattern. Whitespace, including line breaks, is ignored.
func Parse(r io.Reader) ([]Jet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tower: reading input: %w", err)
	}

	jets := make([]Jet, 0, len(b))
	for i, c := range string(b) {
		switch {
		case c == '<':
			jets = append(jets, Left)
		case c == '>':
			jets = append(jets, Right)
		case unicode.IsSpace(c):
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrMalformedInput, c, i)
		}
	}
	if len(jets) == 0 {
		return nil, ErrNoJets
	}

	return jets, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Jet, error) {
	return Parse(strings.NewReader(s))
}
