package domain

import (
	"fmt"
	"strings"
)

// Mode selects how a diagram is packed into its URL segment.
type Mode int

const (
	// ModeDeflate compresses the text and re-encodes it in the PlantUML alphabet.
	ModeDeflate Mode = iota
	// ModeHex writes the text as "~h" followed by its bytes in lowercase hex.
	ModeHex
	// ModeBest picks whichever of the two is shorter, preferring hex on ties.
	ModeBest
)

// Modes lists every mode in the order the CLI and the TUI present them.
var Modes = []Mode{ModeDeflate, ModeHex, ModeBest}

func (m Mode) String() string {
	switch m {
	case ModeDeflate:
		return "deflate"
	case ModeHex:
		return "hex"
	case ModeBest:
		return "best"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts deflate (alias gz), hex and best, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deflate", "gz":
		return ModeDeflate, nil
	case "hex":
		return ModeHex, nil
	case "best":
		return ModeBest, nil
	default:
		return ModeDeflate, fmt.Errorf("%w %q (expected hex|deflate|best)", ErrUnknownMode, s)
	}
}

// Next cycles through Modes.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeDeflate
}
