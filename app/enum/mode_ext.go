package enum

import (
	"errors"
	"strings"
)

// ErrEmptyMode is returned by ParseModeInput for blank input.
var ErrEmptyMode = errors.New("empty mode")

// DefaultMode returns the mode used when nothing else is known. Same as the zero Mode.
func DefaultMode() Mode {
	return ModeAuto
}

// Inverted returns the opposite mode (dark↔light). Auto stays auto.
func (m Mode) Inverted() Mode {
	switch m {
	case ModeDark:
		return ModeLight
	case ModeLight:
		return ModeDark
	default:
		return ModeAuto
	}
}

// ParseModeInput parses a mode given by a user, case-insensitive and trimmed.
// Blank input is rejected, unlike ParseMode which maps "" to auto.
func ParseModeInput(v string) (Mode, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return Mode{}, ErrEmptyMode
	}
	return ParseMode(v)
}
