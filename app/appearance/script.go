// Package appearance reads and switches the system light/dark appearance through
// the OS automation bridge. All calls into the bridge go through a single Executor.
package appearance

import (
	"fmt"

	"github.com/umputun/appearance/app/enum"
)

// InterfaceStyleKey is the global preference holding "Dark" when dark mode is on.
// The key is absent in light mode.
const InterfaceStyleKey = "AppleInterfaceStyle"

const scriptTemplate = `tell app "System Events" to tell appearance preferences to set dark mode to %s`

// Script returns the AppleScript statement switching dark mode for the given mode.
// Auto flips whatever is currently set, it has no fixed boolean.
func Script(mode enum.Mode) string {
	setter := "false"
	switch mode {
	case enum.ModeDark:
		setter = "true"
	case enum.ModeAuto:
		setter = "not dark mode"
	}
	return fmt.Sprintf(scriptTemplate, setter)
}
