//go:build !darwin || !cgo

package appearance

import "runtime"

// unavailableEngine reports every execution as failed, there is no in-process
// AppleScript outside of darwin cgo builds.
type unavailableEngine struct{}

// NewEngine returns the in-process scripting engine of the platform.
func NewEngine() Engine {
	return unavailableEngine{}
}

func (unavailableEngine) Execute(string) (map[string]string, bool) {
	return map[string]string{
		ErrorMessageKey: "in-process scripting engine is not available on " + runtime.GOOS,
	}, true
}
