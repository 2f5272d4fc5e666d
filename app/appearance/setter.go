package appearance

import (
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/appearance/app/enum"
)

//go:generate moq -out mocks/setter.go -pkg mocks -skip-ensure -fmt goimports . Setter
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine

// DefaultInterpreter is the standard location of the AppleScript interpreter.
const DefaultInterpreter = "/usr/bin/osascript"

// keys of the error dictionary reported by the scripting engine
const (
	ErrorMessageKey = "NSAppleScriptErrorMessage"
	ErrorNumberKey  = "NSAppleScriptErrorNumber"
)

// Setter applies a mode to the system appearance.
type Setter interface {
	Apply(mode enum.Mode) error
}

// Engine compiles and runs scripts in-process.
// ok is false if the source can't be compiled. info is nil on success,
// otherwise it holds the engine error dictionary.
type Engine interface {
	Execute(source string) (info map[string]string, ok bool)
}

// ScriptError is the failure reported by the scripting engine.
type ScriptError struct {
	Message string
	Number  string
}

func (e *ScriptError) Error() string {
	if e.Number == "" {
		return "script error: " + e.Message
	}
	return fmt.Sprintf("script error %s: %s", e.Number, e.Message)
}

// CommandSetter runs the script with the external interpreter process.
type CommandSetter struct {
	runner      Runner
	interpreter string
}

// NewCommandSetter makes CommandSetter. Empty interpreter means DefaultInterpreter.
func NewCommandSetter(runner Runner, interpreter string) *CommandSetter {
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}
	return &CommandSetter{runner: runner, interpreter: interpreter}
}

// Apply starts the interpreter with the generated script and waits for it to exit.
func (c *CommandSetter) Apply(mode enum.Mode) error {
	script := Script(mode)
	log.Printf("[DEBUG] %s -e %q", c.interpreter, script)
	if err := c.runner.Run(c.interpreter, "-e", script); err != nil {
		return fmt.Errorf("failed to run interpreter: %w", err)
	}
	return nil
}

// EventSetter runs the script with the in-process engine.
type EventSetter struct {
	engine Engine
}

// NewEventSetter makes EventSetter.
func NewEventSetter(engine Engine) *EventSetter {
	return &EventSetter{engine: engine}
}

// Apply executes the generated script. Panics if the engine rejects the source,
// the script is well formed by construction.
func (e *EventSetter) Apply(mode enum.Mode) error {
	source := Script(mode)
	log.Printf("[DEBUG] execute %q", source)
	info, ok := e.engine.Execute(source)
	if !ok {
		panic(fmt.Sprintf("invalid source for script %q", source))
	}
	if info != nil {
		return &ScriptError{Message: info[ErrorMessageKey], Number: info[ErrorNumberKey]}
	}
	return nil
}
