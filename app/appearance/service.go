package appearance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/appearance/app/enum"
	"github.com/umputun/appearance/app/store"
)

//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// ErrNoSetter is returned when no setter is registered for the requested method.
var ErrNoSetter = errors.New("no setter for method")

// Recorder keeps a journal of applied transitions.
// Defined here (consumer side) to allow different journal implementations.
type Recorder interface {
	Record(ctx context.Context, tr store.Transition) error
}

// Service reads and switches the system appearance. Preference reads and setter
// calls run on the executor, one at a time. Nothing is cached between calls.
type Service struct {
	prefs    Prefs
	executor Executor
	setters  map[enum.Method]Setter
	recorder Recorder
}

// NewService makes Service. setters maps each supported method to its implementation.
func NewService(prefs Prefs, executor Executor, setters map[enum.Method]Setter) *Service {
	return &Service{prefs: prefs, executor: executor, setters: setters}
}

// SetRecorder enables the transition journal, nil disables it.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// Current returns the system appearance. Light if the interface style is not set,
// otherwise the lowercased stored value.
func (s *Service) Current() (enum.Mode, error) {
	var mode enum.Mode
	var err error
	s.executor.Call(func() { mode, err = s.current() })
	return mode, err
}

// current reads the interface style, must run on the executor.
func (s *Service) current() (enum.Mode, error) {
	val, ok, err := s.prefs.String(InterfaceStyleKey)
	if err != nil {
		return enum.DefaultMode(), fmt.Errorf("failed to read current mode: %w", err)
	}
	if !ok {
		return enum.ModeLight, nil
	}

	mode, err := enum.ParseMode(strings.ToLower(val))
	if err != nil {
		return enum.DefaultMode(), fmt.Errorf("unexpected %s value %q: %w", InterfaceStyleKey, val, err)
	}
	return mode, nil
}

// Set applies mode with the given method. Auto flips the current system setting.
// Issued calls are not canceled, ctx scopes the journal write only.
func (s *Service) Set(ctx context.Context, mode enum.Mode, method enum.Method) error {
	setter, err := s.setter(method)
	if err != nil {
		return err
	}

	var applyErr error
	s.executor.Call(func() { applyErr = setter.Apply(mode) })
	return s.complete(ctx, nil, mode, method, applyErr)
}

// Toggle reads the current mode and toggles from it. The read and the change are
// made in one executor call, concurrent toggles don't interleave.
func (s *Service) Toggle(ctx context.Context, method enum.Method) (enum.Mode, error) {
	setter, err := s.setter(method)
	if err != nil {
		return enum.DefaultMode(), err
	}

	var from enum.Mode
	var readErr, applyErr error
	s.executor.Call(func() {
		if from, readErr = s.current(); readErr != nil || !toggleable(from) {
			return
		}
		applyErr = setter.Apply(from.Inverted())
	})
	if readErr != nil {
		return from, readErr
	}
	return s.toggled(ctx, from, method, applyErr)
}

// ToggleFrom switches dark to light and light to dark, returning the new mode.
// Auto is left alone and no call is made. On failure the mode is unchanged.
func (s *Service) ToggleFrom(ctx context.Context, mode enum.Mode, method enum.Method) (enum.Mode, error) {
	if !toggleable(mode) {
		return s.toggled(ctx, mode, method, nil)
	}

	setter, err := s.setter(method)
	if err != nil {
		return mode, err
	}

	var applyErr error
	s.executor.Call(func() { applyErr = setter.Apply(mode.Inverted()) })
	return s.toggled(ctx, mode, method, applyErr)
}

// toggled completes a toggle from mode, nothing is recorded for auto.
func (s *Service) toggled(ctx context.Context, from enum.Mode, method enum.Method, applyErr error) (enum.Mode, error) {
	if !toggleable(from) {
		log.Printf("[DEBUG] %s mode is not toggled", from)
		return from, nil
	}

	target := from.Inverted()
	if err := s.complete(ctx, &from, target, method, applyErr); err != nil {
		return from, err
	}
	return target, nil
}

func toggleable(mode enum.Mode) bool {
	return mode == enum.ModeDark || mode == enum.ModeLight
}

func (s *Service) setter(method enum.Method) (Setter, error) {
	setter, ok := s.setters[method]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoSetter, method)
	}
	return setter, nil
}

// complete journals the outcome of a single setter call and wraps its error. No retries.
func (s *Service) complete(ctx context.Context, from *enum.Mode, to enum.Mode, method enum.Method, applyErr error) error {
	s.record(ctx, from, to, method, applyErr)
	if applyErr != nil {
		return fmt.Errorf("failed to set %s mode with %s: %w", to, method, applyErr)
	}

	log.Printf("[INFO] appearance set to %s with %s", to, method)
	return nil
}

// record writes the transition to the journal if enabled.
// logs warning on failure but does not fail the change.
func (s *Service) record(ctx context.Context, from *enum.Mode, to enum.Mode, method enum.Method, applyErr error) {
	if s.recorder == nil {
		return
	}

	tr := store.Transition{From: from, To: to, Method: method}
	if applyErr != nil {
		tr.Error = applyErr.Error()
	}
	if err := s.recorder.Record(ctx, tr); err != nil {
		log.Printf("[WARN] failed to record transition to %s: %v", to, err)
	}
}
