package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/appearance/app/appearance"
	"github.com/umputun/appearance/app/enum"
	"github.com/umputun/appearance/app/server"
	"github.com/umputun/appearance/app/store"
)

// SharedOptions contains options shared between all commands
type SharedOptions struct {
	Method    string `short:"m" long:"method" env:"APPEARANCE_METHOD" default:"command" choice:"command" choice:"event" description:"how to apply the change"`
	Osascript string `long:"osascript" env:"APPEARANCE_OSASCRIPT" default:"/usr/bin/osascript" description:"script interpreter for command method"`
	Journal   string `short:"j" long:"journal" env:"APPEARANCE_JOURNAL" description:"transition journal database URL (sqlite file or postgres://...)"`
	Debug     bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	// overrides for tests, system defaults used when nil
	prefs    appearance.Prefs
	executor appearance.Executor
	setters  map[enum.Method]appearance.Setter
	out      io.Writer
}

// method returns the parsed --method value
func (o *SharedOptions) method() (enum.Method, error) {
	m, err := enum.ParseMethod(strings.ToLower(o.Method))
	if err != nil {
		return m, fmt.Errorf("bad method: %w", err)
	}
	return m, nil
}

// service makes appearance service and opens the journal if configured.
// The returned func closes the journal.
func (o *SharedOptions) service() (*appearance.Service, *store.Store, func(), error) {
	prefs := o.prefs
	if prefs == nil {
		prefs = appearance.NewDefaults(appearance.ExecRunner{})
	}
	executor := o.executor
	if executor == nil {
		executor = appearance.MainThread{}
	}
	setters := o.setters
	if setters == nil {
		setters = map[enum.Method]appearance.Setter{
			enum.MethodCommand: appearance.NewCommandSetter(appearance.ExecRunner{}, o.Osascript),
			enum.MethodEvent:   appearance.NewEventSetter(appearance.NewEngine()),
		}
	}

	svc := appearance.NewService(prefs, executor, setters)
	if o.Journal == "" {
		return svc, nil, func() {}, nil
	}

	journal, err := store.New(o.Journal)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open journal: %w", err)
	}
	svc.SetRecorder(journal)
	closeFn := func() {
		if err := journal.Close(); err != nil {
			log.Printf("[WARN] failed to close journal: %v", err)
		}
	}
	return svc, journal, closeFn, nil
}

func (o *SharedOptions) writer() io.Writer {
	if o.out != nil {
		return o.out
	}
	return os.Stdout
}

// CurrentCmd implements the current subcommand
type CurrentCmd struct {
	SharedOptions
}

// Execute prints the current mode
func (c *CurrentCmd) Execute(_ []string) error {
	setupLogs(c.Debug)
	svc, _, closeFn, err := c.service()
	if err != nil {
		return err
	}
	defer closeFn()

	mode, err := svc.Current()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.writer(), mode)
	return err
}

// SetCmd implements the set subcommand
type SetCmd struct {
	SharedOptions

	Args struct {
		Mode string `positional-arg-name:"mode" description:"dark, light or auto"`
	} `positional-args:"yes" required:"yes"`
}

// Execute applies the requested mode
func (s *SetCmd) Execute(_ []string) error {
	setupLogs(s.Debug)
	mode, err := enum.ParseModeInput(s.Args.Mode)
	if err != nil {
		return fmt.Errorf("bad mode: %w", err)
	}
	method, err := s.method()
	if err != nil {
		return err
	}

	svc, _, closeFn, err := s.service()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.Set(context.Background(), mode, method); err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.writer(), mode)
	return err
}

// ToggleCmd implements the toggle subcommand
type ToggleCmd struct {
	SharedOptions
}

// Execute toggles the current mode and prints the resulting one
func (t *ToggleCmd) Execute(_ []string) error {
	setupLogs(t.Debug)
	method, err := t.method()
	if err != nil {
		return err
	}

	svc, _, closeFn, err := t.service()
	if err != nil {
		return err
	}
	defer closeFn()

	mode, err := svc.Toggle(context.Background(), method)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.writer(), mode)
	return err
}

// HistoryCmd implements the history subcommand
type HistoryCmd struct {
	SharedOptions

	Limit int `short:"n" long:"limit" default:"20" description:"max number of transitions to show"`
}

// Execute prints recorded transitions, newest first
func (h *HistoryCmd) Execute(_ []string) error {
	setupLogs(h.Debug)
	if h.Journal == "" {
		return errors.New("journal is not set, use --journal")
	}

	journal, err := store.New(h.Journal)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer journal.Close()

	transitions, err := journal.List(context.Background(), h.Limit)
	if err != nil {
		return fmt.Errorf("failed to list transitions: %w", err)
	}

	w := h.writer()
	for _, tr := range transitions {
		from := "-"
		if tr.From != nil {
			from = tr.From.String()
		}
		status := "ok"
		if tr.Error != "" {
			status = "failed: " + tr.Error
		}
		if _, err := fmt.Fprintf(w, "%s %s -> %s %s %s\n",
			tr.CreatedAt.Format(time.RFC3339), from, tr.To, tr.Method, status); err != nil {
			return err
		}
	}
	return nil
}

// ServeCmd implements the serve subcommand
type ServeCmd struct {
	SharedOptions

	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:"127.0.0.1:8090" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
	} `group:"server" namespace:"server" env-namespace:"APPEARANCE_SERVER"`

	Auth struct {
		TokenHash  string `long:"token-hash" env:"TOKEN_HASH" description:"bcrypt hash of API token (enables auth)"`
		PublicRead bool   `long:"public-read" env:"PUBLIC_READ" description:"allow GET requests without token"`
	} `group:"auth" namespace:"auth" env-namespace:"APPEARANCE_AUTH"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the HTTP API until interrupted
func (s *ServeCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServeCmd) run(ctx context.Context) error {
	method, err := s.method()
	if err != nil {
		return err
	}

	svc, journal, closeFn, err := s.service()
	if err != nil {
		return err
	}
	defer closeFn()

	log.Printf("[INFO] starting appearance server %s on %s, method %s", revision, s.Server.Address, method)
	if s.Auth.TokenHash != "" {
		log.Printf("[INFO] token authentication enabled, public read: %v", s.Auth.PublicRead)
	}

	srv := server.New(svc, server.Config{
		Address:     s.Server.Address,
		ReadTimeout: s.Server.ReadTimeout,
		Version:     revision,
		Method:      method,
		TokenHash:   s.Auth.TokenHash,
		PublicRead:  s.Auth.PublicRead,
	})
	if journal != nil {
		log.Printf("[INFO] journal enabled, %s", s.Journal)
		srv.SetHistory(journal)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
