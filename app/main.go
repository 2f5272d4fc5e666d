package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.design/x/mainthread"
)

type options struct {
	Current CurrentCmd `command:"current" description:"print the current appearance mode"`
	Set     SetCmd     `command:"set" description:"set appearance mode (dark, light or auto)"`
	Toggle  ToggleCmd  `command:"toggle" description:"switch dark to light and light to dark"`
	History HistoryCmd `command:"history" description:"show recorded transitions from the journal"`
	Serve   ServeCmd   `command:"serve" description:"run HTTP API"`
}

var revision = "unknown"

func main() {
	// scripting calls must run on the main thread, hand it over and run the cli elsewhere
	mainthread.Init(func() { os.Exit(run(os.Args[1:])) })
}

// run parses args, executes the selected command and returns the exit code
func run(args []string) int {
	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.Name = "appearance"
	if _, err := p.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			return 2
		}
		if errors.As(err, &flagsErr) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		log.Printf("[ERROR] failed: %v", err)
		return 1
	}
	return 0
}

func setupLogs(debug bool) {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
