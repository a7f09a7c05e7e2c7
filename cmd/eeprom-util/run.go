package main

import (
	"errors"
	"flag"
	"fmt"

	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
)

// errUsage marks errors caused by malformed command lines; usage is printed after them.
var errUsage = errors.New("invalid usage")

func run(args []string, env *environment) int {
	ui := newStyles(env.stdout, env.stderr)

	global := flag.NewFlagSet("eeprom-util", flag.ContinueOnError)
	global.SetOutput(env.stderr)
	debug := global.Bool("debug", false, "log every change to stderr")
	global.Usage = func() { ui.usage() }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitError
	}

	logger := zap.NewNop()
	if *debug {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			ui.error(fmt.Errorf("create logger: %w", err))
			return exitError
		}
		logger = devLogger
	}
	defer func() { _ = logger.Sync() }()

	rest := global.Args()
	if len(rest) == 0 {
		ui.usage()
		return exitError
	}

	cmd := &command{env: env, ui: ui, logger: logger}

	var err error
	switch name := rest[0]; name {
	case "read":
		err = cmd.read(rest[1:])
	case "write":
		err = cmd.write(rest[1:])
	case "clear":
		err = cmd.clear(rest[1:])
	case "version":
		ui.printf("eeprom-util %s\n", version)
	case "help", "-h", "--help":
		ui.usage()
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	if err != nil {
		ui.error(err)
		if errors.Is(err, errUsage) {
			ui.usage()
		}

		return exitError
	}

	return exitOK
}
