package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/eeprom/changes"
	"github.com/arloliu/eeprom/dump"
	"github.com/arloliu/eeprom/format"
	"github.com/arloliu/eeprom/internal/hash"
	"github.com/arloliu/eeprom/layout"
)

type command struct {
	env    *environment
	ui     *styles
	logger *zap.Logger
}

// target is the device and layout a command operates on, plus its remaining arguments.
type target struct {
	device  fileDevice
	version format.LayoutVersion
	args    []string
}

// parseTarget parses "[-l ver] [extra flags] <file> [args...]".
func (c *command) parseTarget(name string, args []string, extra func(*flag.FlagSet)) (*target, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.env.stderr)
	layoutName := fs.String("l", "auto", "layout version: auto, legacy, raw, 1-4")
	if extra != nil {
		extra(fs)
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errUsage, name, err)
	}

	if fs.NArg() == 0 {
		return nil, fmt.Errorf("%w: %s: missing device file", errUsage, name)
	}

	version, err := format.ParseLayoutVersion(*layoutName)
	if err != nil {
		return nil, err
	}

	return &target{
		device:  fileDevice{path: fs.Arg(0)},
		version: version,
		args:    fs.Args()[1:],
	}, nil
}

func (c *command) open(t *target) (*layout.Layout, error) {
	record, err := t.device.Read()
	if err != nil {
		return nil, err
	}

	return layout.New(record,
		layout.WithVersion(t.version),
		layout.WithLogger(c.logger.With(zap.String("device", t.device.path))),
	)
}

func (c *command) read(args []string) error {
	var asDump bool
	t, err := c.parseTarget("read", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&asDump, "dump", false, "print name=value lines")
	})
	if err != nil {
		return err
	}

	if len(t.args) > 0 {
		return fmt.Errorf("%w: read: unexpected arguments %q", errUsage, t.args)
	}

	l, err := c.open(t)
	if err != nil {
		return err
	}

	style := dump.StyleDefault
	if asDump {
		style = dump.StyleDump
	}

	return dump.Write(c.env.stdout, l.Entries(), style)
}

func (c *command) write(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: write: expected \"fields\" or \"bytes\"", errUsage)
	}

	mode := args[0]
	if mode != "fields" && mode != "bytes" {
		return fmt.Errorf("%w: write: unknown mode %q", errUsage, mode)
	}

	t, err := c.parseTarget("write "+mode, args[1:], nil)
	if err != nil {
		return err
	}

	lines, err := c.changeLines(t)
	if err != nil {
		return err
	}

	var req layout.ChangeRequest
	if mode == "fields" {
		req, err = changes.FieldChanges(lines)
	} else {
		req, err = changes.ByteChanges(lines)
	}
	if err != nil {
		return err
	}

	return c.apply(t, req)
}

func (c *command) clear(args []string) error {
	mode := ""
	if len(args) > 0 && (args[0] == "fields" || args[0] == "bytes") {
		mode = args[0]
		args = args[1:]
	}

	name := "clear"
	if mode != "" {
		name += " " + mode
	}

	t, err := c.parseTarget(name, args, nil)
	if err != nil {
		return err
	}

	if mode == "" {
		if len(t.args) > 0 {
			return fmt.Errorf("%w: clear: unexpected arguments %q", errUsage, t.args)
		}

		return c.apply(t, nil)
	}

	lines, err := c.changeLines(t)
	if err != nil {
		return err
	}

	var req layout.ChangeRequest
	if mode == "fields" {
		req = changes.FieldClearList(lines)
	} else {
		req, err = changes.ByteClearList(lines)
		if err != nil {
			return err
		}
	}

	return c.apply(t, req)
}

// changeLines returns the change arguments, falling back to stdin lines when
// none were given and stdin is not a terminal.
func (c *command) changeLines(t *target) ([]string, error) {
	if len(t.args) > 0 {
		return t.args, nil
	}

	if c.env.stdinTTY || c.env.stdin == nil {
		return nil, fmt.Errorf("%w: no changes given", errUsage)
	}

	lines, err := changes.ReadLines(c.env.stdin)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("changes read from stdin", zap.Int("lines", len(lines)))

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no changes given", errUsage)
	}

	return lines, nil
}

// apply runs req against the device record, or clears the whole record when
// req is nil, and writes the record back only if its contents changed.
func (c *command) apply(t *target, req layout.ChangeRequest) error {
	l, err := c.open(t)
	if err != nil {
		return err
	}

	before := l.Fingerprint()

	var applied int
	if req == nil {
		applied = l.ClearAll()
	} else {
		applied, err = l.Apply(req)
		if err != nil {
			return fmt.Errorf("record not written: %w", err)
		}
	}

	if applied == 0 || !hash.Changed(before, l.Bytes()) {
		c.logger.Debug("record unchanged, skipping write", zap.Int("applied", applied))
		c.ui.done("No changes to write")

		return nil
	}

	if err := t.device.Write(l.Bytes()); err != nil {
		return err
	}

	c.logger.Debug("record written", zap.Int("applied", applied), zap.Stringer("layout", l.Version()))
	c.ui.done("Done: %d change(s) applied to %s", applied, t.device.path)

	return nil
}
