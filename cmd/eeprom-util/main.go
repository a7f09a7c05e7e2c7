// Command eeprom-util reads and edits identification EEPROM records through a
// file: the sysfs "eeprom" attribute exposed by the at24 driver or a plain
// record image.
//
// Usage:
//
//	eeprom-util [-debug] read [-l ver] [-dump] <file>
//	eeprom-util [-debug] write fields [-l ver] <file> [<field>=<value> ...]
//	eeprom-util [-debug] write bytes [-l ver] <file> [<offset>[-<end>],<value> ...]
//	eeprom-util [-debug] clear [-l ver] <file>
//	eeprom-util [-debug] clear fields [-l ver] <file> [<field> ...]
//	eeprom-util [-debug] clear bytes [-l ver] <file> [<offset>[-<end>] ...]
//	eeprom-util version
//	eeprom-util help
//
// When no changes are given on the command line and stdin is not a terminal,
// changes are read from stdin, one per line.
package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	env := &environment{
		stdin:    os.Stdin,
		stdinTTY: term.IsTerminal(int(os.Stdin.Fd())),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	os.Exit(run(os.Args[1:], env))
}

// environment is the process context a command runs in.
type environment struct {
	stdin    io.Reader
	stdinTTY bool
	stdout   io.Writer
	stderr   io.Writer
}
