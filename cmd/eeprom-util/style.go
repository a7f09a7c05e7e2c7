package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const usageText = `Usage:
  eeprom-util [-debug] read [-l ver] [-dump] <file>
  eeprom-util [-debug] write fields [-l ver] <file> [<field>=<value> ...]
  eeprom-util [-debug] write bytes [-l ver] <file> [<offset>[-<end>],<value> ...]
  eeprom-util [-debug] clear [-l ver] <file>
  eeprom-util [-debug] clear fields [-l ver] <file> [<field> ...]
  eeprom-util [-debug] clear bytes [-l ver] <file> [<offset>[-<end>] ...]
  eeprom-util version
  eeprom-util help

Layout versions (-l): auto, legacy, raw, 1, 2, 3, 4. Default: auto.
Fields are addressed by full or short name; an empty value clears the field.
Offsets and values accept decimal, 0x hex and 0 octal.
Without changes on the command line, changes are read from a piped stdin.
`

// styles renders user facing output. Colors are only emitted when the
// target writer is a terminal.
type styles struct {
	stdout io.Writer
	stderr io.Writer

	banner  lipgloss.Style
	failure lipgloss.Style
	notice  lipgloss.Style
}

func newStyles(stdout, stderr io.Writer) *styles {
	out := lipgloss.NewRenderer(stdout)
	errOut := lipgloss.NewRenderer(stderr)

	return &styles{
		stdout:  stdout,
		stderr:  stderr,
		banner:  out.NewStyle().Bold(true),
		failure: errOut.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		notice:  out.NewStyle().Foreground(lipgloss.Color("#90EE90")),
	}
}

func (s *styles) printf(format string, args ...any) {
	fmt.Fprintf(s.stdout, format, args...)
}

func (s *styles) usage() {
	fmt.Fprintln(s.stdout, s.banner.Render("eeprom-util "+version+": identification EEPROM record utility"))
	fmt.Fprint(s.stdout, usageText)
}

func (s *styles) error(err error) {
	fmt.Fprintln(s.stderr, s.failure.Render("Error: "+err.Error()))
}

func (s *styles) done(format string, args ...any) {
	fmt.Fprintln(s.stdout, s.notice.Render(fmt.Sprintf(format, args...)))
}
