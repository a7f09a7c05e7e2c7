// Package dump renders decoded record entries as text.
//
// Two styles are available. StyleDefault prints an aligned table meant for
// people:
//
//	Major Revision                1.00
//	1st MAC Address               00:01:c0:12:34:56
//	Reserved fields               (96 bytes)
//
// StyleDump prints name=value lines, omitting reserved regions, in a form that
// can be fed back as field changes:
//
//	Major Revision=1.00
//	1st MAC Address=00:01:c0:12:34:56
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/eeprom/field"
	"github.com/arloliu/eeprom/format"
)

// Style selects the output format.
type Style uint8

const (
	StyleDefault Style = iota // StyleDefault is the aligned label/value table.
	StyleDump                 // StyleDump is name=value, one per line.
)

// ReservedLabel is printed in place of the missing name of a reserved region.
const ReservedLabel = "Reserved fields"

// labelWidth is the column width of labels in StyleDefault.
const labelWidth = 30

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleDump:
		return "dump"
	default:
		return "unknown"
	}
}

// Format renders entries in the given style. Every entry ends with a newline.
func Format(entries []field.Entry, style Style) string {
	var sb strings.Builder
	for _, e := range entries {
		switch style {
		case StyleDump:
			writeDump(&sb, e)
		default:
			writeDefault(&sb, e)
		}
	}

	return sb.String()
}

// Write renders entries to w in the given style.
func Write(w io.Writer, entries []field.Entry, style Style) error {
	_, err := io.WriteString(w, Format(entries, style))
	if err != nil {
		return fmt.Errorf("write entries: %w", err)
	}

	return nil
}

func writeDefault(sb *strings.Builder, e field.Entry) {
	switch e.Kind {
	case format.KindRaw:
		// The hexdump is wider than the label column; start it on its own line.
		fmt.Fprintf(sb, "%s\n%s\n", e.Name, e.Value)
	case format.KindReserved:
		fmt.Fprintf(sb, "%-*s%s\n", labelWidth, ReservedLabel, e.Value)
	default:
		fmt.Fprintf(sb, "%-*s%s\n", labelWidth, e.Name, e.Value)
	}
}

func writeDump(sb *strings.Builder, e field.Entry) {
	switch e.Kind {
	case format.KindReserved:
		return
	case format.KindRaw:
		fmt.Fprintf(sb, "%s=\n%s\n", e.Name, e.Value)
	default:
		fmt.Fprintf(sb, "%s=%s\n", e.Name, e.Value)
	}
}
