// Package changes parses the textual change syntax accepted by the command
// line tool into layout change requests.
//
// Field changes have the form "<field>=<value>", where field is a full or
// short field name and an empty value clears the field. Byte changes have the
// form "<offset>[-<end>],<value>" and byte ranges "<offset>[-<end>]". Numbers
// follow C conventions: decimal, 0x-prefixed hex or 0-prefixed octal.
//
// Parsing is purely syntactic. Offsets, byte values and field names are
// validated by the layout when the batch is applied.
package changes

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/layout"
)

const (
	fieldDelim = "="
	byteDelim  = ","
	rangeDelim = "-"
)

// ParseFieldChange parses "<field>=<value>". The string is split at the first
// '=' so values may contain '='.
func ParseFieldChange(s string) (layout.FieldChange, error) {
	key, value, ok := strings.Cut(s, fieldDelim)
	if !ok || key == "" {
		return layout.FieldChange{}, malformed(s, "expected <field>=<value>")
	}

	return layout.FieldChange{Key: key, Value: value}, nil
}

// ParseByteChange parses "<offset>[-<end>],<value>".
func ParseByteChange(s string) (layout.ByteChange, error) {
	rng, val, ok := strings.Cut(s, byteDelim)
	if !ok {
		return layout.ByteChange{}, malformed(s, "expected <offset>[-<end>],<value>")
	}

	r, err := ParseByteRange(rng)
	if err != nil {
		return layout.ByteChange{}, err
	}

	value, err := parseNumber(val)
	if err != nil {
		return layout.ByteChange{}, malformed(s, "invalid value")
	}

	return layout.ByteChange{Start: r.Start, End: r.End, Value: value}, nil
}

// ParseByteRange parses "<offset>[-<end>]". A single offset is the range
// [offset, offset].
func ParseByteRange(s string) (layout.ByteRange, error) {
	first, last, isRange := strings.Cut(s, rangeDelim)

	start, err := parseNumber(first)
	if err != nil {
		return layout.ByteRange{}, malformed(s, "invalid offset")
	}
	if !isRange {
		return layout.ByteRange{Start: start, End: start}, nil
	}

	end, err := parseNumber(last)
	if err != nil {
		return layout.ByteRange{}, malformed(s, "invalid end offset")
	}

	return layout.ByteRange{Start: start, End: end}, nil
}

// FieldChanges parses every argument with ParseFieldChange.
func FieldChanges(args []string) (layout.FieldChanges, error) {
	return parseAll(args, ParseFieldChange)
}

// ByteChanges parses every argument with ParseByteChange.
func ByteChanges(args []string) (layout.ByteChanges, error) {
	return parseAll(args, ParseByteChange)
}

// ByteClearList parses every argument with ParseByteRange.
func ByteClearList(args []string) (layout.ByteClearList, error) {
	return parseAll(args, ParseByteRange)
}

// FieldClearList returns the field keys as a clear request. Keys are not
// parsed; the layout rejects empty or unknown keys.
func FieldClearList(args []string) layout.FieldClearList {
	out := make(layout.FieldClearList, len(args))
	copy(out, args)

	return out
}

// ReadLines reads r to the end and returns its non-blank lines without line
// terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read changes: %w", err)
	}

	return lines, nil
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))
	for _, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// parseNumber accepts the integer syntax of C's strtol with base 0.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, strconv.ErrSyntax
	}

	// Go's base 0 also accepts 0o, 0b and '_' separators; C does not.
	if strings.ContainsRune(s, '_') || hasPrefixFold(s, "0o") || hasPrefixFold(s, "0b") {
		return 0, strconv.ErrSyntax
	}

	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func malformed(s, reason string) error {
	return fmt.Errorf("%w %q: %s", errs.ErrMalformedChange, s, reason)
}
