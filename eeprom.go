// Package eeprom decodes and edits the 256-byte identification records
// stored in the EEPROM of system-on-module boards.
//
// A record holds board data such as revision numbers, MAC addresses, a
// production date, a serial number and product strings. Its arrangement has
// changed over time; the layout in use is identified by a marker byte at
// offset 44 and selected automatically unless the caller forces one.
//
// # Core Features
//
//   - Layout detection for the legacy layout, versions 1 to 4 and a raw fallback
//   - Text codecs for binary, reversed binary, version, ASCII, MAC and date fields
//   - Batched updates and clears by field name or byte range
//   - Rejected batches leave the record unchanged
//   - Aligned table and name=value renderings of a record
//
// # Basic Usage
//
// Reading a record:
//
//	record, _ := os.ReadFile("/sys/bus/i2c/devices/2-0050/eeprom")
//	entries, err := eeprom.Decode(record[:eeprom.RecordSize])
//	if err != nil {
//	    return err
//	}
//	for _, e := range entries {
//	    fmt.Printf("%s: %s\n", e.Name, e.Value)
//	}
//
// Updating fields:
//
//	l, _ := eeprom.Open(record)
//	n, err := l.UpdateFields([]layout.FieldChange{
//	    {Key: "mac1", Value: "00:01:c0:12:34:56"},
//	    {Key: "date", Value: "07/Feb/2014"},
//	})
//	if err != nil {
//	    // n == 0 and record is unchanged
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the layout, schema
// and dump packages. For batch operations and configuration, use the layout
// package directly.
package eeprom

import (
	"bytes"
	"io"

	"github.com/arloliu/eeprom/dump"
	"github.com/arloliu/eeprom/field"
	"github.com/arloliu/eeprom/format"
	"github.com/arloliu/eeprom/internal/hash"
	"github.com/arloliu/eeprom/layout"
	"github.com/arloliu/eeprom/schema"
)

// RecordSize is the size in bytes of a record.
const RecordSize = format.RecordSize

// NewRecord returns an erased record: every byte is 0xFF, which reads as a
// version 1 layout with empty fields.
func NewRecord() []byte {
	return bytes.Repeat([]byte{field.ClearByte}, RecordSize)
}

// Open binds record to its detected layout. The record is used in place.
func Open(record []byte, opts ...layout.Option) (*layout.Layout, error) {
	return layout.New(record, opts...)
}

// OpenVersion binds record to the given layout version, bypassing detection.
// The version argument takes precedence over a WithVersion option in opts.
func OpenVersion(record []byte, version format.LayoutVersion, opts ...layout.Option) (*layout.Layout, error) {
	all := make([]layout.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, layout.WithVersion(version))

	return layout.New(record, all...)
}

// Detect returns the layout version identified by the record's marker byte.
func Detect(record []byte) format.LayoutVersion {
	return schema.Detect(record)
}

// Decode returns the decoded fields of record in record order.
// The record is not modified.
func Decode(record []byte, opts ...layout.Option) ([]field.Entry, error) {
	l, err := layout.New(record, opts...)
	if err != nil {
		return nil, err
	}

	return l.Entries(), nil
}

// Print writes the decoded fields of record to w in the given style.
func Print(w io.Writer, record []byte, style dump.Style, opts ...layout.Option) error {
	entries, err := Decode(record, opts...)
	if err != nil {
		return err
	}

	return dump.Write(w, entries, style)
}

// Fingerprint returns the xxHash64 of record. Comparing fingerprints taken
// before and after a batch tells whether the record needs to be written back.
func Fingerprint(record []byte) uint64 {
	return hash.Fingerprint(record)
}
