// Package layout binds a record layout to a record buffer and applies batched
// updates and clears to it.
//
// A Layout never copies the buffer it is given: every field is a window into
// the caller's slice, and every change is visible to the caller as soon as the
// batch returns. The Layout performs no I/O; callers persist the buffer
// themselves, typically only when a batch reported a non-zero count.
//
// # Basic Usage
//
//	l, err := layout.New(record)
//	if err != nil {
//		return err
//	}
//	for _, e := range l.Entries() {
//		fmt.Printf("%-30s%s\n", e.Name, e.Value)
//	}
//
//	n, err := l.UpdateFields([]layout.FieldChange{{Key: "name", Value: "CM-FX6"}})
//
// # Batches
//
// Every mutating method processes its entries in order and stops at the first
// invalid one. A rejected batch returns zero and an error that identifies the
// offending key or range; unless rollback is disabled with WithRollback, the
// record is restored to its state before the call.
//
// # Thread Safety
//
// A Layout is not safe for concurrent use.
package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/field"
	"github.com/arloliu/eeprom/format"
	"github.com/arloliu/eeprom/internal/hash"
	"github.com/arloliu/eeprom/internal/options"
	"github.com/arloliu/eeprom/schema"
)

// Layout is a record layout bound to a record buffer.
type Layout struct {
	version  format.LayoutVersion
	buf      []byte
	fields   []field.View
	logger   *zap.Logger
	rollback bool
}

// New binds buf to a layout.
//
// The version is detected from the marker byte unless WithVersion forces one.
// buf is used in place and must stay alive and unshared while the Layout is in use.
//
// Parameters:
//   - buf: the record, exactly format.RecordSize bytes
//   - opts: optional configuration
//
// Returns:
//   - *Layout: the bound layout
//   - error: errs.ErrSchemaMismatch for a buffer of the wrong size, or an option error
func New(buf []byte, opts ...Option) (*Layout, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(buf) != format.RecordSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrSchemaMismatch, len(buf), format.RecordSize)
	}

	version, err := schema.Resolve(buf, cfg.version)
	if err != nil {
		return nil, err
	}

	descs, err := schema.Table(version)
	if err != nil {
		return nil, err
	}

	if size := schema.Size(descs); size != len(buf) {
		return nil, fmt.Errorf("%w: %s layout covers %d bytes, buffer has %d",
			errs.ErrSchemaMismatch, version, size, len(buf))
	}

	l := &Layout{
		version:  version,
		buf:      buf,
		fields:   make([]field.View, 0, len(descs)),
		logger:   cfg.logger.With(zap.Stringer("layout", version)),
		rollback: cfg.rollback,
	}

	offset := 0
	for _, d := range descs {
		end := offset + d.Size
		l.fields = append(l.fields, field.NewView(d, offset, buf[offset:end:end]))
		offset = end
	}

	return l, nil
}

// Version returns the bound layout version. It is never format.LayoutAuto.
func (l *Layout) Version() format.LayoutVersion {
	return l.version
}

// Len returns the record length.
func (l *Layout) Len() int {
	return len(l.buf)
}

// Bytes returns the record buffer. It is the slice passed to New, not a copy.
func (l *Layout) Bytes() []byte {
	return l.buf
}

// Fields returns the bound fields in record order.
func (l *Layout) Fields() []field.View {
	out := make([]field.View, len(l.fields))
	copy(out, l.fields)

	return out
}

// Field returns the field matching key by full or short name.
//
// Returns:
//   - field.View: the matching field
//   - error: *errs.FieldError wrapping errs.ErrEmptyKey, errs.ErrFieldNotFound
//     or errs.ErrUnknownLayoutNoFieldOps
func (l *Layout) Field(key string) (field.View, error) {
	return l.lookup("lookup", key)
}

// Entries decodes every field in record order. Decoding never fails and
// never modifies the record.
func (l *Layout) Entries() []field.Entry {
	entries := make([]field.Entry, len(l.fields))
	for i, f := range l.fields {
		entries[i] = f.Entry()
	}

	return entries
}

// Fingerprint returns the xxHash64 of the current record contents.
func (l *Layout) Fingerprint() uint64 {
	return hash.Fingerprint(l.buf)
}

func (l *Layout) lookup(op, key string) (field.View, error) {
	if key == "" {
		return field.View{}, &errs.FieldError{Op: op, Key: key, Err: errs.ErrEmptyKey}
	}

	if l.version == format.LayoutRaw {
		return field.View{}, &errs.FieldError{Op: op, Key: key, Err: errs.ErrUnknownLayoutNoFieldOps}
	}

	for _, f := range l.fields {
		if f.Matches(key) {
			return f, nil
		}
	}

	return field.View{}, &errs.FieldError{Op: op, Key: key, Err: errs.ErrFieldNotFound}
}
