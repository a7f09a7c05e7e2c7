package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/field"
	"github.com/arloliu/eeprom/internal/pool"
)

const (
	opUpdateFields = "update field"
	opUpdateBytes  = "update bytes"
	opClearFields  = "clear field"
	opClearBytes   = "clear bytes"
)

// UpdateFields sets each field to its new value. An empty value clears the field.
//
// Returns:
//   - int: the number of fields changed, len(changes) on success and 0 on failure
//   - error: errs.ErrNoChanges for an empty batch, *errs.FieldError naming the
//     first rejected key otherwise
func (l *Layout) UpdateFields(changes []FieldChange) (int, error) {
	return l.batch(opUpdateFields, len(changes), func() (int, error) {
		for i, c := range changes {
			f, err := l.lookup(opUpdateFields, c.Key)
			if err != nil {
				return i, err
			}

			if c.Value == "" {
				f.Clear()
			} else if err := f.Encode(c.Value); err != nil {
				return i, &errs.FieldError{Op: opUpdateFields, Key: c.Key, Err: err}
			}

			l.logger.Debug("field updated",
				zap.String("field", f.Name), zap.String("value", c.Value))
		}

		return len(changes), nil
	})
}

// UpdateBytes fills each inclusive range with its value.
//
// Returns:
//   - int: the total number of bytes written, 0 on failure
//   - error: errs.ErrNoChanges for an empty batch, *errs.RangeError wrapping
//     errs.ErrOffsetOutOfBounds or errs.ErrValueOutOfRange otherwise
func (l *Layout) UpdateBytes(changes []ByteChange) (int, error) {
	return l.batch(opUpdateBytes, len(changes), func() (int, error) {
		written := 0
		for _, c := range changes {
			if err := l.checkRange(opUpdateBytes, c.Start, c.End, c.Value); err != nil {
				return written, err
			}

			if c.Value < 0 || c.Value > 0xFF {
				return written, &errs.RangeError{
					Op: opUpdateBytes, Start: c.Start, End: c.End, Value: c.Value, Err: errs.ErrValueOutOfRange,
				}
			}

			fill(l.buf[c.Start:c.End+1], byte(c.Value))
			written += c.End - c.Start + 1

			l.logger.Debug("bytes updated",
				zap.Int("start", c.Start), zap.Int("end", c.End), zap.Int("value", c.Value))
		}

		return written, nil
	})
}

// ClearFields fills each named field with 0xFF.
//
// Returns:
//   - int: the number of fields cleared, 0 on failure
//   - error: errs.ErrNoChanges for an empty batch, *errs.FieldError naming the
//     first rejected key otherwise
func (l *Layout) ClearFields(keys []string) (int, error) {
	return l.batch(opClearFields, len(keys), func() (int, error) {
		for i, key := range keys {
			f, err := l.lookup(opClearFields, key)
			if err != nil {
				return i, err
			}
			f.Clear()

			l.logger.Debug("field cleared", zap.String("field", f.Name))
		}

		return len(keys), nil
	})
}

// ClearBytes fills each inclusive range with 0xFF.
//
// Returns:
//   - int: the total number of bytes cleared, 0 on failure
//   - error: errs.ErrNoChanges for an empty batch, *errs.RangeError wrapping
//     errs.ErrOffsetOutOfBounds otherwise
func (l *Layout) ClearBytes(ranges []ByteRange) (int, error) {
	return l.batch(opClearBytes, len(ranges), func() (int, error) {
		cleared := 0
		for _, r := range ranges {
			if err := l.checkRange(opClearBytes, r.Start, r.End, -1); err != nil {
				return cleared, err
			}

			field.Clear(l.buf[r.Start : r.End+1])
			cleared += r.End - r.Start + 1

			l.logger.Debug("bytes cleared", zap.Int("start", r.Start), zap.Int("end", r.End))
		}

		return cleared, nil
	})
}

// ClearAll fills the whole record with 0xFF and returns the record length.
// It is legal for every layout version, including format.LayoutRaw.
func (l *Layout) ClearAll() int {
	field.Clear(l.buf)
	l.logger.Debug("record cleared", zap.Int("bytes", len(l.buf)))

	return len(l.buf)
}

// Apply dispatches a change request to the matching batch method.
func (l *Layout) Apply(req ChangeRequest) (int, error) {
	switch r := req.(type) {
	case FieldChanges:
		return l.UpdateFields(r)
	case ByteChanges:
		return l.UpdateBytes(r)
	case FieldClearList:
		return l.ClearFields(r)
	case ByteClearList:
		return l.ClearBytes(r)
	case nil:
		return 0, errs.ErrNoChanges
	default:
		return 0, fmt.Errorf("%w: unsupported request %T", errs.ErrMalformedChange, req)
	}
}

// batch runs apply against the record and turns any failure into a zero count,
// restoring the record first when rollback is enabled.
func (l *Layout) batch(op string, size int, apply func() (int, error)) (int, error) {
	if size == 0 {
		return 0, errs.ErrNoChanges
	}

	var snapshot []byte
	if l.rollback {
		var release func()
		snapshot, release = pool.GetSnapshot(l.buf)
		defer release()
	}

	n, err := apply()
	if err != nil {
		if snapshot != nil {
			copy(l.buf, snapshot)
		}

		l.logger.Warn("batch rejected",
			zap.String("op", op),
			zap.Int("entries", size),
			zap.Int("accepted", n),
			zap.Bool("rolled_back", snapshot != nil),
			zap.Error(err))

		return 0, err
	}

	l.logger.Debug("batch applied", zap.String("op", op), zap.Int("entries", size), zap.Int("applied", n))

	return n, nil
}

// checkRange validates an inclusive range. value is only reported in the error.
func (l *Layout) checkRange(op string, start, end, value int) error {
	if start < 0 || end < start || end >= len(l.buf) {
		return &errs.RangeError{Op: op, Start: start, End: end, Value: value, Err: errs.ErrOffsetOutOfBounds}
	}

	return nil
}

func fill(data []byte, value byte) {
	for i := range data {
		data[i] = value
	}
}
