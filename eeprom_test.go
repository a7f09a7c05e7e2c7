package eeprom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eeprom/dump"
	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/format"
	"github.com/arloliu/eeprom/layout"
)

func TestNewRecord(t *testing.T) {
	record := NewRecord()
	require.Len(t, record, RecordSize)
	require.Equal(t, format.LayoutV1, Detect(record))
}

func TestOpen(t *testing.T) {
	record := NewRecord()
	record[44] = 3

	l, err := Open(record)
	require.NoError(t, err)
	require.Equal(t, format.LayoutV3, l.Version())

	_, err = Open(record[:100])
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestOpenVersion(t *testing.T) {
	record := NewRecord()

	l, err := OpenVersion(record, format.LayoutRaw)
	require.NoError(t, err)
	require.Equal(t, format.LayoutRaw, l.Version())

	l, err = OpenVersion(record, format.LayoutV4, layout.WithVersion(format.LayoutV2))
	require.NoError(t, err)
	require.Equal(t, format.LayoutV4, l.Version())

	_, err = OpenVersion(record, format.LayoutVersion(12))
	require.ErrorIs(t, err, errs.ErrInvalidLayoutVersion)
}

func TestDecode(t *testing.T) {
	record := NewRecord()
	l, err := Open(record)
	require.NoError(t, err)

	n, err := l.UpdateFields([]layout.FieldChange{
		{Key: "major", Value: "1.0"},
		{Key: "name", Value: "CM-FX6"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	before := bytes.Clone(record)
	entries, err := Decode(record)
	require.NoError(t, err)
	require.Len(t, entries, 12)
	require.Equal(t, "1.00", entries[0].Value)
	require.Equal(t, "CM-FX6", entries[7].Value)
	require.Equal(t, before, record)
}

func TestPrint(t *testing.T) {
	record := NewRecord()
	l, err := Open(record)
	require.NoError(t, err)
	_, err = l.UpdateFields([]layout.FieldChange{{Key: "name", Value: "CM-FX6"}})
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, Print(&out, record, dump.StyleDump))
	require.Contains(t, out.String(), "Product Name=CM-FX6\n")
	require.NotContains(t, out.String(), "bytes)")

	out.Reset()
	require.NoError(t, Print(&out, record, dump.StyleDefault))
	require.Contains(t, out.String(), "Reserved fields               (96 bytes)\n")

	out.Reset()
	require.NoError(t, Print(&out, record, dump.StyleDefault, layout.WithVersion(format.LayoutRaw)))
	require.True(t, strings.HasPrefix(out.String(), "Unknown layout. Dumping raw data\n"))
}

func TestFingerprint(t *testing.T) {
	a := NewRecord()
	b := NewRecord()
	require.Equal(t, Fingerprint(a), Fingerprint(b))

	b[0] = 0
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
