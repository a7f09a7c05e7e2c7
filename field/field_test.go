package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/format"
)

func TestDescriptor_Matches(t *testing.T) {
	mac := Descriptor{Name: "1st MAC Address", ShortName: "mac1", Size: 6, Kind: format.KindMAC}
	gap := Descriptor{Size: 96, Kind: format.KindReserved}
	raw := Descriptor{Name: "raw", Size: format.RecordSize, Kind: format.KindRaw}

	require.True(t, mac.Matches("1st MAC Address"))
	require.True(t, mac.Matches("mac1"))
	require.False(t, mac.Matches("MAC1"))
	require.False(t, mac.Matches(""))
	require.False(t, gap.Matches(""))
	require.False(t, raw.Matches("raw"))
}

func TestView(t *testing.T) {
	record := erased(16)
	d := Descriptor{Name: "Product Name", ShortName: "name", Size: 8, Kind: format.KindASCII}
	v := NewView(d, 4, record[4:12])

	require.Equal(t, "", v.Decode())

	require.NoError(t, v.Encode("board"))
	require.Equal(t, []byte{'b', 'o', 'a', 'r', 'd', 0, 0, 0}, record[4:12])
	require.Equal(t, erased(4), record[:4])
	require.Equal(t, erased(4), record[12:])

	entry := v.Entry()
	require.Equal(t, Entry{
		Name:      "Product Name",
		ShortName: "name",
		Kind:      format.KindASCII,
		Offset:    4,
		Size:      8,
		Value:     "board",
	}, entry)

	err := v.Encode("far too long")
	require.ErrorIs(t, err, errs.ErrSyntax)

	var synErr *errs.SyntaxError
	require.True(t, errors.As(err, &synErr))
	require.Equal(t, "Product Name", synErr.Field)
	require.Contains(t, err.Error(), `for field "Product Name"`)
	require.Equal(t, "board", v.Decode())

	v.Clear()
	require.Equal(t, erased(16), record)
}
