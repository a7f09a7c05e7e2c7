package field

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/format"
)

func erased(n int) []byte {
	return bytes.Repeat([]byte{ClearByte}, n)
}

func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind format.FieldKind
		size int
		text string
		want string
	}{
		{"mac", format.KindMAC, 6, "01:02:03:04:05:06", "01:02:03:04:05:06"},
		{"mac short digits", format.KindMAC, 6, "0:1:c0:12:34:FF", "00:01:c0:12:34:ff"},
		{"version", format.KindVersion, 2, "123.45", "123.45"},
		{"version single digit minor", format.KindVersion, 2, "1.5", "1.05"},
		{"version largest", format.KindVersion, 2, "655.34", "655.34"},
		{"date", format.KindDate, 4, "07/Feb/2014", "07/Feb/2014"},
		{"date leap day", format.KindDate, 4, "29/Feb/2020", "29/Feb/2020"},
		{"date century leap", format.KindDate, 4, "29/Feb/2000", "29/Feb/2000"},
		{"ascii", format.KindASCII, 16, "CM-FX6", "CM-FX6"},
		{"ascii longest", format.KindASCII, 4, "abc", "abc"},
		{"binary", format.KindBinary, 2, "0a1b", "0a1b"},
		{"binary padded", format.KindBinary, 4, "0a1b", "0a1b0000"},
		{"binary reversed", format.KindBinaryReversed, 4, "12345678", "12345678"},
		{"binary reversed padded", format.KindBinaryReversed, 4, "1234", "00001234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := erased(tt.size)
			require.NoError(t, Encode(tt.kind, tt.text, data))
			require.Equal(t, tt.want, Decode(tt.kind, data))
		})
	}
}

func TestCodec_EncodeRejects(t *testing.T) {
	tests := []struct {
		name   string
		kind   format.FieldKind
		size   int
		text   string
		reason string
	}{
		{"mac five parts", format.KindMAC, 6, "01:02:03:04:05", "syntax error"},
		{"mac bad digit", format.KindMAC, 6, "01:02:03:04:05:zz", "syntax error"},
		{"mac long part", format.KindMAC, 6, "01:02:03:04:05:666", "syntax error"},
		{"version no dot", format.KindVersion, 2, "12", "syntax error"},
		{"version letters", format.KindVersion, 2, "1.a", "syntax error"},
		{"version long minor", format.KindVersion, 2, "1.234", "minor version is 1-2 digits"},
		{"version too big", format.KindVersion, 2, "655.36", "version is too big"},
		{"date non leap", format.KindDate, 4, "29/Feb/2021", "invalid date"},
		{"date century non leap", format.KindDate, 4, "29/Feb/1900", "invalid date"},
		{"date thirty days", format.KindDate, 4, "31/Apr/2020", "invalid date"},
		{"date day zero", format.KindDate, 4, "00/Jan/2020", "invalid day"},
		{"date day 32", format.KindDate, 4, "32/Jan/2020", "invalid date"},
		{"date month", format.KindDate, 4, "01/jan/2020", "invalid month"},
		{"date year overflow", format.KindDate, 4, "01/Jan/65536", "year overflow"},
		{"date shape", format.KindDate, 4, "01-Jan-2020", "syntax error"},
		{"ascii no room for terminator", format.KindASCII, 4, "abcd", "value is too long"},
		{"binary too long", format.KindBinary, 2, "0a1b2", "value is too long"},
		{"binary bad digit", format.KindBinary, 2, "0g", "syntax error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := erased(tt.size)

			err := Encode(tt.kind, tt.text, data)
			require.ErrorIs(t, err, errs.ErrSyntax)

			var synErr *errs.SyntaxError
			require.True(t, errors.As(err, &synErr))
			require.Equal(t, tt.reason, synErr.Reason)
			require.Equal(t, tt.text, synErr.Value)
			require.Equal(t, tt.kind.String(), synErr.Kind)

			require.Equal(t, erased(tt.size), data, "rejected value must not touch the window")
		})
	}
}

func TestCodec_NotUpdatable(t *testing.T) {
	for _, kind := range []format.FieldKind{format.KindReserved, format.KindRaw} {
		data := erased(8)
		err := Encode(kind, "00", data)
		require.ErrorIs(t, err, errs.ErrNotUpdatable)
		require.Equal(t, erased(8), data)
	}
}

func TestDecode_Version(t *testing.T) {
	data := []byte{0xFF, 0xFF}
	require.Equal(t, "0.00", Decode(format.KindVersion, data))
	require.Equal(t, []byte{0xFF, 0xFF}, data, "decode must not rewrite the erased value")

	require.NoError(t, Encode(format.KindVersion, "0.0", data))
	require.Equal(t, []byte{0x00, 0x00}, data)
	require.Equal(t, "0.00", Decode(format.KindVersion, data))
}

func TestDecode_ASCII(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"all zero", make([]byte, 8), ""},
		{"all erased", erased(8), ""},
		{"terminated", []byte{'a', 'b', 0, 'z', 0xFF, 0xFF, 0xFF, 0xFF}, "ab"},
		{"unterminated", []byte("abcdefgh"), "abcdefgh"},
		{"leading erased", []byte{0xFF, 'a', 0, 0}, "\xffa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Decode(format.KindASCII, tt.data))
		})
	}
}

func TestDecode_Date(t *testing.T) {
	require.Equal(t, "01/Jan/1", Decode(format.KindDate, []byte{1, 1, 1, 0}))
	require.Equal(t, "255/BAD/65535", Decode(format.KindDate, erased(4)))
	require.Equal(t, "05/BAD/2020", Decode(format.KindDate, []byte{5, 13, 0xE4, 0x07}))
}

func TestDecode_Reserved(t *testing.T) {
	require.Equal(t, "(83 bytes)", Decode(format.KindReserved, erased(83)))
}

func TestEncode_BinaryLayout(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		data := erased(4)
		require.NoError(t, Encode(format.KindBinary, "123", data))
		require.Equal(t, []byte{0x12, 0x03, 0x00, 0x00}, data)
	})

	t.Run("reversed", func(t *testing.T) {
		data := erased(4)
		require.NoError(t, Encode(format.KindBinaryReversed, "123", data))
		require.Equal(t, []byte{0x23, 0x01, 0x00, 0x00}, data)
	})
}

func TestClear(t *testing.T) {
	data := []byte{1, 2, 3}
	Clear(data)
	require.Equal(t, erased(3), data)
}

func TestSizeHint(t *testing.T) {
	require.Equal(t, 2, SizeHint(format.KindVersion))
	require.Equal(t, 6, SizeHint(format.KindMAC))
	require.Equal(t, 4, SizeHint(format.KindDate))
	require.Equal(t, format.RecordSize, SizeHint(format.KindRaw))
	require.Equal(t, 0, SizeHint(format.KindASCII))
	require.Equal(t, 0, SizeHint(format.KindBinary))
}

func TestCodec_SizeMismatch(t *testing.T) {
	err := Encode(format.KindMAC, "01:02:03:04:05:06", erased(4))
	require.ErrorIs(t, err, errs.ErrSyntax)

	err = Encode(format.KindDate, "07/Feb/2014", erased(2))
	require.ErrorIs(t, err, errs.ErrSyntax)
}
