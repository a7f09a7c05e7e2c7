package field

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eeprom/format"
)

func TestHexdump(t *testing.T) {
	data := erased(format.RecordSize)
	copy(data[16:], "CM-FX6\x00")
	data[23] = 0x07

	out := Hexdump(data)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 17)
	require.Equal(t, hexdumpHeader, lines[0])
	require.Equal(t, "00: ff ff ff ff ff ff ff ff ff ff ff ff ff ff ff ff     ................", lines[1])
	require.Equal(t, "10: 43 4d 2d 46 58 36 00 07 ff ff ff ff ff ff ff ff     CM-FX6.?........", lines[2])
	require.True(t, strings.HasPrefix(lines[16], "f0: "))
	require.False(t, strings.HasSuffix(out, "\n"))
}

func TestHexdump_PartialRow(t *testing.T) {
	out := Hexdump([]byte{'a', 'b'})
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	require.Equal(t, "00: 61 62 "+strings.Repeat("   ", 14)+"    ab", lines[1])
}

func TestDecode_Raw(t *testing.T) {
	data := erased(32)
	require.Equal(t, Hexdump(data), Decode(format.KindRaw, data))
}
