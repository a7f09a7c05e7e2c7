package field

import (
	"fmt"
	"strings"
)

const (
	hexdumpRowSize = 16
	hexdumpHeader  = "     0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f     0123456789abcdef"
)

// Hexdump renders data as 16-byte rows of hex followed by their ASCII form.
//
// In the ASCII column 0x00 and 0xFF print as '.', other non-printable bytes
// as '?'. The result has a column header line and no trailing newline.
//
// Example row:
//
//	10: 43 4d 2d 46 58 36 00 ff ff ff ff ff ff ff ff ff     CM-FX6..........
func Hexdump(data []byte) string {
	var sb strings.Builder
	sb.WriteString(hexdumpHeader)

	for row := 0; row < len(data); row += hexdumpRowSize {
		end := min(row+hexdumpRowSize, len(data))

		fmt.Fprintf(&sb, "\n%02x: ", row)
		for i := row; i < row+hexdumpRowSize; i++ {
			if i < end {
				sb.WriteString(hexByte(data[i]))
				sb.WriteByte(' ')
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("    ")

		for _, b := range data[row:end] {
			sb.WriteByte(printable(b))
		}
	}

	return sb.String()
}

func printable(b byte) byte {
	switch {
	case b == 0x00 || b == 0xFF:
		return '.'
	case b < 32 || b >= 127:
		return '?'
	default:
		return b
	}
}
