package field

import (
	"strconv"
	"strings"

	"github.com/arloliu/eeprom/format"
)

const macSize = 6

// decodeBinary prints every byte as two hex digits joined by delim,
// starting from the last byte when reverse is set.
func decodeBinary(data []byte, delim string, reverse bool) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(data) * (2 + len(delim)))

	for i := range data {
		idx := i
		if reverse {
			idx = len(data) - 1 - i
		}
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(hexByte(data[idx]))
	}

	return sb.String()
}

// encodeBinary stores a string of hex digit pairs. Every two characters fill
// one byte; a trailing odd digit forms a byte on its own and missing bytes are
// zero. In reverse mode the string is consumed from its end, so "1234" is
// stored as 0x34 0x12.
func encodeBinary(kind format.FieldKind, text string, data []byte, reverse bool) error {
	if len(text) > 2*len(data) {
		return syntaxError(kind, text, "value is too long")
	}

	parsed := make([]byte, len(data))
	for j := 0; j < len(data); j++ {
		var chunk string
		if reverse {
			end := len(text) - 2*j
			if end <= 0 {
				break
			}
			chunk = text[max(end-2, 0):end]
		} else {
			start := 2 * j
			if start >= len(text) {
				break
			}
			chunk = text[start:min(start+2, len(text))]
		}

		b, err := parseHexByte(chunk)
		if err != nil {
			return syntaxError(kind, text, "syntax error")
		}
		parsed[j] = b
	}

	copy(data, parsed)

	return nil
}

// encodeMAC stores six colon separated hex bytes, e.g. "0:1:c0:12:34:ff".
func encodeMAC(text string, data []byte) error {
	if err := checkSize(format.KindMAC, text, data, macSize); err != nil {
		return err
	}

	parts := strings.Split(text, ":")
	if len(parts) != macSize {
		return syntaxError(format.KindMAC, text, "syntax error")
	}

	var parsed [macSize]byte
	for i, part := range parts {
		b, err := parseHexByte(part)
		if err != nil {
			return syntaxError(format.KindMAC, text, "syntax error")
		}
		parsed[i] = b
	}

	copy(data, parsed[:])

	return nil
}

func parseHexByte(s string) (byte, error) {
	if s == "" || len(s) > 2 {
		return 0, strconv.ErrSyntax
	}

	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}

	return byte(v), nil
}

const hexDigits = "0123456789abcdef"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}
