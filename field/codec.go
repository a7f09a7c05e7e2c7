package field

import (
	"fmt"

	"github.com/arloliu/eeprom/endian"
	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/format"
)

// ClearByte is the value of every byte of a cleared field.
const ClearByte = 0xFF

var engine = endian.GetLittleEndianEngine()

// Decode renders data as text according to kind. It never fails and never
// modifies data.
func Decode(kind format.FieldKind, data []byte) string {
	switch kind {
	case format.KindBinary:
		return decodeBinary(data, "", false)
	case format.KindBinaryReversed:
		return decodeBinary(data, "", true)
	case format.KindVersion:
		return decodeVersion(data)
	case format.KindASCII:
		return decodeASCII(data)
	case format.KindMAC:
		return decodeBinary(data, ":", false)
	case format.KindDate:
		return decodeDate(data)
	case format.KindReserved:
		return fmt.Sprintf("(%d bytes)", len(data))
	default:
		return Hexdump(data)
	}
}

// Encode parses text according to kind and writes the result into data.
//
// Parameters:
//   - kind: the field kind that defines the text syntax
//   - text: the value to store
//   - data: the field window, written only when text is valid
//
// Returns:
//   - error: *errs.SyntaxError for malformed text, errs.ErrNotUpdatable for
//     reserved and raw kinds
func Encode(kind format.FieldKind, text string, data []byte) error {
	switch kind {
	case format.KindBinary:
		return encodeBinary(kind, text, data, false)
	case format.KindBinaryReversed:
		return encodeBinary(kind, text, data, true)
	case format.KindVersion:
		return encodeVersion(text, data)
	case format.KindASCII:
		return encodeASCII(text, data)
	case format.KindMAC:
		return encodeMAC(text, data)
	case format.KindDate:
		return encodeDate(text, data)
	default:
		return fmt.Errorf("%w: %s", errs.ErrNotUpdatable, kind)
	}
}

// Clear fills data with ClearByte.
func Clear(data []byte) {
	for i := range data {
		data[i] = ClearByte
	}
}

// SizeHint returns the window size a kind requires, or 0 when any size is accepted.
func SizeHint(kind format.FieldKind) int {
	switch kind {
	case format.KindVersion:
		return versionSize
	case format.KindMAC:
		return macSize
	case format.KindDate:
		return dateSize
	case format.KindRaw:
		return format.RecordSize
	default:
		return 0
	}
}

func syntaxError(kind format.FieldKind, value, reason string) *errs.SyntaxError {
	return &errs.SyntaxError{Kind: kind.String(), Value: value, Reason: reason}
}

func checkSize(kind format.FieldKind, value string, data []byte, want int) error {
	if len(data) != want {
		return syntaxError(kind, value, fmt.Sprintf("field holds %d bytes, kind needs %d", len(data), want))
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
