package field

import (
	"bytes"

	"github.com/arloliu/eeprom/format"
)

// decodeASCII returns the text up to the first NUL. Windows that are entirely
// 0x00 or entirely 0xFF hold no text.
func decodeASCII(data []byte) string {
	if uniform(data, 0x00) || uniform(data, 0xFF) {
		return ""
	}

	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	return string(data)
}

// encodeASCII stores text followed by NUL padding; the terminator must fit.
func encodeASCII(text string, data []byte) error {
	if len(text) >= len(data) {
		return syntaxError(format.KindASCII, text, "value is too long")
	}

	n := copy(data, text)
	for i := n; i < len(data); i++ {
		data[i] = 0
	}

	return nil
}

func uniform(data []byte, b byte) bool {
	for _, v := range data {
		if v != b {
			return false
		}
	}

	return true
}
