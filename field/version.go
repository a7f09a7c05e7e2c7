package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/eeprom/format"
)

const (
	versionSize  = 2
	versionUnset = 0xFFFF
)

// decodeVersion prints the little-endian value in hundredths, "123.45".
// An erased (0xFFFF) version reads as 0.00.
func decodeVersion(data []byte) string {
	if len(data) < versionSize {
		return ""
	}

	v := engine.Uint16(data)
	if v == versionUnset {
		v = 0
	}

	return fmt.Sprintf("%.2f", float64(v)/100.0)
}

func encodeVersion(text string, data []byte) error {
	if err := checkSize(format.KindVersion, text, data, versionSize); err != nil {
		return err
	}

	major, minor, ok := strings.Cut(text, ".")
	if !ok || !isDigits(major) || !isDigits(minor) {
		return syntaxError(format.KindVersion, text, "syntax error")
	}
	if len(minor) > 2 {
		return syntaxError(format.KindVersion, text, "minor version is 1-2 digits")
	}

	maj, err := strconv.Atoi(major)
	if err != nil || maj > 0xFFFF {
		return syntaxError(format.KindVersion, text, "version is too big")
	}
	mnr, _ := strconv.Atoi(minor)

	num := maj*100 + mnr
	if num > 0xFFFF {
		return syntaxError(format.KindVersion, text, "version is too big")
	}

	engine.PutUint16(data, uint16(num))

	return nil
}
