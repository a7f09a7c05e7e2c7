package schema

import (
	"fmt"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/format"
)

// legacyMarkerMin is the lowest marker value treated as legacy configuration text.
const legacyMarkerMin = 0x20

// DetectMarker maps a marker byte to a layout version.
func DetectMarker(marker byte) format.LayoutVersion {
	switch {
	case marker == 0xFF || marker == 0x00:
		return format.LayoutV1
	case marker == 2:
		return format.LayoutV2
	case marker == 3:
		return format.LayoutV3
	case marker == 4:
		return format.LayoutV4
	case marker >= legacyMarkerMin:
		return format.LayoutLegacy
	default:
		return format.LayoutRaw
	}
}

// Detect returns the layout version of a record from its marker byte.
// Records too short to carry a marker are reported as LayoutRaw.
func Detect(record []byte) format.LayoutVersion {
	if len(record) <= MarkerOffset {
		return format.LayoutRaw
	}

	return DetectMarker(record[MarkerOffset])
}

// Resolve returns the concrete version to bind: requested itself when it is
// explicit (including LayoutRaw), or the detected version for LayoutAuto.
func Resolve(record []byte, requested format.LayoutVersion) (format.LayoutVersion, error) {
	if !requested.Valid() {
		return format.LayoutRaw, fmt.Errorf("%w: %d", errs.ErrInvalidLayoutVersion, requested)
	}

	if requested == format.LayoutAuto {
		return Detect(record), nil
	}

	return requested, nil
}
