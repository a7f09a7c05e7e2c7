package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/eeprom/errs"
)

// RecordSize is the size in bytes of an identification EEPROM record.
const RecordSize = 256

type (
	FieldKind     uint8
	LayoutVersion uint8
)

const (
	KindBinary         FieldKind = 0x1 // KindBinary stores bytes printed as forward hex.
	KindBinaryReversed FieldKind = 0x2 // KindBinaryReversed stores bytes back-to-front.
	KindVersion        FieldKind = 0x3 // KindVersion stores a 16-bit version in hundredths.
	KindASCII          FieldKind = 0x4 // KindASCII stores NUL-terminated text.
	KindMAC            FieldKind = 0x5 // KindMAC stores a 6-byte MAC address.
	KindDate           FieldKind = 0x6 // KindDate stores day, month and a 16-bit year.
	KindReserved       FieldKind = 0x7 // KindReserved marks an unnamed alignment region.
	KindRaw            FieldKind = 0x8 // KindRaw spans a whole record of unknown layout.
)

const (
	LayoutAuto   LayoutVersion = 0x0 // LayoutAuto requests marker-byte detection.
	LayoutLegacy LayoutVersion = 0x1 // LayoutLegacy is the pre-versioned layout.
	LayoutV1     LayoutVersion = 0x2
	LayoutV2     LayoutVersion = 0x3
	LayoutV3     LayoutVersion = 0x4
	LayoutV4     LayoutVersion = 0x5
	LayoutRaw    LayoutVersion = 0x6 // LayoutRaw is the fallback for unrecognized records.
)

func (k FieldKind) String() string {
	switch k {
	case KindBinary:
		return "Binary"
	case KindBinaryReversed:
		return "BinaryReversed"
	case KindVersion:
		return "Version"
	case KindASCII:
		return "Ascii"
	case KindMAC:
		return "Mac"
	case KindDate:
		return "Date"
	case KindReserved:
		return "Reserved"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Updatable reports whether fields of this kind can be addressed by name.
func (k FieldKind) Updatable() bool {
	return k != KindReserved && k != KindRaw && k.Valid()
}

// Valid reports whether k is one of the defined kinds.
func (k FieldKind) Valid() bool {
	return k >= KindBinary && k <= KindRaw
}

func (v LayoutVersion) String() string {
	switch v {
	case LayoutAuto:
		return "auto"
	case LayoutLegacy:
		return "legacy"
	case LayoutV1:
		return "v1"
	case LayoutV2:
		return "v2"
	case LayoutV3:
		return "v3"
	case LayoutV4:
		return "v4"
	case LayoutRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Valid reports whether v is a known version, including LayoutAuto.
func (v LayoutVersion) Valid() bool {
	return v <= LayoutRaw
}

// ParseLayoutVersion converts a user supplied layout name into a LayoutVersion.
//
// Accepted forms are "auto", "legacy", "raw", a bare number "1".."4" and the
// same number prefixed with "v".
//
// Returns:
//   - LayoutVersion: the parsed version
//   - error: wraps errs.ErrInvalidLayoutVersion for anything else
func ParseLayoutVersion(s string) (LayoutVersion, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "auto":
		return LayoutAuto, nil
	case "legacy":
		return LayoutLegacy, nil
	case "raw":
		return LayoutRaw, nil
	}

	num, err := strconv.Atoi(strings.TrimPrefix(name, "v"))
	if err != nil || num < 1 || num > 4 {
		return LayoutAuto, fmt.Errorf("%w: %q", errs.ErrInvalidLayoutVersion, s)
	}

	return LayoutV1 + LayoutVersion(num-1), nil
}
