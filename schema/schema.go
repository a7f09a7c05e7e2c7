// Package schema holds the field tables of every known record layout and
// selects the layout of a record.
//
// # Layouts
//
// The record has gone through several incompatible arrangements. Each one is
// an ordered table of field descriptors whose sizes add up to
// format.RecordSize:
//
//	Version | Fields | Highlights
//	--------|--------|------------------------------------------------------
//	Legacy  |      5 | one MAC, board revision, 64-byte configuration text
//	V1      |     12 | major/minor revision, two MACs, date, reversed serial
//	V2      |     15 | adds WIFI and Bluetooth MACs and a layout byte at 44
//	V3      |     16 | adds Product Options #4
//	V4      |     20 | adds an EEPROM ID and 5th/6th MACs
//	Raw     |      1 | whole record, used when detection fails
//
// # Detection
//
// Detect reads the marker byte at MarkerOffset:
//
//	0x00 or 0xFF -> V1
//	2, 3, 4      -> V2, V3, V4
//	>= 0x20      -> Legacy (the byte falls inside its configuration text)
//	otherwise    -> Raw
//
// Tables are immutable; callers receive copies.
package schema

import (
	"fmt"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/field"
	"github.com/arloliu/eeprom/format"
)

// MarkerOffset is the offset of the byte that identifies the layout version.
const MarkerOffset = 44

// RawFieldName labels the single field of the Raw layout.
const RawFieldName = "Unknown layout. Dumping raw data"

func named(name, short string, size int, kind format.FieldKind) field.Descriptor {
	return field.Descriptor{Name: name, ShortName: short, Size: size, Kind: kind}
}

func reserved(size int) field.Descriptor {
	return field.Descriptor{Size: size, Kind: format.KindReserved}
}

var (
	majorRevision = named("Major Revision", "major", 2, format.KindVersion)
	minorRevision = named("Minor Revision", "minor", 2, format.KindVersion)
	mac1          = named("1st MAC Address", "mac1", 6, format.KindMAC)
	mac2          = named("2nd MAC Address", "mac2", 6, format.KindMAC)
	productionDay = named("Production Date", "date", 4, format.KindDate)
	serialNumber  = named("Serial Number", "sn", 12, format.KindBinaryReversed)
	mac3          = named("3rd MAC Address (WIFI)", "mac3", 6, format.KindMAC)
	mac4          = named("4th MAC Address (Bluetooth)", "mac4", 6, format.KindMAC)
	layoutByte    = named("Layout Version", "layout", 1, format.KindBinary)
	productName   = named("Product Name", "name", 16, format.KindASCII)
	options1      = named("Product Options #1", "opt1", 16, format.KindASCII)
	options2      = named("Product Options #2", "opt2", 16, format.KindASCII)
	options3      = named("Product Options #3", "opt3", 16, format.KindASCII)
	options4      = named("Product Options #4", "opt4", 16, format.KindASCII)
)

var tables = map[format.LayoutVersion][]field.Descriptor{
	format.LayoutLegacy: {
		named("MAC address", "mac", 6, format.KindMAC),
		named("Board Revision", "rev", 2, format.KindBinary),
		named("Serial Number", "sn", 8, format.KindBinary),
		named("Board Configuration", "conf", 64, format.KindASCII),
		reserved(176),
	},
	format.LayoutV1: {
		majorRevision, minorRevision, mac1, mac2, productionDay, serialNumber,
		reserved(96),
		productName, options1, options2, options3,
		reserved(64),
	},
	format.LayoutV2: {
		majorRevision, minorRevision, mac1, mac2, productionDay, serialNumber,
		mac3, mac4, layoutByte,
		reserved(83),
		productName, options1, options2, options3,
		reserved(64),
	},
	format.LayoutV3: {
		majorRevision, minorRevision, mac1, mac2, productionDay, serialNumber,
		mac3, mac4, layoutByte,
		reserved(83),
		productName, options1, options2, options3, options4,
		reserved(48),
	},
	format.LayoutV4: {
		majorRevision, minorRevision, mac1, mac2, productionDay, serialNumber,
		mac3, mac4, layoutByte,
		named("CompuLab EEPROM ID", "id", 3, format.KindBinary),
		named("5th MAC Address", "mac5", 6, format.KindMAC),
		named("6th MAC Address", "mac6", 6, format.KindMAC),
		reserved(4),
		reserved(64),
		productName, options1, options2, options3, options4,
		reserved(48),
	},
	format.LayoutRaw: {
		{Name: RawFieldName, Size: format.RecordSize, Kind: format.KindRaw},
	},
}

// Table returns a copy of the field descriptors of a concrete layout version.
//
// Returns:
//   - []field.Descriptor: descriptors in record order
//   - error: errs.ErrInvalidLayoutVersion for LayoutAuto or unknown versions
func Table(version format.LayoutVersion) ([]field.Descriptor, error) {
	t, ok := tables[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidLayoutVersion, version)
	}

	out := make([]field.Descriptor, len(t))
	copy(out, t)

	return out, nil
}

// Size returns the sum of the descriptor sizes.
func Size(descs []field.Descriptor) int {
	total := 0
	for _, d := range descs {
		total += d.Size
	}

	return total
}

// Versions returns every concrete layout version in ascending order.
func Versions() []format.LayoutVersion {
	return []format.LayoutVersion{
		format.LayoutLegacy,
		format.LayoutV1,
		format.LayoutV2,
		format.LayoutV3,
		format.LayoutV4,
		format.LayoutRaw,
	}
}
