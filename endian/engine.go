// Package endian provides byte order helpers for record fields.
//
// Multi-byte integers in an identification record (version numbers, the year
// of a production date) are stored little-endian. Field codecs take an
// EndianEngine rather than calling binary.LittleEndian directly so the byte
// order of a layout is stated in one place.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	year := engine.Uint16(data[2:4])
//	engine.PutUint16(data[2:4], 2024)
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by every record layout.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
