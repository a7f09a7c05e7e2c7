// Package field implements the text codecs for the fields of an identification record.
//
// A field is a named window over a contiguous range of the 256-byte record.
// Every field has a kind, and the kind alone decides how the window is turned
// into text and how text is written back into it.
//
// # Kinds
//
//	Kind            | Decoded as                     | Encoded from
//	----------------|--------------------------------|-------------------------------
//	Binary          | forward hex, "0a1b2c"          | up to 2*size hex digits, zero padded
//	BinaryReversed  | hex, last byte first           | hex digits stored back-to-front
//	Version         | "123.45" (LE uint16 / 100)     | "<major>.<minor>", minor 0-99
//	Ascii           | text up to the first NUL       | text shorter than the window
//	Mac             | "01:02:03:04:05:06"            | six colon separated hex bytes
//	Date            | "07/Feb/2014"                  | "<day>/<Mon>/<year>", calendar checked
//	Reserved        | "(64 bytes)"                   | not updatable
//	Raw             | 16 bytes per row hexdump       | not updatable
//
// Clearing a field of any kind fills its window with 0xFF.
//
// # Usage
//
//	d := field.Descriptor{Name: "1st MAC Address", ShortName: "mac1", Size: 6, Kind: format.KindMAC}
//	v := field.NewView(d, 4, record[4:10])
//	if err := v.Encode("00:01:c0:12:34:56"); err != nil {
//	    return err
//	}
//	fmt.Println(v.Decode())
//
// Encode validates the whole value before it touches the window, so a
// rejected value never leaves a half-written field behind.
package field
