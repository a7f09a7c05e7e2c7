package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a record image.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Changed reports whether data no longer matches a previously taken fingerprint.
func Changed(before uint64, data []byte) bool {
	return Fingerprint(data) != before
}
