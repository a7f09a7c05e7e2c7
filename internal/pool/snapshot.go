package pool

import "sync"

// snapshotPool holds record-sized buffers used to undo rejected batches.
var snapshotPool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetSnapshot copies src into a pooled buffer.
//
// The caller must call the returned release function once the snapshot is no
// longer needed; the snapshot must not be used after release.
//
// Parameters:
//   - src: The bytes to copy
//
// Returns:
//   - []byte: A copy of src with the same length
//   - func(): Release function that returns the buffer to the pool
//
// Example:
//
//	snapshot, release := pool.GetSnapshot(record)
//	defer release()
//	if err := apply(record); err != nil {
//	    copy(record, snapshot)
//	}
func GetSnapshot(src []byte) ([]byte, func()) {
	ptr, _ := snapshotPool.Get().(*[]byte)
	buf := (*ptr)[:0]
	if cap(buf) < len(src) {
		buf = make([]byte, len(src))
	} else {
		buf = buf[:len(src)]
	}
	copy(buf, src)
	*ptr = buf

	return buf, func() { snapshotPool.Put(ptr) }
}
