package layout

// FieldChange sets a field, addressed by full or short name, to Value.
// An empty Value clears the field.
type FieldChange struct {
	Key   string
	Value string
}

// ByteChange fills the inclusive range [Start, End] with Value.
// A single byte is the range Start == End.
type ByteChange struct {
	Start int
	End   int
	Value int
}

// ByteRange is an inclusive range of record offsets.
type ByteRange struct {
	Start int
	End   int
}

// ChangeRequest is one batch of changes. It is implemented only by
// FieldChanges, ByteChanges, FieldClearList and ByteClearList.
type ChangeRequest interface {
	// Len returns the number of entries in the batch.
	Len() int

	changeRequest()
}

type (
	// FieldChanges is a batch of updates by field name.
	FieldChanges []FieldChange
	// ByteChanges is a batch of updates by byte range.
	ByteChanges []ByteChange
	// FieldClearList is a batch of field names to clear.
	FieldClearList []string
	// ByteClearList is a batch of byte ranges to clear.
	ByteClearList []ByteRange
)

func (c FieldChanges) Len() int   { return len(c) }
func (c ByteChanges) Len() int    { return len(c) }
func (c FieldClearList) Len() int { return len(c) }
func (c ByteClearList) Len() int  { return len(c) }

func (FieldChanges) changeRequest()   {}
func (ByteChanges) changeRequest()    {}
func (FieldClearList) changeRequest() {}
func (ByteClearList) changeRequest()  {}
