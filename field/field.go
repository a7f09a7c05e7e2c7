package field

import (
	"errors"

	"github.com/arloliu/eeprom/errs"
	"github.com/arloliu/eeprom/format"
)

// Descriptor is the immutable description of one field in a layout table.
// Reserved regions have an empty Name and ShortName.
type Descriptor struct {
	Name      string
	ShortName string
	Size      int
	Kind      format.FieldKind
}

// Matches reports whether key names this field, either by its full or its short name.
// Reserved and raw fields never match.
func (d Descriptor) Matches(key string) bool {
	if key == "" || !d.Kind.Updatable() {
		return false
	}

	return d.Name == key || d.ShortName == key
}

// Entry is the decoded, printable form of a field.
type Entry struct {
	Name      string
	ShortName string
	Kind      format.FieldKind
	Offset    int
	Size      int
	Value     string
}

// View binds a Descriptor to its window of a record buffer.
//
// A View does not own its bytes; it stays valid only as long as the buffer it
// was built from.
type View struct {
	Descriptor

	Offset int
	data   []byte
}

// NewView creates a View over data, which must be exactly d.Size bytes long
// and start at offset within the record.
func NewView(d Descriptor, offset int, data []byte) View {
	return View{Descriptor: d, Offset: offset, data: data}
}

// Bytes returns the window of the record covered by the field.
func (v View) Bytes() []byte {
	return v.data
}

// Decode renders the field as text.
func (v View) Decode() string {
	return Decode(v.Kind, v.data)
}

// Encode parses text according to the field kind and stores it in the window.
// On failure the window is left unchanged.
func (v View) Encode(text string) error {
	err := Encode(v.Kind, text, v.data)

	var synErr *errs.SyntaxError
	if errors.As(err, &synErr) {
		synErr.Field = v.Name
	}

	return err
}

// Clear fills the window with 0xFF.
func (v View) Clear() {
	Clear(v.data)
}

// Entry returns the decoded field together with its position in the record.
func (v View) Entry() Entry {
	return Entry{
		Name:      v.Name,
		ShortName: v.ShortName,
		Kind:      v.Kind,
		Offset:    v.Offset,
		Size:      v.Size,
		Value:     v.Decode(),
	}
}
