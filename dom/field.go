package dom

import (
	"strconv"
	"strings"

	"github.com/aaronblanchard/libkml/base"
)

// Field holds the type id and character data of a simple element during
// parsing. A Field is generally short lived: when presented to
// AddElement and recognized by its parent, the parent extracts the
// typed value through one of the Set conversions and the Field is
// discarded. A Field nobody recognized survives as-is in the enclosing
// element's misplaced bucket, <snippet> being the classic case of a
// schema-known element without a legal position here, and its
// Serialize re-emits tag and literal character data unchanged.
type Field struct {
	BasicElement
	xsd *Xsd
}

// NewField creates a Field standing in for the simple element with the
// given type id.
func NewField(id KmlDomType) *Field {
	f := &Field{xsd: GetXsd()}
	f.initElement(id, f)
	return f
}

// SetBool converts the character data to a bool using the xsd:boolean
// lexical space ("true", "false", "1", "0"). With no destination, or
// character data outside that space, it fails and leaves *val alone.
func (f *Field) SetBool(val *bool) bool {
	if val == nil {
		return false
	}
	b, ok := base.ParseBool(strings.TrimSpace(f.CharData()))
	if !ok {
		return false
	}
	*val = b
	return true
}

// SetDouble converts the character data to a float64. With no
// destination, or non-numeric character data, it fails and leaves
// *val alone.
func (f *Field) SetDouble(val *float64) bool {
	if val == nil {
		return false
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(f.CharData()), 64)
	if err != nil {
		return false
	}
	*val = d
	return true
}

// SetInt converts the character data to an int. With no destination,
// or non-integral character data, it fails and leaves *val alone.
func (f *Field) SetInt(val *int) bool {
	if val == nil {
		return false
	}
	i, err := strconv.Atoi(strings.TrimSpace(f.CharData()))
	if err != nil {
		return false
	}
	*val = i
	return true
}

// SetEnum converts the character data to the ordinal of this Field's
// enumerated type, resolved through the schema registry. With no
// destination, a non-enumerated type id, or character data outside the
// enumeration, it fails and leaves *val alone.
func (f *Field) SetEnum(val *int) bool {
	if val == nil {
		return false
	}
	ordinal := f.xsd.EnumID(f.Type(), strings.TrimSpace(f.CharData()))
	if ordinal < 0 {
		return false
	}
	*val = ordinal
	return true
}

// SetString copies the character data to *val. It fails only with no
// destination.
func (f *Field) SetString(val *string) bool {
	if val == nil {
		return false
	}
	*val = f.CharData()
	return true
}

// Serialize re-emits this Field as tag plus literal character data.
// Known child fields are serialized by their parents; this is used for
// a Field surviving in an element's misplaced bucket.
func (f *Field) Serialize(s Serializer) {
	s.SaveStringField(f.Type(), f.CharData())
}
