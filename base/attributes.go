package base

import (
	"strconv"
)

// Attributes is a string-keyed collection of XML attribute values which
// maintains the order in which keys were first added. XML attribute order
// carries no meaning, but preserving it keeps serialization stable across
// a parse/serialize round trip.
//
// The zero value is not usable; create instances with NewAttributes.
// Len and Keys are nil-safe so that callers holding an optional bag need
// not guard every query.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes creates an empty attribute collection.
func NewAttributes() *Attributes {
	return &Attributes{
		values: make(map[string]string),
	}
}

// Len returns the number of attributes held (nil-safe).
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the attribute names in insertion order (nil-safe).
// The returned slice is a copy.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Set stores value under key. Setting an existing key overwrites the
// value but keeps the key's original position.
func (a *Attributes) Set(key, value string) {
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	value, ok := a.values[key]
	return value, ok
}

// Cut removes the attribute for key and returns its value. Concrete
// element types use this during parsing to claim the attributes they
// understand, leaving the remainder for their base type.
func (a *Attributes) Cut(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	value, ok := a.values[key]
	if !ok {
		return "", false
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return value, true
}

// GetBool returns the value under key interpreted as an xsd:boolean
// ("true", "false", "1", "0"). The second return value is false if the
// key is absent or the value is not a boolean.
func (a *Attributes) GetBool(key string) (bool, bool) {
	value, ok := a.Get(key)
	if !ok {
		return false, false
	}
	b, ok := ParseBool(value)
	return b, ok
}

// GetDouble returns the value under key interpreted as a float.
// The second return value is false if the key is absent or the value
// does not parse.
func (a *Attributes) GetDouble(key string) (float64, bool) {
	value, ok := a.Get(key)
	if !ok {
		return 0, false
	}
	d, err := strconv.ParseFloat(value, 64)
	if err != nil {
		tracer().Debugf("attribute %q = %q is not a number", key, value)
		return 0, false
	}
	return d, true
}

// Clone returns an independent copy of the collection (nil-safe).
func (a *Attributes) Clone() *Attributes {
	clone := NewAttributes()
	if a == nil {
		return clone
	}
	for _, key := range a.keys {
		clone.Set(key, a.values[key])
	}
	return clone
}

// MergeIn copies all attributes of other into a, in other's order.
// Keys already present in a keep their position but take other's value.
func (a *Attributes) MergeIn(other *Attributes) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		a.Set(key, other.values[key])
	}
}

// ParseBool interprets s using the xsd:boolean lexical space.
func ParseBool(s string) (value bool, ok bool) {
	switch s {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}
