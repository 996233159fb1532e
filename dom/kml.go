package dom

import (
	"github.com/aaronblanchard/libkml/base"
)

// Kml is the <kml> root element: a single optional feature plus the
// hint= attribute.
type Kml struct {
	BasicElement
	hint    string
	hasHint bool
	feature Feature
}

// NewKml creates an empty <kml> element.
func NewKml() *Kml {
	k := &Kml{}
	k.initElement(TypeKml, k)
	return k
}

func (k *Kml) IsA(t KmlDomType) bool {
	return t == TypeKml || k.BasicElement.IsA(t)
}

func (k *Kml) HasHint() bool { return k.hasHint }
func (k *Kml) Hint() string  { return k.hint }
func (k *Kml) SetHint(hint string) {
	k.hint, k.hasHint = hint, true
}

// SetFeature installs f as the root feature, releasing any previous
// one. A nil f clears the slot.
func (k *Kml) SetFeature(f Feature) bool {
	return SetComplexChild(k.owner(), f, &k.feature)
}

func (k *Kml) HasFeature() bool { return k.feature != nil }
func (k *Kml) Feature() Feature { return k.feature }

func (k *Kml) AddElement(child Element) {
	if child == nil {
		return
	}
	if child.IsA(TypeFeature) {
		if k.SetFeature(child.(Feature)) {
			return
		}
	}
	k.BasicElement.AddElement(child)
}

// ParseAttributes claims hint= and forwards the remainder to the base.
func (k *Kml) ParseAttributes(attrs *base.Attributes) {
	if v, ok := attrs.Cut("hint"); ok {
		k.hint, k.hasHint = v, true
	}
	k.BasicElement.ParseAttributes(attrs)
}

func (k *Kml) GetAttributes(attrs *base.Attributes) {
	if attrs == nil {
		return
	}
	if k.hasHint {
		attrs.Set("hint", k.hint)
	}
	k.BasicElement.GetAttributes(attrs)
}

func (k *Kml) Serialize(s Serializer) {
	attrs := base.NewAttributes()
	k.GetAttributes(attrs)
	s.BeginElement(TypeKml, attrs)
	if k.feature != nil {
		s.SaveElement(k.feature)
	}
	k.SerializeUnknown(s)
	s.EndElement(TypeKml)
}
