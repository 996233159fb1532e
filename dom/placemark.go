package dom

import (
	"github.com/aaronblanchard/libkml/base"
)

// Placemark is a feature with an optional geometry.
type Placemark struct {
	feature
	geometry Geometry
}

// NewPlacemark creates an empty <Placemark> element.
func NewPlacemark() *Placemark {
	p := &Placemark{}
	p.initElement(TypePlacemark, p)
	return p
}

func (p *Placemark) IsA(t KmlDomType) bool {
	return t == TypePlacemark || p.feature.IsA(t)
}

// SetGeometry installs g as this placemark's geometry, releasing any
// previous one. A nil g clears the slot.
func (p *Placemark) SetGeometry(g Geometry) bool {
	return SetComplexChild(p.owner(), g, &p.geometry)
}

func (p *Placemark) HasGeometry() bool  { return p.geometry != nil }
func (p *Placemark) Geometry() Geometry { return p.geometry }

func (p *Placemark) AddElement(child Element) {
	if child == nil {
		return
	}
	if child.IsA(TypeGeometry) {
		if p.SetGeometry(child.(Geometry)) {
			return
		}
	}
	p.feature.AddElement(child)
}

func (p *Placemark) Serialize(s Serializer) {
	attrs := base.NewAttributes()
	p.GetAttributes(attrs)
	s.BeginElement(TypePlacemark, attrs)
	p.serializeFields(s)
	if p.geometry != nil {
		s.SaveElement(p.geometry)
	}
	p.SerializeUnknown(s)
	s.EndElement(TypePlacemark)
}
