package dom

import (
	"strings"

	"github.com/aaronblanchard/libkml/base"
)

// Geometry is the capability interface of all KML geometry elements
// (Point, LineString). A Geometry answers IsA(TypeGeometry).
type Geometry interface {
	Element
	HasExtrude() bool
	Extrude() bool
	SetExtrude(extrude bool)
	HasAltitudeMode() bool
	AltitudeMode() int
	SetAltitudeMode(altitudeMode int)
}

// geometry implements the simple fields shared by all geometries.
type geometry struct {
	object
	extrude         bool
	hasExtrude      bool
	altitudeMode    int
	hasAltitudeMode bool
}

func (g *geometry) IsA(t KmlDomType) bool {
	return t == TypeGeometry || g.object.IsA(t)
}

func (g *geometry) AddElement(child Element) {
	if child == nil {
		return
	}
	switch child.Type() {
	case TypeExtrude:
		if child.SetBool(&g.extrude) {
			g.hasExtrude = true
			return
		}
	case TypeAltitudeMode:
		if child.SetEnum(&g.altitudeMode) {
			g.hasAltitudeMode = true
			return
		}
	}
	g.object.AddElement(child)
}

func (g *geometry) HasExtrude() bool { return g.hasExtrude }
func (g *geometry) Extrude() bool    { return g.extrude }
func (g *geometry) SetExtrude(extrude bool) {
	g.extrude, g.hasExtrude = extrude, true
}

func (g *geometry) HasAltitudeMode() bool { return g.hasAltitudeMode }
func (g *geometry) AltitudeMode() int     { return g.altitudeMode }
func (g *geometry) SetAltitudeMode(altitudeMode int) {
	g.altitudeMode, g.hasAltitudeMode = altitudeMode, true
}

func (g *geometry) serializeExtrude(s Serializer) {
	if g.hasExtrude {
		s.SaveBoolField(TypeExtrude, g.extrude)
	}
}

func (g *geometry) serializeAltitudeMode(s Serializer) {
	if g.hasAltitudeMode {
		s.SaveStringField(TypeAltitudeMode,
			GetXsd().EnumValue(TypeAltitudeMode, g.altitudeMode))
	}
}

// Coordinates holds the coordinate tuples of a geometry. The element
// is complex in the schema but scalar in content: its character data is
// a whitespace-separated list of lon,lat[,alt] tuples, decoded as the
// data arrives.
type Coordinates struct {
	BasicElement
	coords []base.Vec3
}

// NewCoordinates creates an empty <coordinates> element.
func NewCoordinates() *Coordinates {
	c := &Coordinates{}
	c.initElement(TypeCoordinates, c)
	return c
}

func (c *Coordinates) IsA(t KmlDomType) bool {
	return t == TypeCoordinates || c.BasicElement.IsA(t)
}

// SetCharData stores the raw character data and decodes the coordinate
// tuples from it. Malformed tuples are skipped.
func (c *Coordinates) SetCharData(chardata string) {
	c.BasicElement.SetCharData(chardata)
	c.coords = base.ParseVec3Tuples(chardata)
}

// Len returns the number of coordinate tuples.
func (c *Coordinates) Len() int {
	return len(c.coords)
}

// At returns the i-th coordinate tuple.
func (c *Coordinates) At(i int) base.Vec3 {
	return c.coords[i]
}

// Add appends a coordinate tuple.
func (c *Coordinates) Add(v base.Vec3) {
	c.coords = append(c.coords, v)
}

// AddLatLngAlt appends a coordinate tuple given in the common
// latitude-first argument order.
func (c *Coordinates) AddLatLngAlt(lat, lng, alt float64) {
	c.Add(base.Vec3{Longitude: lng, Latitude: lat, Altitude: alt})
}

func (c *Coordinates) Serialize(s Serializer) {
	attrs := base.NewAttributes()
	c.GetAttributes(attrs)
	s.BeginElement(TypeCoordinates, attrs)
	// Parsed character data is re-emitted through SerializeUnknown;
	// tuples added programmatically have none and are formatted here.
	if strings.TrimSpace(c.CharData()) == "" && len(c.coords) > 0 {
		tuples := make([]string, len(c.coords))
		for i, v := range c.coords {
			tuples[i] = v.String()
		}
		s.SaveContent(strings.Join(tuples, " "))
	}
	c.SerializeUnknown(s)
	s.EndElement(TypeCoordinates)
}

// Point is a single-position geometry.
type Point struct {
	geometry
	coordinates *Coordinates
}

// NewPoint creates an empty <Point> element.
func NewPoint() *Point {
	p := &Point{}
	p.initElement(TypePoint, p)
	return p
}

func (p *Point) IsA(t KmlDomType) bool {
	return t == TypePoint || p.geometry.IsA(t)
}

// SetCoordinates installs c as this point's coordinates, releasing any
// previous ones. A nil c clears the slot.
func (p *Point) SetCoordinates(c *Coordinates) bool {
	return SetComplexChild(p.owner(), c, &p.coordinates)
}

func (p *Point) HasCoordinates() bool      { return p.coordinates != nil }
func (p *Point) Coordinates() *Coordinates { return p.coordinates }

func (p *Point) AddElement(child Element) {
	if child == nil {
		return
	}
	if child.IsA(TypeCoordinates) {
		if p.SetCoordinates(child.(*Coordinates)) {
			return
		}
	}
	p.geometry.AddElement(child)
}

func (p *Point) Serialize(s Serializer) {
	attrs := base.NewAttributes()
	p.GetAttributes(attrs)
	s.BeginElement(TypePoint, attrs)
	p.serializeExtrude(s)
	p.serializeAltitudeMode(s)
	if p.coordinates != nil {
		s.SaveElement(p.coordinates)
	}
	p.SerializeUnknown(s)
	s.EndElement(TypePoint)
}

// LineString is a connected set of positions.
type LineString struct {
	geometry
	tessellate    bool
	hasTessellate bool
	coordinates   *Coordinates
}

// NewLineString creates an empty <LineString> element.
func NewLineString() *LineString {
	l := &LineString{}
	l.initElement(TypeLineString, l)
	return l
}

func (l *LineString) IsA(t KmlDomType) bool {
	return t == TypeLineString || l.geometry.IsA(t)
}

func (l *LineString) HasTessellate() bool { return l.hasTessellate }
func (l *LineString) Tessellate() bool    { return l.tessellate }
func (l *LineString) SetTessellate(tessellate bool) {
	l.tessellate, l.hasTessellate = tessellate, true
}

// SetCoordinates installs c as this line's coordinates, releasing any
// previous ones. A nil c clears the slot.
func (l *LineString) SetCoordinates(c *Coordinates) bool {
	return SetComplexChild(l.owner(), c, &l.coordinates)
}

func (l *LineString) HasCoordinates() bool      { return l.coordinates != nil }
func (l *LineString) Coordinates() *Coordinates { return l.coordinates }

func (l *LineString) AddElement(child Element) {
	if child == nil {
		return
	}
	if child.IsA(TypeCoordinates) {
		if l.SetCoordinates(child.(*Coordinates)) {
			return
		}
	}
	if child.Type() == TypeTessellate {
		if child.SetBool(&l.tessellate) {
			l.hasTessellate = true
			return
		}
	}
	l.geometry.AddElement(child)
}

func (l *LineString) Serialize(s Serializer) {
	attrs := base.NewAttributes()
	l.GetAttributes(attrs)
	s.BeginElement(TypeLineString, attrs)
	l.serializeExtrude(s)
	if l.hasTessellate {
		s.SaveBoolField(TypeTessellate, l.tessellate)
	}
	l.serializeAltitudeMode(s)
	if l.coordinates != nil {
		s.SaveElement(l.coordinates)
	}
	l.SerializeUnknown(s)
	s.EndElement(TypeLineString)
}
