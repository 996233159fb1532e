package dom

// ElementKind classifies a schema type id.
type ElementKind int

const (
	KindUnknown  ElementKind = iota
	KindAbstract             // base of the is-a hierarchy, never instantiated
	KindComplex              // element with attributes and child elements
	KindSimple               // element whose content is a single scalar
)

// Xsd is the schema registry: it maps element names to type ids and
// back, classifies each type id, and resolves the lexical values of
// enumerated simple types. The Field specialization consults it for
// enum conversion; the parser consults it to decide what to construct
// for a start tag.
type Xsd struct {
	names map[KmlDomType]string
	ids   map[string]KmlDomType
	kinds map[KmlDomType]ElementKind
	enums map[KmlDomType][]string
}

type xsdEntry struct {
	id   KmlDomType
	name string
	kind ElementKind
}

var xsdSchema = buildXsd([]xsdEntry{
	{TypeObject, "Object", KindAbstract},
	{TypeFeature, "Feature", KindAbstract},
	{TypeContainer, "Container", KindAbstract},
	{TypeGeometry, "Geometry", KindAbstract},
	{TypeKml, "kml", KindComplex},
	{TypeDocument, "Document", KindComplex},
	{TypeFolder, "Folder", KindComplex},
	{TypePlacemark, "Placemark", KindComplex},
	{TypePoint, "Point", KindComplex},
	{TypeLineString, "LineString", KindComplex},
	{TypeCoordinates, "coordinates", KindComplex},
	{TypeName, "name", KindSimple},
	{TypeVisibility, "visibility", KindSimple},
	{TypeOpen, "open", KindSimple},
	{TypeAddress, "address", KindSimple},
	{TypeDescription, "description", KindSimple},
	{TypeStyleURL, "styleUrl", KindSimple},
	{TypeSnippet, "snippet", KindSimple},
	{TypeExtrude, "extrude", KindSimple},
	{TypeTessellate, "tessellate", KindSimple},
	{TypeAltitudeMode, "altitudeMode", KindSimple},
})

func buildXsd(entries []xsdEntry) *Xsd {
	x := &Xsd{
		names: make(map[KmlDomType]string),
		ids:   make(map[string]KmlDomType),
		kinds: make(map[KmlDomType]ElementKind),
		enums: map[KmlDomType][]string{
			TypeAltitudeMode: {"clampToGround", "relativeToGround", "absolute"},
		},
	}
	for _, e := range entries {
		x.names[e.id] = e.name
		x.kinds[e.id] = e.kind
		if e.kind == KindComplex || e.kind == KindSimple {
			// Abstract bases never appear as tags in markup.
			x.ids[e.name] = e.id
		}
	}
	return x
}

// GetXsd returns the schema registry singleton.
func GetXsd() *Xsd {
	return xsdSchema
}

// ElementName returns the tag name for a type id, or "" if the id is
// not part of the schema.
func (x *Xsd) ElementName(id KmlDomType) string {
	return x.names[id]
}

// ElementID returns the type id for a tag name, or TypeUnknown if the
// name is not part of the schema.
func (x *Xsd) ElementID(name string) KmlDomType {
	if id, ok := x.ids[name]; ok {
		return id
	}
	return TypeUnknown
}

// ElementKind classifies a type id.
func (x *Xsd) ElementKind(id KmlDomType) ElementKind {
	return x.kinds[id]
}

// EnumID resolves the lexical value of an enumerated simple type to its
// ordinal. It returns -1 if id is not an enumerated type or value is
// not one of its lexical values.
func (x *Xsd) EnumID(id KmlDomType, value string) int {
	for i, v := range x.enums[id] {
		if v == value {
			return i
		}
	}
	return -1
}

// EnumValue is the inverse of EnumID. It returns "" for an ordinal
// outside the enumeration.
func (x *Xsd) EnumValue(id KmlDomType, ordinal int) string {
	values := x.enums[id]
	if ordinal < 0 || ordinal >= len(values) {
		return ""
	}
	return values[ordinal]
}
