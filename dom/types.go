package dom

// KmlDomType identifies the schema type of a DOM node. Every Element
// carries exactly one type id, assigned at construction and immutable
// thereafter. TypeUnknown is the identity of the shared base and the
// answer BasicElement gives to IsA.
type KmlDomType int

const (
	TypeUnknown KmlDomType = iota

	// Abstract bases of the is-a hierarchy. No element is constructed
	// with one of these ids; they exist for IsA queries.
	TypeObject
	TypeFeature
	TypeContainer
	TypeGeometry

	// Complex elements.
	TypeKml
	TypeDocument
	TypeFolder
	TypePlacemark
	TypePoint
	TypeLineString
	TypeCoordinates

	// Simple elements, held by a Field during parsing.
	TypeName
	TypeVisibility
	TypeOpen
	TypeAddress
	TypeDescription
	TypeStyleURL
	TypeSnippet
	TypeExtrude
	TypeTessellate
	TypeAltitudeMode
)

// Values of the altitudeMode enumeration.
const (
	AltitudeModeClampToGround = iota
	AltitudeModeRelativeToGround
	AltitudeModeAbsolute
)

func (t KmlDomType) String() string {
	if name := GetXsd().ElementName(t); name != "" {
		return name
	}
	return "Unknown"
}
