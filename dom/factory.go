package dom

// CreateElementByID returns a fresh element for a complex schema type
// id, or nil if the id does not name a complex element. The parser uses
// this to turn start tags into typed nodes.
func CreateElementByID(id KmlDomType) Element {
	switch id {
	case TypeKml:
		return NewKml()
	case TypeDocument:
		return NewDocument()
	case TypeFolder:
		return NewFolder()
	case TypePlacemark:
		return NewPlacemark()
	case TypePoint:
		return NewPoint()
	case TypeLineString:
		return NewLineString()
	case TypeCoordinates:
		return NewCoordinates()
	}
	return nil
}

// CreateFieldByID returns a fresh Field for a simple schema type id,
// or nil for anything else.
func CreateFieldByID(id KmlDomType) *Field {
	if GetXsd().ElementKind(id) != KindSimple {
		return nil
	}
	return NewField(id)
}
