package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Aaron Blanchard

*/

import (
	"encoding/xml"
	"strings"

	"github.com/aaronblanchard/libkml/base"
)

// Serializer receives a tree walk driven by Element.Serialize. The
// concrete elements guarantee call order (begin, own fields and
// children, preserved unknown content, end) while the serializer
// decides how to render each call. Package domdbg shows a non-XML
// implementation.
type Serializer interface {
	// BeginElement opens the element with the given type id. attrs may
	// be nil or empty.
	BeginElement(id KmlDomType, attrs *base.Attributes)
	// EndElement closes the element opened by the matching
	// BeginElement.
	EndElement(id KmlDomType)
	// SaveStringField emits a simple element with the given character
	// data.
	SaveStringField(id KmlDomType, value string)
	// SaveBoolField emits a simple element with a boolean value.
	SaveBoolField(id KmlDomType, value bool)
	// SaveContent emits preserved raw markup or scalar content
	// verbatim.
	SaveContent(content string)
	// SaveElement emits a complex child element.
	SaveElement(child Element)
}

// SerializeRaw renders the tree under root as XML without any
// formatting whitespace.
func SerializeRaw(root Element) string {
	s := &xmlSerializer{}
	s.SaveElement(root)
	return s.buf.String()
}

// SerializePretty renders the tree under root as XML, one element per
// line, nested elements indented by two spaces.
func SerializePretty(root Element) string {
	s := &xmlSerializer{indent: "  "}
	s.SaveElement(root)
	return s.buf.String()
}

// xmlSerializer renders the serialization walk as XML text. An element
// which produced no content between its begin and end collapses to the
// short <tag/> form.
type xmlSerializer struct {
	buf     strings.Builder
	indent  string // "" renders without formatting whitespace
	depth   int
	tagOpen bool // "<tag …" written, '>' still pending
}

func (s *xmlSerializer) pretty() bool {
	return s.indent != ""
}

// closePending completes a pending open tag before further content is
// written into the element.
func (s *xmlSerializer) closePending() {
	if !s.tagOpen {
		return
	}
	s.buf.WriteByte('>')
	if s.pretty() {
		s.buf.WriteByte('\n')
	}
	s.tagOpen = false
}

func (s *xmlSerializer) writeIndent() {
	if !s.pretty() {
		return
	}
	for i := 0; i < s.depth; i++ {
		s.buf.WriteString(s.indent)
	}
}

func (s *xmlSerializer) BeginElement(id KmlDomType, attrs *base.Attributes) {
	s.closePending()
	s.writeIndent()
	s.buf.WriteByte('<')
	s.buf.WriteString(GetXsd().ElementName(id))
	for _, key := range attrs.Keys() {
		value, _ := attrs.Get(key)
		s.buf.WriteByte(' ')
		s.buf.WriteString(key)
		s.buf.WriteString(`="`)
		s.buf.WriteString(escapeXML(value))
		s.buf.WriteByte('"')
	}
	s.tagOpen = true
	s.depth++
}

func (s *xmlSerializer) EndElement(id KmlDomType) {
	s.depth--
	if s.tagOpen {
		// Nothing was written into the element.
		s.buf.WriteString("/>")
		s.tagOpen = false
	} else {
		s.writeIndent()
		s.buf.WriteString("</")
		s.buf.WriteString(GetXsd().ElementName(id))
		s.buf.WriteByte('>')
	}
	if s.pretty() {
		s.buf.WriteByte('\n')
	}
}

func (s *xmlSerializer) SaveStringField(id KmlDomType, value string) {
	s.closePending()
	s.writeIndent()
	name := GetXsd().ElementName(id)
	s.buf.WriteByte('<')
	s.buf.WriteString(name)
	s.buf.WriteByte('>')
	s.buf.WriteString(escapeXML(value))
	s.buf.WriteString("</")
	s.buf.WriteString(name)
	s.buf.WriteByte('>')
	if s.pretty() {
		s.buf.WriteByte('\n')
	}
}

func (s *xmlSerializer) SaveBoolField(id KmlDomType, value bool) {
	if value {
		s.SaveStringField(id, "1")
	} else {
		s.SaveStringField(id, "0")
	}
}

func (s *xmlSerializer) SaveContent(content string) {
	s.closePending()
	s.writeIndent()
	s.buf.WriteString(content)
	if s.pretty() {
		s.buf.WriteByte('\n')
	}
}

func (s *xmlSerializer) SaveElement(child Element) {
	if child == nil {
		return
	}
	s.closePending()
	child.Serialize(s)
}

func escapeXML(value string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(value)); err != nil {
		tracer().Errorf("cannot escape %q: %v", value, err)
		return value
	}
	return sb.String()
}
