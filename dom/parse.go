package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Aaron Blanchard

*/

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aaronblanchard/libkml/base"
)

// ErrNoElements is returned by Parse if the input holds no schema-known
// root element.
var ErrNoElements = errors.New("no known elements found in input")

// Parse reads XML from r and builds the element tree for it. Input the
// schema does not recognize never fails the parse: unknown subtrees and
// attributes are preserved on the nearest enclosing known element, and
// known elements in illegal positions are kept as misplaced children.
// Parse fails only on malformed XML or on input without any
// schema-known root.
func Parse(r io.Reader) (Element, error) {
	h := &parseHandler{xsd: GetXsd()}
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed markup: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			h.startElement(t)
		case xml.EndElement:
			h.endElement(t)
		case xml.CharData:
			h.charData(string(t))
		}
	}
	if h.root == nil {
		return nil, ErrNoElements
	}
	return h.root, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (Element, error) {
	return Parse(strings.NewReader(s))
}

// parseHandler is the SAX-style bridge between the XML tokenizer and
// the element tree: it matches tags against the schema registry, keeps
// the stack of open elements, and routes each completed child through
// its parent's AddElement. Subtrees rooted at a tag the schema does not
// know at all are re-rendered to raw markup and preserved through
// AddUnknownElement.
type parseHandler struct {
	xsd   *Xsd
	stack []*parseFrame
	root  Element

	// namespace declarations in scope, one frame per open element
	ns []map[string]string

	// state of an unknown-subtree capture; rawDepth > 0 while inside
	raw      strings.Builder
	rawDepth int
}

type parseFrame struct {
	elem  Element
	chars strings.Builder
}

func (h *parseHandler) top() *parseFrame {
	if len(h.stack) == 0 {
		return nil
	}
	return h.stack[len(h.stack)-1]
}

func (h *parseHandler) push(e Element) {
	h.stack = append(h.stack, &parseFrame{elem: e})
}

func (h *parseHandler) pop() *parseFrame {
	frame := h.top()
	if frame != nil {
		h.stack = h.stack[:len(h.stack)-1]
	}
	return frame
}

func (h *parseHandler) startElement(t xml.StartElement) {
	h.pushNS(t.Attr)
	id := h.xsd.ElementID(t.Name.Local)
	kind := h.xsd.ElementKind(id)
	if h.rawDepth > 0 || (kind != KindComplex && kind != KindSimple) {
		// Inside or at the root of a completely unknown subtree.
		if h.rawDepth == 0 {
			h.raw.Reset()
			tracer().Debugf("capturing unknown element <%s>", t.Name.Local)
		}
		h.writeRawStart(t)
		h.rawDepth++
		return
	}
	attrs, xmlns := h.convertAttrs(t.Attr)
	var elem Element
	if kind == KindComplex {
		elem = CreateElementByID(id)
	} else {
		elem = NewField(id)
	}
	if xmlns != "" {
		elem.SetDefaultXMLNS(xmlns)
	}
	elem.ParseAttributes(attrs)
	h.push(elem)
}

func (h *parseHandler) endElement(t xml.EndElement) {
	defer h.popNS()
	if h.rawDepth > 0 {
		h.writeRawEnd(t)
		h.rawDepth--
		if h.rawDepth == 0 {
			if top := h.top(); top != nil {
				top.elem.AddUnknownElement(h.raw.String())
			} else {
				tracer().Infof("unknown root element <%s>, nothing to preserve it on",
					t.Name.Local)
			}
		}
		return
	}
	frame := h.pop()
	if frame == nil {
		return
	}
	frame.elem.SetCharData(frame.chars.String())
	if parent := h.top(); parent != nil {
		parent.elem.AddElement(frame.elem)
	} else if h.root == nil {
		h.root = frame.elem
	} else {
		tracer().Infof("dropping extra root element <%s>", frame.elem.Type())
	}
}

func (h *parseHandler) charData(s string) {
	if h.rawDepth > 0 {
		h.raw.WriteString(escapeXML(s))
		return
	}
	if top := h.top(); top != nil {
		top.chars.WriteString(s)
	}
}

func (h *parseHandler) writeRawStart(t xml.StartElement) {
	h.raw.WriteByte('<')
	h.raw.WriteString(h.qualifyName(t.Name))
	for _, a := range t.Attr {
		h.raw.WriteByte(' ')
		h.raw.WriteString(h.qualifyName(a.Name))
		h.raw.WriteString(`="`)
		h.raw.WriteString(escapeXML(a.Value))
		h.raw.WriteByte('"')
	}
	h.raw.WriteByte('>')
}

func (h *parseHandler) writeRawEnd(t xml.EndElement) {
	h.raw.WriteString("</")
	h.raw.WriteString(h.qualifyName(t.Name))
	h.raw.WriteByte('>')
}

// pushNS opens a namespace scope, recording the prefix and default
// xmlns declarations of a start tag. Every start tag pushes a frame,
// with or without declarations, so scopes close in step with elements.
func (h *parseHandler) pushNS(xattrs []xml.Attr) {
	var decls map[string]string
	declare := func(uri, prefix string) {
		if decls == nil {
			decls = make(map[string]string)
		}
		decls[uri] = prefix
	}
	for _, a := range xattrs {
		if a.Name.Space == "xmlns" {
			declare(a.Value, a.Name.Local)
		} else if a.Name.Space == "" && a.Name.Local == "xmlns" {
			declare(a.Value, "")
		}
	}
	h.ns = append(h.ns, decls)
}

func (h *parseHandler) popNS() {
	if len(h.ns) > 0 {
		h.ns = h.ns[:len(h.ns)-1]
	}
}

// prefixFor resolves a namespace URI to the innermost prefix bound to
// it. An empty prefix denotes the default namespace.
func (h *parseHandler) prefixFor(uri string) (string, bool) {
	for i := len(h.ns) - 1; i >= 0; i-- {
		if prefix, ok := h.ns[i][uri]; ok {
			return prefix, true
		}
	}
	return "", false
}

// qualifyName maps a decoded name back to the form the markup used.
// The tokenizer resolves declared prefixes to their namespace URI, so
// re-rendering a name must translate the URI back to its in-scope
// prefix; emitting the URI would not be well-formed XML. An
// unresolvable Space is the undeclared prefix itself and passes
// through.
func (h *parseHandler) qualifyName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	if prefix, ok := h.prefixFor(n.Space); ok {
		if prefix == "" {
			return n.Local
		}
		return prefix + ":" + n.Local
	}
	return n.Space + ":" + n.Local
}

// convertAttrs turns the tokenizer's attribute list into an ordered
// bag, splitting off a default xmlns= declaration. The bag stays nil
// for the common attribute-free element.
func (h *parseHandler) convertAttrs(xattrs []xml.Attr) (attrs *base.Attributes, xmlns string) {
	for _, a := range xattrs {
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			xmlns = a.Value
			continue
		}
		if attrs == nil {
			attrs = base.NewAttributes()
		}
		attrs.Set(h.qualifyName(a.Name), a.Value)
	}
	return attrs, xmlns
}
