package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Aaron Blanchard

*/

import (
	"strings"

	"github.com/aaronblanchard/libkml/base"
)

// Element is the node abstraction of the KML object model. Every node
// of a parsed tree satisfies this interface, be it a concrete schema
// element, a transient Field, or the shared base.
//
// The parse-time protocol (AddElement, AddUnknownElement,
// ParseAttributes, SetCharData, SetDefaultXMLNS) is driven by the
// parser; the serialize-time protocol (Serialize, SerializeUnknown,
// GetAttributes) is driven by a Serializer. The five typed-value
// extraction methods are how a parent element claims a child Field's
// scalar without a type switch; on anything that is not a Field they
// fail.
type Element interface {
	// Type returns the immutable schema type id of this element.
	Type() KmlDomType
	// IsA reports whether this element is assignable to the given
	// schema type, walking the element's is-a ancestry. The shared
	// base only admits TypeUnknown.
	IsA(t KmlDomType) bool

	// Parent returns the owning element, or nil for a root.
	Parent() Element
	// SetParent records the owner of this element. It fails if a
	// parent was already set, or if parent is this element itself.
	// On failure the element is left unchanged.
	SetParent(parent Element) bool

	CharData() string
	SetCharData(chardata string)
	DefaultXMLNS() string
	SetDefaultXMLNS(xmlns string)

	// AddElement offers a parsed child to this element. Concrete types
	// claim the children they understand and delegate everything else
	// up their embedding chain; the shared base is the terminal handler
	// and absorbs the child into the misplaced-elements bucket.
	AddElement(child Element)
	// AddUnknownElement preserves a completely unrecognized raw markup
	// fragment for later re-serialization.
	AddUnknownElement(raw string)

	// ParseAttributes lets each type of the embedding chain claim the
	// attributes it knows; the shared base preserves the remainder.
	ParseAttributes(attrs *base.Attributes)
	// GetAttributes is the serialize-time inverse of ParseAttributes:
	// each type writes its known attributes and the base re-emits the
	// preserved unknown ones.
	GetAttributes(attrs *base.Attributes)

	// Serialize emits this element through the given serializer. The
	// shared base emits nothing.
	Serialize(s Serializer)
	// SerializeUnknown emits preserved character data, unknown raw
	// fragments and misplaced elements. Concrete types call this near
	// the end of their own Serialize.
	SerializeUnknown(s Serializer)

	// Typed-value extraction. Field overrides these; the base versions
	// always fail, reflecting that a structural node holds no scalar.
	SetBool(val *bool) bool
	SetDouble(val *float64) bool
	SetInt(val *int) bool
	SetEnum(val *int) bool
	SetString(val *string) bool

	// UnknownElements returns the preserved raw markup fragments, in
	// encounter order.
	UnknownElements() []string
	// MisplacedElements returns the preserved schema-known elements
	// found in illegal positions, in encounter order.
	MisplacedElements() []Element
}

// BasicElement is the shared implementation every element type embeds.
// It holds identity, tree linkage, collected character data and the
// three recovery buckets for unrecognized input. BasicElement is the
// terminal handler of the AddElement and ParseAttributes delegation
// chains.
type BasicElement struct {
	self         Element // outermost instance, installed by initElement
	typeID       KmlDomType
	defaultXMLNS string
	parent       Element // non-owning; never an owning reference, to rule out cycles
	chardata     string

	// Completely unknown markup, in raw form.
	unknownElements []string
	// Schema-known elements found in illegal positions,
	// e.g. <Placemark><Document>.
	unknownLegalElements []Element
	// Unknown attributes are preserved in a lazily allocated bag so
	// the common fully-recognized element carries no empty Attributes.
	unknownAttributes *base.Attributes
}

// initElement stamps the element with its type id and links the
// embedding instance, so that parent back-references and delegation
// from the base reach the outermost type. Every constructor in this
// package calls it.
func (e *BasicElement) initElement(id KmlDomType, self Element) {
	e.typeID = id
	e.self = self
}

// owner returns the outermost instance embedding this base.
func (e *BasicElement) owner() Element {
	if e.self != nil {
		return e.self
	}
	return e
}

// Type returns the immutable schema type id of this element.
func (e *BasicElement) Type() KmlDomType {
	return e.typeID
}

// IsA reports whether this element is assignable to the given schema
// type. The base is only assignable to TypeUnknown; every concrete
// type additionally reports its own identity and its ancestors.
func (e *BasicElement) IsA(t KmlDomType) bool {
	return t == TypeUnknown
}

// Parent returns the owning element, or nil for a root.
func (e *BasicElement) Parent() Element {
	return e.parent
}

// SetParent records the owner of this element. To directly mirror XML,
// an element has exactly one parent: the call fails if a parent was
// already set, or if parent is the element itself. This is the single
// enforcement point which keeps the tree acyclic.
func (e *BasicElement) SetParent(parent Element) bool {
	if e.parent != nil || parent == nil {
		return false
	}
	if parent == e.owner() {
		return false
	}
	e.parent = parent
	return true
}

// CharData returns the concatenation of all character data found while
// parsing this element.
func (e *BasicElement) CharData() string {
	return e.chardata
}

func (e *BasicElement) SetCharData(chardata string) {
	e.chardata = chardata
}

// DefaultXMLNS returns the default xmlns= of this element, if any.
func (e *BasicElement) DefaultXMLNS() string {
	return e.defaultXMLNS
}

func (e *BasicElement) SetDefaultXMLNS(xmlns string) {
	e.defaultXMLNS = xmlns
}

// AddElement is the terminal handler of the recognition chain: a child
// no type in the embedding chain claimed ends up here and is absorbed
// into the misplaced-elements bucket, ownership transferred. Nothing
// that reaches the base is dropped.
func (e *BasicElement) AddElement(child Element) {
	if child == nil {
		return
	}
	if !child.SetParent(e.owner()) {
		tracer().Errorf("misplaced <%s> already owned, cannot preserve it", child.Type())
		return
	}
	tracer().Debugf("preserving misplaced <%s> under <%s>", child.Type(), e.typeID)
	e.unknownLegalElements = append(e.unknownLegalElements, child)
}

// AddUnknownElement preserves a raw markup fragment the parser could
// not map to any schema type.
func (e *BasicElement) AddUnknownElement(raw string) {
	tracer().Debugf("preserving unknown markup under <%s>", e.typeID)
	e.unknownElements = append(e.unknownElements, raw)
}

// ParseAttributes is the terminal sink of the attribute recognition
// chain: whatever attributes no type in the embedding chain claimed are
// preserved for re-serialization.
func (e *BasicElement) ParseAttributes(attrs *base.Attributes) {
	if attrs.Len() == 0 {
		return
	}
	if e.unknownAttributes == nil {
		e.unknownAttributes = base.NewAttributes()
	}
	e.unknownAttributes.MergeIn(attrs)
}

// GetAttributes re-emits the default xmlns and the preserved unknown
// attributes, completing the round trip which ParseAttributes started.
func (e *BasicElement) GetAttributes(attrs *base.Attributes) {
	if attrs == nil {
		return
	}
	if e.defaultXMLNS != "" {
		attrs.Set("xmlns", e.defaultXMLNS)
	}
	attrs.MergeIn(e.unknownAttributes)
}

// Serialize emits nothing: the base has no structure of its own.
func (e *BasicElement) Serialize(s Serializer) {}

// SerializeUnknown emits preserved character data, then the unknown
// raw fragments, then the misplaced elements, each bucket in encounter
// order. Callers must not rely on the relative order of the buckets.
// Whitespace-only character data, as collected between the child tags
// of indented markup, is not re-emitted.
func (e *BasicElement) SerializeUnknown(s Serializer) {
	if strings.TrimSpace(e.chardata) != "" {
		s.SaveContent(escapeXML(e.chardata))
	}
	for _, raw := range e.unknownElements {
		s.SaveContent(raw)
	}
	for _, misplaced := range e.unknownLegalElements {
		s.SaveElement(misplaced)
	}
}

// UnknownElements returns the preserved raw markup fragments, in
// encounter order.
func (e *BasicElement) UnknownElements() []string {
	return e.unknownElements
}

// MisplacedElements returns the preserved misplaced elements, in
// encounter order.
func (e *BasicElement) MisplacedElements() []Element {
	return e.unknownLegalElements
}

// The typed-value extraction protocol. A structural element holds no
// scalar, so the base fails all five; Field overrides them.

func (e *BasicElement) SetBool(val *bool) bool { return false }

func (e *BasicElement) SetDouble(val *float64) bool { return false }

func (e *BasicElement) SetInt(val *int) bool { return false }

func (e *BasicElement) SetEnum(val *int) bool { return false }

func (e *BasicElement) SetString(val *string) bool { return false }

// childElement constrains the generic attach helpers to element types
// comparable against their zero value: pointers to concrete elements,
// or one of the element interfaces.
type childElement interface {
	Element
	comparable
}

// SetComplexChild installs child as the single-child slot *slot of
// parent. A zero child clears the slot, releasing any previous
// occupant. Otherwise the child is installed iff its parent could be
// set; on failure the slot is left untouched. Concrete types implement
// their SetFoo methods with this helper.
func SetComplexChild[T childElement](parent Element, child T, slot *T) bool {
	var none T
	if child == none {
		*slot = none
		return true
	}
	if child.SetParent(parent) {
		*slot = child
		return true
	}
	return false
}

// AddComplexChild appends child to the child collection *array of
// parent. A zero child is a silent no-op. Otherwise the child is
// appended iff its parent could be set; on failure the collection is
// left untouched. Concrete types implement their AddFoo methods with
// this helper.
func AddComplexChild[T childElement](parent Element, child T, array *[]T) bool {
	var none T
	if child == none {
		return true
	}
	if child.SetParent(parent) {
		*array = append(*array, child)
		return true
	}
	return false
}
