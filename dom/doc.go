/*
Package dom implements the KML Document Object Model.

# Overview

The model is built around a single node abstraction: every KML element,
known or unknown, is an Element. Schema-known complex elements (Placemark,
Document, …) are concrete Go types which embed the shared BasicElement
struct, and simple elements are held during parsing by the transient
Field type. The model is lossless: markup the parser does not recognize
(unknown elements, known elements in illegal positions, unknown
attributes) is preserved on the nearest enclosing element and re-emitted
on serialization.

# Subtyping

KML models an is-a hierarchy (Placemark is-a Feature is-a Object). In a
fully object oriented language this would be class inheritance with
virtual dispatch; in Go we resort to composition, embedding each abstract
base struct in its derivations and delegating explicitly up the embedding
chain for the parse and serialize protocols (AddElement, ParseAttributes,
GetAttributes, IsA). The capability predicate IsA is the only sanctioned
way to narrow an Element to a concrete type.

# Ownership

Each element owns its children exclusively and holds a non-owning
reference to its parent. A parent is set at most once and never to the
element itself, which makes ownership cycles structurally impossible.
The tree is not safe for concurrent mutation; after parsing has finished
feeding it, read-only traversal is safe from any number of goroutines.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Aaron Blanchard
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'kml.dom'.
func tracer() tracing.Trace {
	return tracing.Select("kml.dom")
}
