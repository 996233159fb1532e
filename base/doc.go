/*
Package base provides foundation types for the KML object model:
an insertion-ordered attribute bag and the Vec3 coordinate tuple.
The types in this package know nothing about the KML schema; they
are consumed by package dom and by clients which inspect preserved
unknown attributes.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Aaron Blanchard
*/
package base

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'kml.base'.
func tracer() tracing.Trace {
	return tracing.Select("kml.base")
}
