/*
Package balloon extracts the text a feature's description balloon would
display. KML descriptions routinely carry HTML markup; Text parses it
and returns the concatenated character data of the markup's text nodes.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Aaron Blanchard
*/
package balloon

import (
	"strings"

	"github.com/aaronblanchard/libkml/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces to 'kml.balloon'.
func tracer() tracing.Trace {
	return tracing.Select("kml.balloon")
}

// Text parses description as HTML and returns the concatenated text
// content of the markup, with runs of whitespace collapsed. Plain text
// descriptions pass through unchanged (modulo whitespace collapsing).
func Text(description string) (string, error) {
	doc, err := html.Parse(strings.NewReader(description))
	if err != nil {
		return "", err
	}
	var text strings.Builder
	collectText(doc, &text)
	return strings.Join(strings.Fields(text.String()), " "), nil
}

// FeatureText returns the balloon text of f's description, or "" if f
// has no description.
func FeatureText(f dom.Feature) (string, error) {
	if f == nil || !f.HasDescription() {
		return "", nil
	}
	tracer().Debugf("extracting balloon text of feature <%s>", f.Type())
	return Text(f.Description())
}

func collectText(n *html.Node, text *strings.Builder) {
	if n.Type == html.TextNode {
		text.WriteString(n.Data)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, text)
	}
}
