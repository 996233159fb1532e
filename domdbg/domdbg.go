/*
Package domdbg implements helpers to debug a KML element tree.

The tree rendering is driven through the dom.Serializer protocol, so
whatever an element would contribute to its XML serialization (known
fields, child elements, preserved unknown markup and misplaced
elements) shows up in the dump, one branch per element.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Aaron Blanchard
*/
package domdbg

import (
	"fmt"
	"strings"

	"github.com/aaronblanchard/libkml/base"
	"github.com/aaronblanchard/libkml/dom"
	tp "github.com/xlab/treeprint"
)

// Tree renders the element tree under root as an ASCII tree diagram,
// suitable for t.Logf during tests.
func Tree(root dom.Element) string {
	p := tp.New()
	s := &treeSerializer{branches: []tp.Tree{p}}
	s.SaveElement(root)
	return p.String()
}

// treeSerializer renders the serialization walk as treeprint branches.
type treeSerializer struct {
	branches []tp.Tree // innermost open element last
}

func (s *treeSerializer) current() tp.Tree {
	return s.branches[len(s.branches)-1]
}

func (s *treeSerializer) BeginElement(id dom.KmlDomType, attrs *base.Attributes) {
	label := id.String()
	if attrs.Len() > 0 {
		pairs := make([]string, 0, attrs.Len())
		for _, key := range attrs.Keys() {
			value, _ := attrs.Get(key)
			pairs = append(pairs, fmt.Sprintf("%s=%q", key, value))
		}
		label += " [" + strings.Join(pairs, " ") + "]"
	}
	s.branches = append(s.branches, s.current().AddBranch(label))
}

func (s *treeSerializer) EndElement(id dom.KmlDomType) {
	s.branches = s.branches[:len(s.branches)-1]
}

func (s *treeSerializer) SaveStringField(id dom.KmlDomType, value string) {
	s.current().AddNode(fmt.Sprintf("%s = %q", id, value))
}

func (s *treeSerializer) SaveBoolField(id dom.KmlDomType, value bool) {
	s.current().AddNode(fmt.Sprintf("%s = %v", id, value))
}

func (s *treeSerializer) SaveContent(content string) {
	s.current().AddNode(fmt.Sprintf("content %q", shorten(content)))
}

func (s *treeSerializer) SaveElement(child dom.Element) {
	if child == nil {
		return
	}
	child.Serialize(s)
}

func shorten(content string) string {
	const limit = 40
	if len(content) <= limit {
		return content
	}
	return content[:limit] + "…"
}
