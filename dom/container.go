package dom

import (
	"github.com/aaronblanchard/libkml/base"
)

// Document is the container element usually found directly under the
// <kml> root.
type Document struct {
	container
}

// NewDocument creates an empty <Document> element.
func NewDocument() *Document {
	d := &Document{}
	d.initElement(TypeDocument, d)
	return d
}

func (d *Document) IsA(t KmlDomType) bool {
	return t == TypeDocument || d.container.IsA(t)
}

func (d *Document) Serialize(s Serializer) {
	attrs := base.NewAttributes()
	d.GetAttributes(attrs)
	s.BeginElement(TypeDocument, attrs)
	d.serializeFields(s)
	d.serializeFeatures(s)
	d.SerializeUnknown(s)
	s.EndElement(TypeDocument)
}

// Folder is a container used to group features hierarchically.
type Folder struct {
	container
}

// NewFolder creates an empty <Folder> element.
func NewFolder() *Folder {
	f := &Folder{}
	f.initElement(TypeFolder, f)
	return f
}

func (f *Folder) IsA(t KmlDomType) bool {
	return t == TypeFolder || f.container.IsA(t)
}

func (f *Folder) Serialize(s Serializer) {
	attrs := base.NewAttributes()
	f.GetAttributes(attrs)
	s.BeginElement(TypeFolder, attrs)
	f.serializeFields(s)
	f.serializeFeatures(s)
	f.SerializeUnknown(s)
	s.EndElement(TypeFolder)
}
