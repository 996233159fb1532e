package dom

import (
	"github.com/aaronblanchard/libkml/base"
)

// object is the KML Object abstract base: anything which may carry
// id= and targetId= attributes. It is never instantiated on its own;
// the identified element types embed it.
type object struct {
	BasicElement
	id          string
	hasID       bool
	targetID    string
	hasTargetID bool
}

func (o *object) IsA(t KmlDomType) bool {
	return t == TypeObject || o.BasicElement.IsA(t)
}

// ParseAttributes claims id= and targetId= and forwards the remainder
// to the base for preservation.
func (o *object) ParseAttributes(attrs *base.Attributes) {
	if v, ok := attrs.Cut("id"); ok {
		o.id, o.hasID = v, true
	}
	if v, ok := attrs.Cut("targetId"); ok {
		o.targetID, o.hasTargetID = v, true
	}
	o.BasicElement.ParseAttributes(attrs)
}

// GetAttributes writes id= and targetId= and forwards to the base,
// which re-emits preserved unknown attributes.
func (o *object) GetAttributes(attrs *base.Attributes) {
	if attrs == nil {
		return
	}
	if o.hasID {
		attrs.Set("id", o.id)
	}
	if o.hasTargetID {
		attrs.Set("targetId", o.targetID)
	}
	o.BasicElement.GetAttributes(attrs)
}

func (o *object) HasID() bool { return o.hasID }
func (o *object) ID() string  { return o.id }
func (o *object) SetID(id string) {
	o.id, o.hasID = id, true
}

func (o *object) HasTargetID() bool { return o.hasTargetID }
func (o *object) TargetID() string  { return o.targetID }
func (o *object) SetTargetID(targetID string) {
	o.targetID, o.hasTargetID = targetID, true
}
