package dom

import (
	"testing"

	"github.com/aaronblanchard/libkml/base"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetParentOnlyOnce(t *testing.T) {
	pm := NewPlacemark()
	doc := NewDocument()
	folder := NewFolder()
	if !pm.SetParent(doc) {
		t.Fatal("expected first SetParent to succeed, didn't")
	}
	if pm.SetParent(folder) {
		t.Error("expected second SetParent to fail, didn't")
	}
	if pm.Parent() != Element(doc) {
		t.Error("expected parent to be unchanged after failed SetParent")
	}
}

func TestSetParentToSelfFails(t *testing.T) {
	pm := NewPlacemark()
	if pm.SetParent(pm) {
		t.Error("expected self-parenting to fail, didn't")
	}
	if pm.Parent() != nil {
		t.Error("expected parent to stay unset after self-parenting attempt")
	}
}

func TestSetParentNilFails(t *testing.T) {
	pm := NewPlacemark()
	if pm.SetParent(nil) {
		t.Error("expected SetParent(nil) to fail, didn't")
	}
}

func TestIsAWalksAncestry(t *testing.T) {
	pm := NewPlacemark()
	for _, typ := range []KmlDomType{TypePlacemark, TypeFeature, TypeObject, TypeUnknown} {
		if !pm.IsA(typ) {
			t.Errorf("expected Placemark to be a %s, isn't", typ)
		}
	}
	if pm.IsA(TypeContainer) {
		t.Error("expected Placemark not to be a Container, is")
	}
	doc := NewDocument()
	if !doc.IsA(TypeContainer) || !doc.IsA(TypeFeature) {
		t.Error("expected Document to be a Container and a Feature, isn't")
	}
	pt := NewPoint()
	if !pt.IsA(TypeGeometry) {
		t.Error("expected Point to be a Geometry, isn't")
	}
}

func TestTypeIsImmutableIdentity(t *testing.T) {
	if NewFolder().Type() != TypeFolder {
		t.Error("expected Folder to carry TypeFolder")
	}
	if NewField(TypeName).Type() != TypeName {
		t.Error("expected Field to carry the type it was created with")
	}
	bare := &BasicElement{}
	if bare.Type() != TypeUnknown {
		t.Error("expected bare base element to carry TypeUnknown")
	}
}

func TestSetComplexChildNilClearsSlot(t *testing.T) {
	k := NewKml()
	pm := NewPlacemark()
	if !k.SetFeature(pm) {
		t.Fatal("expected SetFeature to succeed, didn't")
	}
	if !k.SetFeature(nil) {
		t.Error("expected SetFeature(nil) to succeed, didn't")
	}
	if k.HasFeature() {
		t.Error("expected feature slot to be cleared, isn't")
	}
}

func TestSetComplexChildFailureLeavesSlot(t *testing.T) {
	k := NewKml()
	first := NewPlacemark()
	owned := NewPlacemark()
	owned.SetParent(NewFolder()) // now owned elsewhere
	if !k.SetFeature(first) {
		t.Fatal("expected SetFeature to succeed, didn't")
	}
	if k.SetFeature(owned) {
		t.Error("expected SetFeature of an owned element to fail, didn't")
	}
	if k.Feature() != Feature(first) {
		t.Error("expected slot to be untouched after failed attach")
	}
	if first.Parent() != Element(k) {
		t.Error("expected attached child to point back at its owner")
	}
}

func TestAddComplexChildNilIsNoOp(t *testing.T) {
	doc := NewDocument()
	if !doc.AddFeature(nil) {
		t.Error("expected AddFeature(nil) to succeed, didn't")
	}
	if doc.FeatureCount() != 0 {
		t.Errorf("expected collection to stay empty, has %d", doc.FeatureCount())
	}
}

func TestAddComplexChildFailureLeavesCollection(t *testing.T) {
	doc := NewDocument()
	pm := NewPlacemark()
	owned := NewPlacemark()
	owned.SetParent(NewFolder())
	if !doc.AddFeature(pm) {
		t.Fatal("expected AddFeature to succeed, didn't")
	}
	if doc.AddFeature(owned) {
		t.Error("expected AddFeature of an owned element to fail, didn't")
	}
	if doc.FeatureCount() != 1 {
		t.Errorf("expected 1 feature, have %d", doc.FeatureCount())
	}
	if doc.FeatureAt(0) != Feature(pm) {
		t.Error("expected collection to be untouched after failed attach")
	}
	if pm.Parent() != Element(doc) {
		t.Error("expected added child to point back at its owner")
	}
}

func TestBaseAddElementAbsorbsMisplaced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kml.dom")
	defer teardown()
	//
	pm := NewPlacemark()
	doc := NewDocument() // schema-known, but illegal inside a Placemark
	pm.AddElement(doc)
	misplaced := pm.MisplacedElements()
	if len(misplaced) != 1 {
		t.Fatalf("expected 1 misplaced element, have %d", len(misplaced))
	}
	if misplaced[0].Type() != TypeDocument {
		t.Errorf("expected misplaced Document, have %s", misplaced[0].Type())
	}
	if misplaced[0].Parent() != Element(pm) {
		t.Error("expected misplaced element to be owned by the absorbing node")
	}
}

func TestBaseAddElementKeepsUnclaimedField(t *testing.T) {
	pm := NewPlacemark()
	snippet := NewField(TypeSnippet)
	snippet.SetCharData("hello")
	pm.AddElement(snippet)
	misplaced := pm.MisplacedElements()
	if len(misplaced) != 1 || misplaced[0].Type() != TypeSnippet {
		t.Fatalf("expected the snippet Field to be preserved, have %v", misplaced)
	}
}

func TestAddUnknownElementKeepsOrder(t *testing.T) {
	pm := NewPlacemark()
	pm.AddUnknownElement("<frob/>")
	pm.AddUnknownElement("<nitz>x</nitz>")
	unknown := pm.UnknownElements()
	if len(unknown) != 2 {
		t.Fatalf("expected 2 unknown fragments, have %d", len(unknown))
	}
	if unknown[0] != "<frob/>" || unknown[1] != "<nitz>x</nitz>" {
		t.Errorf("expected insertion order to be preserved, have %v", unknown)
	}
}

func TestBaseSetConversionsAlwaysFail(t *testing.T) {
	pm := NewPlacemark()
	b, d, i, n, s := true, 1.0, 1, 1, "x"
	if pm.SetBool(&b) || pm.SetDouble(&d) || pm.SetInt(&i) || pm.SetEnum(&n) || pm.SetString(&s) {
		t.Error("expected all base conversions to fail, one didn't")
	}
	if !b || d != 1.0 || i != 1 || n != 1 || s != "x" {
		t.Error("expected destinations to be untouched, one wasn't")
	}
}

func TestUnknownAttributesPreserved(t *testing.T) {
	pm := NewPlacemark()
	attrs := base.NewAttributes()
	attrs.Set("id", "p1")
	attrs.Set("frob", "x")
	pm.ParseAttributes(attrs)
	if !pm.HasID() || pm.ID() != "p1" {
		t.Error("expected id= to be claimed by Object, wasn't")
	}
	out := base.NewAttributes()
	pm.GetAttributes(out)
	if out.Len() != 2 {
		t.Fatalf("expected 2 attributes back, have %d", out.Len())
	}
	if v, _ := out.Get("frob"); v != "x" {
		t.Errorf("expected unknown frob=x to be preserved, have %q", v)
	}
}

func TestAttributesRoundTripOntoFreshElement(t *testing.T) {
	pm := NewPlacemark()
	attrs := base.NewAttributes()
	attrs.Set("id", "p1")
	attrs.Set("frob", "x")
	pm.ParseAttributes(attrs.Clone())
	out := base.NewAttributes()
	pm.GetAttributes(out)
	//
	fresh := NewPlacemark()
	fresh.ParseAttributes(out)
	again := base.NewAttributes()
	fresh.GetAttributes(again)
	if again.Len() != attrs.Len() {
		t.Fatalf("expected %d attributes after round trip, have %d", attrs.Len(), again.Len())
	}
	for _, key := range attrs.Keys() {
		want, _ := attrs.Get(key)
		have, ok := again.Get(key)
		if !ok || have != want {
			t.Errorf("expected %s=%q after round trip, have %q (%v)", key, want, have, ok)
		}
	}
}

func TestBareBasicElementUsableAsAbsorber(t *testing.T) {
	e := &BasicElement{}
	pm := NewPlacemark()
	e.AddElement(pm)
	if len(e.MisplacedElements()) != 1 {
		t.Fatal("expected bare base element to absorb a child")
	}
	if pm.Parent() == nil {
		t.Error("expected absorbed child to gain a parent")
	}
}
