package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPlacemark(t *testing.T) *Placemark {
	t.Helper()
	pm := NewPlacemark()
	pm.SetName("pin")
	pt := NewPoint()
	c := NewCoordinates()
	c.AddLatLngAlt(47.37, 8.54, 408)
	if !pt.SetCoordinates(c) {
		t.Fatal("cannot attach coordinates")
	}
	if !pm.SetGeometry(pt) {
		t.Fatal("cannot attach geometry")
	}
	return pm
}

func TestSerializeRaw(t *testing.T) {
	pm := buildPlacemark(t)
	out := SerializeRaw(pm)
	want := `<Placemark><name>pin</name><Point><coordinates>8.54,47.37,408</coordinates></Point></Placemark>`
	if out != want {
		t.Errorf("unexpected serialization\nwant %s\nhave %s", want, out)
	}
}

func TestSerializePretty(t *testing.T) {
	pm := buildPlacemark(t)
	out := SerializePretty(pm)
	want := `<Placemark>
  <name>pin</name>
  <Point>
    <coordinates>
      8.54,47.37,408
    </coordinates>
  </Point>
</Placemark>
`
	if out != want {
		t.Errorf("unexpected serialization\nwant:\n%s\nhave:\n%s", want, out)
	}
}

func TestSerializeEmptyElementCollapses(t *testing.T) {
	if out := SerializeRaw(NewPoint()); out != "<Point/>" {
		t.Errorf("expected <Point/>, have %s", out)
	}
	if out := SerializePretty(NewPoint()); out != "<Point/>\n" {
		t.Errorf("expected <Point/> line, have %q", out)
	}
}

func TestSerializeEscapesText(t *testing.T) {
	pm := NewPlacemark()
	pm.SetName(`a<b&"c"`)
	out := SerializeRaw(pm)
	if out != `<Placemark><name>a&lt;b&amp;&#34;c&#34;</name></Placemark>` {
		t.Errorf("unexpected escaping: %s", out)
	}
}

func TestSerializeBoolFields(t *testing.T) {
	pm := NewPlacemark()
	pm.SetVisibility(false)
	pm.SetOpen(true)
	out := SerializeRaw(pm)
	want := `<Placemark><visibility>0</visibility><open>1</open></Placemark>`
	if out != want {
		t.Errorf("expected bools as 1/0\nwant %s\nhave %s", want, out)
	}
}

func TestSerializeKmlWithXmlnsAndHint(t *testing.T) {
	k := NewKml()
	k.SetDefaultXMLNS("http://www.opengis.net/kml/2.2")
	k.SetHint("target=moon")
	out := SerializeRaw(k)
	want := `<kml hint="target=moon" xmlns="http://www.opengis.net/kml/2.2"/>`
	if out != want {
		t.Errorf("unexpected serialization %s", out)
	}
}

func TestSerializeLineStringFieldOrder(t *testing.T) {
	l := NewLineString()
	l.SetExtrude(true)
	l.SetTessellate(true)
	l.SetAltitudeMode(AltitudeModeRelativeToGround)
	out := SerializeRaw(l)
	want := `<LineString><extrude>1</extrude><tessellate>1</tessellate>` +
		`<altitudeMode>relativeToGround</altitudeMode></LineString>`
	if out != want {
		t.Errorf("unexpected serialization %s", out)
	}
}

// The lossless round trip: markup with unknown elements, misplaced
// elements and unknown attributes reproduces the same preserved content
// after serializing and re-parsing.
func TestRoundTripPreservesRecoveredContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kml.dom")
	defer teardown()
	//
	input := `<kml><Placemark id="p1" frob="x">` +
		`<name>pin</name>` +
		`<alien a="1">stuff</alien>` +
		`<Document><name>lost</name></Document>` +
		`<snippet>short</snippet>` +
		`</Placemark></kml>`
	root, err := ParseString(input)
	require.NoError(t, err)
	kml := root.(*Kml)
	pm := kml.Feature().(*Placemark)
	//
	out := SerializeRaw(kml)
	root2, err := ParseString(out)
	require.NoError(t, err)
	pm2 := root2.(*Kml).Feature().(*Placemark)
	//
	assert.Equal(t, pm.Name(), pm2.Name())
	assert.Equal(t, pm.ID(), pm2.ID())
	require.Equal(t, len(pm.UnknownElements()), len(pm2.UnknownElements()))
	assert.Equal(t, pm.UnknownElements(), pm2.UnknownElements())
	require.Equal(t, len(pm.MisplacedElements()), len(pm2.MisplacedElements()))
	for i, m := range pm.MisplacedElements() {
		m2 := pm2.MisplacedElements()[i]
		assert.Equal(t, m.Type(), m2.Type())
		assert.Equal(t, SerializeRaw(m), SerializeRaw(m2))
	}
	// Unknown attribute survives both trips.
	assert.Contains(t, SerializeRaw(pm2), `frob="x"`)
	// A third trip is bit-stable.
	assert.Equal(t, out, SerializeRaw(root2))
}
