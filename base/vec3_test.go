package base

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseVec3(t *testing.T) {
	v, ok := ParseVec3("8.54,47.37,408")
	if !ok {
		t.Fatal("expected 3-part tuple to parse, didn't")
	}
	if v.Longitude != 8.54 || v.Latitude != 47.37 || v.Altitude != 408 {
		t.Errorf("unexpected tuple %v", v)
	}
}

func TestParseVec3DefaultsAltitude(t *testing.T) {
	v, ok := ParseVec3(" 8.54,47.37 ")
	if !ok {
		t.Fatal("expected 2-part tuple to parse, didn't")
	}
	if v.Altitude != 0 {
		t.Errorf("expected altitude to default to 0, is %v", v.Altitude)
	}
}

func TestParseVec3Malformed(t *testing.T) {
	for _, tuple := range []string{"", "8.54", "a,b", "1,2,3,4", "8.54,x"} {
		if _, ok := ParseVec3(tuple); ok {
			t.Errorf("expected tuple %q to be rejected, wasn't", tuple)
		}
	}
}

func TestParseVec3TuplesSkipsMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kml.base")
	defer teardown()
	//
	coords := ParseVec3Tuples("1,2,3 nonsense 4,5,6")
	if len(coords) != 2 {
		t.Fatalf("expected 2 tuples, have %d", len(coords))
	}
	if coords[1].Longitude != 4 {
		t.Errorf("expected second tuple to start at 4, is %v", coords[1])
	}
}

func TestVec3StringRoundTrip(t *testing.T) {
	v := Vec3{Longitude: 8.54, Latitude: 47.37, Altitude: 408}
	back, ok := ParseVec3(v.String())
	if !ok {
		t.Fatalf("expected %q to parse back, didn't", v.String())
	}
	if back != v {
		t.Errorf("expected round trip to be exact, %v != %v", back, v)
	}
}
