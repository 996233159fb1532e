package base

import (
	"strconv"
	"strings"
)

// Vec3 is a 3d coordinate tuple. In KML the components are longitude,
// latitude and altitude, in that order, with altitude optional.
type Vec3 struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

// ParseVec3 parses a single "longitude,latitude[,altitude]" tuple.
// Whitespace around the tuple is ignored; a missing altitude defaults
// to 0. ok is false if the tuple is malformed.
func ParseVec3(tuple string) (v Vec3, ok bool) {
	parts := strings.Split(strings.TrimSpace(tuple), ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Vec3{}, false
	}
	var err error
	if v.Longitude, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return Vec3{}, false
	}
	if v.Latitude, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return Vec3{}, false
	}
	if len(parts) == 3 {
		if v.Altitude, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
			return Vec3{}, false
		}
	}
	return v, true
}

// ParseVec3Tuples parses whitespace-separated coordinate tuples, as
// found in the character data of a <coordinates> element. Malformed
// tuples are skipped and traced, matching the forgiving parse style of
// the rest of the object model.
func ParseVec3Tuples(chardata string) []Vec3 {
	var coords []Vec3
	for _, tuple := range strings.Fields(chardata) {
		v, ok := ParseVec3(tuple)
		if !ok {
			tracer().Debugf("skipping malformed coordinate tuple %q", tuple)
			continue
		}
		coords = append(coords, v)
	}
	return coords
}

// String formats v as a "longitude,latitude,altitude" tuple using the
// shortest exact float representation.
func (v Vec3) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(v.Longitude, 'g', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(v.Latitude, 'g', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(v.Altitude, 'g', -1, 64))
	return sb.String()
}
