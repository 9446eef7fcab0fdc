package usmap

import (
	"github.com/twpayne/go-geom"
)

// Feature is one state polygon with its identifying attributes. Attrs is
// empty until the census join populates it; values are nil for missing data.
type Feature struct {
	FIPS   string
	Postal string
	Name   string
	Geom   *geom.MultiPolygon
	Attrs  map[string]*float64
}

// FeatureCollection is an ordered set of state features sharing one
// coordinate reference system.
type FeatureCollection struct {
	Features []*Feature
	// Proj tags the shared coordinate reference system. Geometric
	// relocation of AK/HI alters coordinate values only, never this tag.
	Proj string
}

// ByFIPS returns the feature with the given FIPS code.
func (fc *FeatureCollection) ByFIPS(fips string) (*Feature, bool) {
	for _, f := range fc.Features {
		if f.FIPS == fips {
			return f, true
		}
	}
	return nil, false
}

// ByPostal returns the feature with the given postal abbreviation.
func (fc *FeatureCollection) ByPostal(postal string) (*Feature, bool) {
	for _, f := range fc.Features {
		if f.Postal == postal {
			return f, true
		}
	}
	return nil, false
}

// VertexCount returns the total number of coordinates in the feature's rings.
func (f *Feature) VertexCount() int {
	return len(f.Geom.FlatCoords()) / f.Geom.Stride()
}

// RingCount returns the total number of rings across all polygons.
func (f *Feature) RingCount() int {
	n := 0
	for i := 0; i < f.Geom.NumPolygons(); i++ {
		n += f.Geom.Polygon(i).NumLinearRings()
	}
	return n
}
