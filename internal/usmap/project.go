package usmap

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
)

// Projection is a spherical Lambert azimuthal equal-area projection.
// Equal-area is required so shaded state area is not visually misleading.
type Projection struct {
	OriginLat float64 // latitude of origin, degrees
	OriginLon float64 // central meridian, degrees
	Radius    float64 // spherical earth radius, meters
}

// DefaultProjection centers the frame on the continental US with the
// spherical radius used by the USGS national atlas.
func DefaultProjection() Projection {
	return Projection{OriginLat: 45, OriginLon: -100, Radius: 6370997}
}

// Tag returns the CRS tag stamped on projected collections.
func (p Projection) Tag() string {
	return fmt.Sprintf("laea lat_0=%g lon_0=%g R=%g", p.OriginLat, p.OriginLon, p.Radius)
}

// Forward projects a lon/lat pair (degrees) to planar meters.
func (p Projection) Forward(lon, lat float64) (x, y float64) {
	const d2r = math.Pi / 180

	phi := lat * d2r
	phi1 := p.OriginLat * d2r
	dLam := (lon - p.OriginLon) * d2r

	sinPhi, cosPhi := math.Sincos(phi)
	sinPhi1, cosPhi1 := math.Sincos(phi1)
	cosDLam := math.Cos(dLam)

	k := math.Sqrt(2 / (1 + sinPhi1*sinPhi + cosPhi1*cosPhi*cosDLam))

	x = p.Radius * k * cosPhi * math.Sin(dLam)
	y = p.Radius * k * (cosPhi1*sinPhi - sinPhi1*cosPhi*cosDLam)
	return x, y
}

// ProjectFeature reprojects a feature's coordinates in place.
// Non-finite results (the antipode of the origin) are a projection error.
func (p Projection) ProjectFeature(f *Feature) error {
	flat := f.Geom.FlatCoords()
	stride := f.Geom.Stride()

	for i := 0; i+1 < len(flat); i += stride {
		x, y := p.Forward(flat[i], flat[i+1])
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return eris.Wrapf(ErrProjection,
				"usmap: %s: coordinate (%g, %g) does not project", f.Name, flat[i], flat[i+1])
		}
		flat[i], flat[i+1] = x, y
	}
	return nil
}
