package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// blueHexStops is the default 6-step sequential blue ramp.
var blueHexStops = []string{
	"#eff3ff", "#c6dbef", "#9ecae1", "#6baed6", "#3182bd", "#08519c",
}

// Ramp maps a normalized [0, 1] value onto a sequence of color stops,
// blending between adjacent stops in Lab space.
type Ramp struct {
	stops []colorful.Color
}

// BlueRamp returns the default sequential blue ramp.
func BlueRamp() Ramp {
	return MustRamp(blueHexStops)
}

// MustRamp builds a ramp from hex color stops, panicking on a malformed
// stop. Ramps are fixed styling tables, so a bad stop is a programming error.
func MustRamp(hexStops []string) Ramp {
	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("render: bad ramp stop " + h + ": " + err.Error())
		}
		stops[i] = c
	}
	return Ramp{stops: stops}
}

// At returns the ramp color for t in [0, 1]; out-of-range and NaN
// values clamp to the low endpoint.
func (r Ramp) At(t float64) color.Color {
	if len(r.stops) == 1 {
		return r.stops[0]
	}
	if math.IsNaN(t) || t <= 0 {
		return r.stops[0]
	}
	if t >= 1 {
		return r.stops[len(r.stops)-1]
	}

	scaled := t * float64(len(r.stops)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	return r.stops[i].BlendLab(r.stops[i+1], frac).Clamped()
}
