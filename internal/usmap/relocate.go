package usmap

import (
	"math"

	"go.uber.org/zap"
)

// RelocateOptions holds the affine parameters that pull Alaska and Hawaii
// into the national frame. All values are hand-tuned for the default
// projection and treated as data.
type RelocateOptions struct {
	AlaskaRotate  float64    // degrees
	AlaskaDivisor float64    // bbox diagonal shrink factor
	AlaskaShift   [2]float64 // map units
	HawaiiRotate  float64    // degrees
	HawaiiShift   [2]float64 // map units
	KeepDC        bool       // keep the federal district in the frame
}

// DefaultRelocateOptions positions a miniature Alaska in the lower-left
// and Hawaii below the southwest.
func DefaultRelocateOptions() RelocateOptions {
	return RelocateOptions{
		AlaskaRotate:  -50,
		AlaskaDivisor: 2.3,
		AlaskaShift:   [2]float64{-2100000, -2500000},
		HawaiiRotate:  -35,
		HawaiiShift:   [2]float64{5400000, -1400000},
	}
}

// Relocate filters a projected collection down to the national frame:
// the contiguous states keep their geometry untouched, Alaska and Hawaii
// are rotated/scaled/shifted into view, and island-area territories (and
// DC, unless KeepDC) are dropped. The input collection is consumed; the
// relocated geometry shares its backing arrays.
func Relocate(fc *FeatureCollection, opts RelocateOptions) *FeatureCollection {
	out := &FeatureCollection{Proj: fc.Proj}

	var alaska, hawaii *Feature
	for _, f := range fc.Features {
		switch {
		case f.FIPS == fipsAlaska:
			alaska = f
		case f.FIPS == fipsHawaii:
			hawaii = f
		case IsTerritory(f.FIPS):
			// excluded from the national frame
		case f.FIPS == fipsDC && !opts.KeepDC:
			// illegible sliver at national scale
		default:
			out.Features = append(out.Features, f)
		}
	}

	if alaska != nil {
		rotateAbout(alaska, opts.AlaskaRotate)
		shrinkToDiagonal(alaska, opts.AlaskaDivisor)
		translate(alaska, opts.AlaskaShift[0], opts.AlaskaShift[1])
		out.Features = append(out.Features, alaska)
	} else {
		zap.L().Warn("usmap: Alaska not present in source, frame will be incomplete")
	}

	if hawaii != nil {
		rotateAbout(hawaii, opts.HawaiiRotate)
		translate(hawaii, opts.HawaiiShift[0], opts.HawaiiShift[1])
		out.Features = append(out.Features, hawaii)
	} else {
		zap.L().Warn("usmap: Hawaii not present in source, frame will be incomplete")
	}

	return out
}

// bboxCenter returns the center of the feature's bounding box.
func bboxCenter(f *Feature) (cx, cy float64) {
	b := f.Geom.Bounds()
	return (b.Min(0) + b.Max(0)) / 2, (b.Min(1) + b.Max(1)) / 2
}

// rotateAbout rotates the feature's coordinates by deg degrees around its
// bbox center. Only coordinate values change.
func rotateAbout(f *Feature, deg float64) {
	cx, cy := bboxCenter(f)
	sin, cos := math.Sincos(deg * math.Pi / 180)

	flat := f.Geom.FlatCoords()
	stride := f.Geom.Stride()
	for i := 0; i+1 < len(flat); i += stride {
		dx, dy := flat[i]-cx, flat[i+1]-cy
		flat[i] = cx + dx*cos - dy*sin
		flat[i+1] = cy + dx*sin + dy*cos
	}
}

// shrinkToDiagonal uniformly scales the feature about its bbox center so
// the bounding-box diagonal lands at 1/divisor of its current length.
func shrinkToDiagonal(f *Feature, divisor float64) {
	if divisor == 0 {
		return
	}
	cx, cy := bboxCenter(f)
	factor := 1 / divisor

	flat := f.Geom.FlatCoords()
	stride := f.Geom.Stride()
	for i := 0; i+1 < len(flat); i += stride {
		flat[i] = cx + (flat[i]-cx)*factor
		flat[i+1] = cy + (flat[i+1]-cy)*factor
	}
}

// translate shifts every coordinate by (dx, dy).
func translate(f *Feature, dx, dy float64) {
	flat := f.Geom.FlatCoords()
	stride := f.Geom.Stride()
	for i := 0; i+1 < len(flat); i += stride {
		flat[i] += dx
		flat[i+1] += dy
	}
}
