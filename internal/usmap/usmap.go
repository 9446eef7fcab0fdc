package usmap

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Error kinds for the load stage. Any error returned by Load wraps one of
// these; both abort the run since every later stage needs a complete map.
var (
	ErrDataLoad   = eris.New("usmap: data load failed")
	ErrProjection = eris.New("usmap: projection failed")
)

// Options configures the map load.
type Options struct {
	Projection Projection
	Relocate   RelocateOptions
}

// DefaultOptions returns the standard national-frame parameters.
func DefaultOptions() Options {
	return Options{
		Projection: DefaultProjection(),
		Relocate:   DefaultRelocateOptions(),
	}
}

// Load reads the boundary shapefile, projects every feature to the
// equal-area national frame, relocates Alaska and Hawaii, and drops
// non-state territories. The result is the 48 contiguous states plus the
// two relocated ones; feature order is not guaranteed to match the source.
func Load(shpPath string, opts Options) (*FeatureCollection, error) {
	if opts.Projection == (Projection{}) {
		opts.Projection = DefaultProjection()
	}
	if opts.Relocate == (RelocateOptions{}) {
		opts.Relocate = DefaultRelocateOptions()
	}

	log := zap.L().With(zap.String("component", "usmap.loader"))

	features, err := ParseShapefile(shpPath)
	if err != nil {
		return nil, err
	}
	log.Info("boundary shapefile parsed",
		zap.String("path", shpPath),
		zap.Int("features", len(features)),
	)

	for _, f := range features {
		if err := opts.Projection.ProjectFeature(f); err != nil {
			return nil, err
		}
	}

	fc := &FeatureCollection{Features: features, Proj: opts.Projection.Tag()}
	fc = Relocate(fc, opts.Relocate)

	log.Info("national frame assembled",
		zap.Int("features", len(fc.Features)),
		zap.String("proj", fc.Proj),
	)
	return fc, nil
}
