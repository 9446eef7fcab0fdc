package usmap

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// Attribute fields the boundary shapefile must carry.
var requiredFields = []string{"STATEFP", "STUSPS", "NAME"}

// ParseShapefile reads a state boundary shapefile into unprojected
// features (coordinates in source lon/lat).
func ParseShapefile(shpPath string) ([]*Feature, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, eris.Wrapf(ErrDataLoad, "usmap: open shapefile %s: %v", shpPath, err)
	}
	defer func() { _ = reader.Close() }()

	// Build field name → index map.
	fields := reader.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		fieldIdx[strings.ToUpper(name)] = i
	}
	for _, name := range requiredFields {
		if _, ok := fieldIdx[name]; !ok {
			return nil, eris.Wrapf(ErrDataLoad, "usmap: shapefile %s missing field %s", shpPath, name)
		}
	}

	attr := func(idx int) string {
		return strings.TrimSpace(strings.TrimRight(reader.Attribute(idx), "\x00"))
	}

	var features []*Feature
	var skipped int

	for reader.Next() {
		_, shape := reader.Shape()

		poly, ok := shape.(*shp.Polygon)
		if !ok || poly == nil {
			skipped++
			continue
		}
		mp := polygonToMultiPolygon(poly)
		if mp == nil {
			skipped++
			continue
		}

		features = append(features, &Feature{
			FIPS:   attr(fieldIdx["STATEFP"]),
			Postal: attr(fieldIdx["STUSPS"]),
			Name:   attr(fieldIdx["NAME"]),
			Geom:   mp,
		})
	}

	if skipped > 0 {
		zap.L().Debug("usmap: skipped shapefile records",
			zap.String("path", shpPath),
			zap.Int("skipped", skipped),
		)
	}
	if len(features) == 0 {
		return nil, eris.Wrapf(ErrDataLoad, "usmap: shapefile %s contains no polygon records", shpPath)
	}

	return features, nil
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon,
// one single-ring polygon per shapefile part. Ring closure is carried over
// verbatim from the source coordinates.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			zap.L().Debug("usmap: skipping malformed polygon ring", zap.Int32("part", i), zap.Error(err))
			continue
		}
		if err := mp.Push(poly); err != nil {
			zap.L().Debug("usmap: skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
