package census

import (
	"go.uber.org/zap"

	"github.com/sells-group/ancestry-maps/internal/usmap"
)

// FortifiedRow is one polygon vertex in drawing order, carrying the
// feature identity and the joined attributes of its state. Values is
// shared across all rows of a feature.
type FortifiedRow struct {
	FIPS   string
	Postal string
	Order  int // sequential per feature; row order is drawing order
	X, Y   float64
	// Ring numbers rings within the feature so the renderer can close
	// each one separately.
	Ring   int
	Values map[string]*float64
}

// Joined is the Data Joiner output: the fortified vertex rows for polygon
// fill and the feature collection whose attribute table now carries the
// joined percentages for centroid/label computation.
type Joined struct {
	Rows []FortifiedRow
	FC   *usmap.FeatureCollection
}

// Join reads the survey table and left-joins it onto the feature
// collection by normalized state name. Unmatched features keep nil
// attributes rather than being dropped, so the join never loses geometry.
func Join(fc *usmap.FeatureCollection, tablePath string) (*Joined, error) {
	table, err := ReadTable(tablePath)
	if err != nil {
		return nil, err
	}
	return JoinTable(fc, table), nil
}

// JoinTable performs the left join against an already-parsed table.
func JoinTable(fc *usmap.FeatureCollection, table *Table) *Joined {
	log := zap.L().With(zap.String("component", "census.join"))

	var unmatched int
	for _, f := range fc.Features {
		rec, ok := table.Lookup(usmap.NormalizeName(f.Name))
		if !ok {
			// Non-fatal: the state still draws, just uncolored.
			unmatched++
			log.Warn("census: no table row for feature, attributes stay null",
				zap.String("state", f.Name),
			)
			rec = nullRecord()
		}
		f.Attrs = rec
	}

	j := &Joined{Rows: Fortify(fc), FC: fc}

	log.Info("survey table joined",
		zap.Int("features", len(fc.Features)),
		zap.Int("unmatched", unmatched),
		zap.Int("fortified_rows", len(j.Rows)),
	)
	return j
}

// Fortify flattens each feature's rings into draw-ordered vertex rows.
// Rows for a feature are contiguous and ordered by the per-feature index,
// which is what lets the renderer connect vertices in row order.
func Fortify(fc *usmap.FeatureCollection) []FortifiedRow {
	var rows []FortifiedRow

	for _, f := range fc.Features {
		order := 0
		ring := 0
		for pi := 0; pi < f.Geom.NumPolygons(); pi++ {
			poly := f.Geom.Polygon(pi)
			for ri := 0; ri < poly.NumLinearRings(); ri++ {
				flat := poly.LinearRing(ri).FlatCoords()
				stride := poly.LinearRing(ri).Stride()
				for i := 0; i+1 < len(flat); i += stride {
					rows = append(rows, FortifiedRow{
						FIPS:   f.FIPS,
						Postal: f.Postal,
						Order:  order,
						X:      flat[i],
						Y:      flat[i+1],
						Ring:   ring,
						Values: f.Attrs,
					})
					order++
				}
				ring++
			}
		}
	}

	return rows
}

// nullRecord returns an all-null attribute map for unmatched features.
func nullRecord() map[string]*float64 {
	rec := make(map[string]*float64, len(ColumnMappings))
	for _, m := range ColumnMappings {
		rec[m.Semantic] = nil
	}
	return rec
}
