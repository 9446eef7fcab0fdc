package labels

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/xy"

	"github.com/sells-group/ancestry-maps/internal/census"
	"github.com/sells-group/ancestry-maps/internal/usmap"
)

// Record is one state's annotation: display anchor, text, leader-line
// geometry, and styling. Records are immutable once placed.
type Record struct {
	Postal string
	FIPS   string

	// X, Y is the display anchor: the computed centroid unless the
	// override table replaced it.
	X, Y float64
	// CentroidX, CentroidY is the true geometric centroid, the leader
	// line's destination.
	CentroidX, CentroidY float64
	// ElbowX, ElbowY is the leader elbow: the anchor plus the horizontal
	// offset. Segment one runs anchor→elbow, segment two elbow→centroid.
	ElbowX, ElbowY float64

	Text     string
	FontSize float64
	Color    color.Color
	// External marks labels sitting outside their silhouette; only their
	// leader lines are drawn.
	External bool
}

// Place computes one Record per feature for the named render variable.
// Output is deterministic: same collection and variable, same records.
func Place(fc *usmap.FeatureCollection, variable string) ([]Record, error) {
	mapping, ok := census.MappingByDisplay(variable)
	if !ok {
		return nil, eris.Errorf("labels: unknown variable %q", variable)
	}

	records := make([]Record, 0, len(fc.Features))
	for _, f := range fc.Features {
		centroid, err := xy.Centroid(f.Geom)
		if err != nil {
			return nil, eris.Wrapf(err, "labels: centroid for %s", f.Name)
		}
		cx, cy := centroid[0], centroid[1]

		// Manual override table wins over the computed anchor, per axis.
		ax, ay := cx, cy
		if o, ok := anchorOverrides[f.Postal]; ok {
			if o.X != nil {
				ax = *o.X
			}
			if o.Y != nil {
				ay = *o.Y
			}
		}

		offset := leaderOffset
		if reversedOffset[f.Postal] {
			offset = -offset
		}

		// External labels draw over the white background, interior ones
		// over the ramp fill.
		external := IsExternal(f.Postal)
		var col color.Color = color.White
		if external {
			col = color.Black
		}

		records = append(records, Record{
			Postal:    f.Postal,
			FIPS:      f.FIPS,
			X:         ax,
			Y:         ay,
			CentroidX: cx,
			CentroidY: cy,
			ElbowX:    ax + offset,
			ElbowY:    ay,
			Text:      fmt.Sprintf("%s\n%s", f.Postal, formatValue(f.Attrs[mapping.Semantic])),
			FontSize:  FontSize(f.Postal),
			Color:     col,
			External:  external,
		})
	}

	return records, nil
}

// formatValue renders a percentage to 3 significant digits; null is "n/a".
func formatValue(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'g', 3, 64)
}
