// Package labels computes per-state annotation anchors, text, and leader
// lines for labeled choropleth renders.
package labels

// Anchor is a hand-tuned label position. A nil axis keeps the computed
// centroid value for that axis. Coordinates are national-frame map units.
type Anchor struct {
	X *float64
	Y *float64
}

func f(v float64) *float64 { return &v }

// anchorOverrides replaces computed centroids for states whose label
// would otherwise collide with a small or narrow silhouette. Fourteen
// entries, keyed by postal code; values were tuned by eye against the
// default projection and relocation parameters.
var anchorOverrides = map[string]Anchor{
	// New England stack and mid-Atlantic slivers, pushed off the seaboard.
	"MA": {X: f(2580000)},
	"RI": {X: f(2620000), Y: f(-80000)},
	"CT": {X: f(2520000), Y: f(-180000)},
	"NH": {X: f(2420000), Y: f(480000)},
	"VT": {X: f(1780000), Y: f(600000)},
	"NJ": {X: f(2520000), Y: f(-340000)},
	"DE": {X: f(2560000), Y: f(-500000)},
	"MD": {X: f(2520000), Y: f(-640000)},
	"DC": {X: f(2440000), Y: f(-780000)},
	// Relocated Hawaii, label left of the archipelago.
	"HI": {X: f(-1000000), Y: f(-2260000)},
	// Interior nudges: lower peninsula, west of the delta, off the
	// panhandle, into the wide south.
	"MI": {X: f(1120000), Y: f(-260000)},
	"LA": {X: f(460000), Y: f(-2020000)},
	"FL": {X: f(1850000), Y: f(-2280000)},
	"ID": {Y: f(280000)},
}

// externalStates sit outside their silhouette and get a drawn leader
// line back to the true centroid.
var externalStates = map[string]bool{
	"CT": true, "RI": true, "MA": true, "NH": true, "VT": true,
	"NJ": true, "DE": true, "DC": true, "HI": true,
}

// reversedOffset flips the horizontal leader offset for states whose
// label sits on the opposite side of the silhouette.
var reversedOffset = map[string]bool{
	"VT": true,
	"HI": true,
}

// leaderOffset is the horizontal distance from the anchor to the leader
// elbow, in map units. Negative: elbows point back west toward the state.
const leaderOffset = -100000.0

// fontSizes carries the per-state size exceptions; ID's panhandle cannot
// fit the default size.
var fontSizes = map[string]float64{
	"ID": 4.5,
}

// defaultFontSize is the uniform label size for everything else.
const defaultFontSize = 6.0

// FontSize returns the label font size for a postal code.
func FontSize(postal string) float64 {
	if s, ok := fontSizes[postal]; ok {
		return s
	}
	return defaultFontSize
}

// IsExternal reports whether a state's label sits outside its silhouette.
func IsExternal(postal string) bool {
	return externalStates[postal]
}
