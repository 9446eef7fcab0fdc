package render

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ancestry-maps/internal/census"
	"github.com/sells-group/ancestry-maps/internal/labels"
)

// squareRows builds fortified rows for a square feature.
func squareRows(fips, postal string, cx, cy float64, values map[string]*float64) []census.FortifiedRow {
	const half = 100000.0
	xs := []float64{cx - half, cx + half, cx + half, cx - half, cx - half}
	ys := []float64{cy - half, cy - half, cy + half, cy + half, cy - half}

	rows := make([]census.FortifiedRow, 5)
	for i := range rows {
		rows[i] = census.FortifiedRow{
			FIPS: fips, Postal: postal, Order: i,
			X: xs[i], Y: ys[i], Ring: 0, Values: values,
		}
	}
	return rows
}

func pct(v float64) *float64 { return &v }

func testRows() []census.FortifiedRow {
	rows := squareRows("27", "MN", 0, 0, map[string]*float64{"pctIrish": pct(11.2)})
	rows = append(rows, squareRows("48", "TX", 500000, -500000, map[string]*float64{"pctIrish": pct(7.4)})...)
	return rows
}

func smallOpts() Options {
	opts := DefaultOptions()
	opts.Width = 80
	opts.Height = 80
	return opts
}

func TestChoropleth_Basic(t *testing.T) {
	img, err := Choropleth(testRows(), "Irish", "Irish", smallOpts(), nil)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 80, b.Dx())
	assert.Equal(t, 80, b.Dy())
}

func TestChoropleth_AllNullDomainFails(t *testing.T) {
	rows := squareRows("27", "MN", 0, 0, map[string]*float64{"pctIrish": nil})

	_, err := Choropleth(rows, "Irish", "Irish", smallOpts(), nil)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrRender))
}

func TestChoropleth_NullStateStillDraws(t *testing.T) {
	// One null state alongside a valued one: render succeeds, the null
	// polygon fills neutral.
	rows := squareRows("27", "MN", 0, 0, map[string]*float64{"pctIrish": pct(11.2)})
	rows = append(rows, squareRows("48", "TX", 500000, -500000, map[string]*float64{"pctIrish": nil})...)

	_, err := Choropleth(rows, "Irish", "Irish", smallOpts(), nil)
	require.NoError(t, err)
}

func TestChoropleth_UnknownVariable(t *testing.T) {
	_, err := Choropleth(testRows(), "Martian", "", smallOpts(), nil)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrRender))
}

func TestChoropleth_TinyCanvasWithLegend(t *testing.T) {
	// A canvas this small leaves the legend bar under two pixels tall;
	// the render must still complete instead of panicking.
	opts := DefaultOptions()
	opts.Width = 6
	opts.Height = 6

	img, err := Choropleth(testRows(), "Irish", "", opts, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
}

func TestChoropleth_EmptyRows(t *testing.T) {
	_, err := Choropleth(nil, "Irish", "", smallOpts(), nil)
	require.Error(t, err)
}

func TestChoropleth_WithLabels(t *testing.T) {
	recs := []labels.Record{
		{
			Postal: "MN", FIPS: "27",
			X: 0, Y: 0, CentroidX: 0, CentroidY: 0,
			ElbowX: -100000, ElbowY: 0,
			Text: "MN\n11.2", FontSize: 6, Color: color.White,
		},
		{
			Postal: "RI", FIPS: "44",
			X: 450000, Y: -450000, CentroidX: 500000, CentroidY: -500000,
			ElbowX: 350000, ElbowY: -450000,
			Text: "RI\n17.9", FontSize: 6, Color: color.Black, External: true,
		},
	}

	_, err := Choropleth(testRows(), "Irish", "Irish", smallOpts(), recs)
	require.NoError(t, err)
}

func TestSave(t *testing.T) {
	img, err := Choropleth(testRows(), "Irish", "Irish", smallOpts(), nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "Irish.png")
	require.NoError(t, Save(img, path))
	assert.FileExists(t, path)
}

func TestSave_BadPath(t *testing.T) {
	img, err := Choropleth(testRows(), "Irish", "Irish", smallOpts(), nil)
	require.NoError(t, err)

	err = Save(img, filepath.Join(t.TempDir(), "missing", "nested", "Irish.png"))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrRender))
}

func TestValueDomain(t *testing.T) {
	lo, hi, ok := valueDomain(testRows(), "pctIrish")
	require.True(t, ok)
	assert.Equal(t, 7.4, lo)
	assert.Equal(t, 11.2, hi)

	_, _, ok = valueDomain(testRows(), "pctWelsh")
	assert.False(t, ok)
}

func TestFillColor_Null(t *testing.T) {
	opts := DefaultOptions()
	c := fillColor(nil, 0, 10, opts)
	assert.Equal(t, opts.NeutralFill, c)
}

func TestRamp(t *testing.T) {
	r := BlueRamp()

	lowR, lowG, lowB, _ := r.At(0).RGBA()
	highR, highG, highB, _ := r.At(1).RGBA()
	// The ramp runs light to dark.
	assert.Greater(t, lowR+lowG+lowB, highR+highG+highB)

	// Out-of-range values clamp to the endpoints.
	assert.Equal(t, r.At(0), r.At(-3))
	assert.Equal(t, r.At(1), r.At(7))
}

func TestRamp_NaNClampsLow(t *testing.T) {
	r := BlueRamp()
	assert.Equal(t, r.At(0), r.At(math.NaN()))
}
