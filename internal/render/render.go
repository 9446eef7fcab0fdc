// Package render rasterizes joined, fortified state polygons into
// choropleth PNGs.
package render

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/rotisserie/eris"

	"github.com/sells-group/ancestry-maps/internal/census"
	"github.com/sells-group/ancestry-maps/internal/labels"
)

// ErrRender marks failures of the rendering stage: an uncomputable color
// domain or an unwritable output path.
var ErrRender = eris.New("render: render failed")

// Options holds the fixed styling for one render.
type Options struct {
	Width, Height int
	Margin        float64 // fraction of the canvas kept clear at each edge
	FontScale     float64 // multiplier from label point sizes to pixels
	TitleSize     float64
	LegendSize    float64
	Ramp          Ramp
	NeutralFill   color.Color // fill for null-valued states
	ShowLegend    bool
}

// DefaultOptions is the single-map styling: 1000×1000, blue ramp,
// neutral gray for nulls.
func DefaultOptions() Options {
	return Options{
		Width:       1000,
		Height:      1000,
		Margin:      0.04,
		FontScale:   2.0,
		TitleSize:   26,
		LegendSize:  14,
		Ramp:        BlueRamp(),
		NeutralFill: color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff},
		ShowLegend:  true,
	}
}

// viewport maps national-frame map units onto canvas pixels, preserving
// aspect ratio with y inverted.
type viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
	height     float64
}

func (v viewport) px(x, y float64) (float64, float64) {
	sx := v.offX + (x-v.minX)*v.scale
	sy := v.height - (v.offY + (y-v.minY)*v.scale)
	return sx, sy
}

// fitViewport computes the viewport covering all fortified rows.
func fitViewport(rows []census.FortifiedRow, opts Options) viewport {
	minX, minY := rows[0].X, rows[0].Y
	maxX, maxY := minX, minY
	for _, r := range rows {
		if r.X < minX {
			minX = r.X
		}
		if r.X > maxX {
			maxX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.Y > maxY {
			maxY = r.Y
		}
	}

	w := float64(opts.Width)
	h := float64(opts.Height)
	innerW := w * (1 - 2*opts.Margin)
	innerH := h * (1 - 2*opts.Margin)

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	scale := innerW / spanX
	if s := innerH / spanY; s < scale {
		scale = s
	}

	// Center the fitted extent inside the margins.
	offX := (w - spanX*scale) / 2
	offY := (h - spanY*scale) / 2

	return viewport{minX: minX, minY: minY, scale: scale, offX: offX, offY: offY, height: h}
}

// Choropleth renders one variable as a filled, outlined state mesh with a
// bold title and a "%" legend. recs may be nil for an unlabeled map; the
// label stage is never touched here when it is.
func Choropleth(rows []census.FortifiedRow, variable, title string, opts Options, recs []labels.Record) (image.Image, error) {
	if len(rows) == 0 {
		return nil, eris.Wrap(ErrRender, "render: no fortified rows")
	}

	mapping, ok := census.MappingByDisplay(variable)
	if !ok {
		return nil, eris.Wrapf(ErrRender, "render: unknown variable %q", variable)
	}

	domainMin, domainMax, ok := valueDomain(rows, mapping.Semantic)
	if !ok {
		return nil, eris.Wrapf(ErrRender, "render: variable %q is null for every state, color ramp has no domain", variable)
	}

	vp := fitViewport(rows, opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Fill + outline, one feature at a time; rows are already in drawing
	// order, so vertices connect in row order.
	for start := 0; start < len(rows); {
		end := start
		for end < len(rows) && rows[end].FIPS == rows[start].FIPS {
			end++
		}
		feature := rows[start:end]

		tracePaths(dc, feature, vp)

		dc.SetFillRule(gg.FillRuleEvenOdd)
		dc.SetColor(fillColor(feature[0].Values[mapping.Semantic], domainMin, domainMax, opts))
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.Stroke()

		start = end
	}

	if err := drawTitle(dc, title, opts); err != nil {
		return nil, err
	}

	if opts.ShowLegend {
		if err := drawLegend(dc, domainMin, domainMax, opts); err != nil {
			return nil, err
		}
	}

	if recs != nil {
		if err := drawLabels(dc, recs, vp, opts); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

// Save writes an image to disk as PNG.
func Save(img image.Image, path string) error {
	if err := gg.SavePNG(path, img); err != nil {
		return eris.Wrapf(ErrRender, "render: write %s: %v", path, err)
	}
	return nil
}

// tracePaths adds one closed subpath per ring of the feature's rows.
func tracePaths(dc *gg.Context, feature []census.FortifiedRow, vp viewport) {
	ring := -1
	for _, r := range feature {
		x, y := vp.px(r.X, r.Y)
		if r.Ring != ring {
			if ring >= 0 {
				dc.ClosePath()
			}
			dc.NewSubPath()
			dc.MoveTo(x, y)
			ring = r.Ring
			continue
		}
		dc.LineTo(x, y)
	}
	dc.ClosePath()
}

// valueDomain finds the observed min/max across distinct features.
func valueDomain(rows []census.FortifiedRow, semantic string) (lo, hi float64, ok bool) {
	seen := make(map[string]bool)
	for _, r := range rows {
		if seen[r.FIPS] {
			continue
		}
		seen[r.FIPS] = true
		v := r.Values[semantic]
		if v == nil {
			continue
		}
		if !ok {
			lo, hi, ok = *v, *v, true
			continue
		}
		if *v < lo {
			lo = *v
		}
		if *v > hi {
			hi = *v
		}
	}
	return lo, hi, ok
}

// fillColor maps a value onto the ramp over the observed domain.
func fillColor(v *float64, lo, hi float64, opts Options) color.Color {
	if v == nil {
		return opts.NeutralFill
	}
	if hi == lo {
		return opts.Ramp.At(0.5)
	}
	return opts.Ramp.At((*v - lo) / (hi - lo))
}

// drawTitle draws a bold centered title.
func drawTitle(dc *gg.Context, title string, opts Options) error {
	if title == "" {
		return nil
	}
	face, err := boldFace(opts.TitleSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(opts.Width)/2, opts.TitleSize*1.2, 0.5, 0.5)
	return nil
}

// drawLegend draws a vertical gradient swatch titled "%" with min/mid/max
// entries to the right of the swatch.
func drawLegend(dc *gg.Context, lo, hi float64, opts Options) error {
	face, err := regularFace(opts.LegendSize)
	if err != nil {
		return err
	}
	titleFace, err := boldFace(opts.LegendSize * 1.2)
	if err != nil {
		return err
	}

	barW := float64(opts.Width) * 0.022
	barH := float64(opts.Height) * 0.28
	barX := float64(opts.Width) * 0.92
	barY := (float64(opts.Height) - barH) / 2

	dc.SetFontFace(titleFace)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("%", barX+barW/2, barY-opts.LegendSize, 0.5, 0.5)

	// Gradient swatch, high values at the top. Fewer than two rows
	// cannot form a gradient, so a degenerate bar stays empty.
	steps := int(barH)
	if steps >= 2 {
		for i := 0; i < steps; i++ {
			t := 1 - float64(i)/float64(steps-1)
			dc.SetColor(opts.Ramp.At(t))
			dc.DrawRectangle(barX, barY+float64(i), barW, 1)
			dc.Fill()
		}
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(barX, barY, barW, barH)
	dc.Stroke()

	dc.SetFontFace(face)
	entries := []struct {
		t float64
		v float64
	}{
		{1, hi},
		{0.5, lo + (hi-lo)/2},
		{0, lo},
	}
	for _, e := range entries {
		y := barY + (1-e.t)*barH
		dc.DrawStringAnchored(formatLegend(e.v), barX+barW+6, y, 0, 0.5)
	}
	return nil
}

// formatLegend renders a legend entry value.
func formatLegend(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// drawLabels draws each record's text at its anchor and, for external
// records only, the elbow→centroid leader segment.
func drawLabels(dc *gg.Context, recs []labels.Record, vp viewport, opts Options) error {
	for _, rec := range recs {
		if rec.External {
			ex, ey := vp.px(rec.ElbowX, rec.ElbowY)
			cx, cy := vp.px(rec.CentroidX, rec.CentroidY)
			dc.SetRGB(0, 0, 0)
			dc.SetLineWidth(0.8)
			dc.DrawLine(ex, ey, cx, cy)
			dc.Stroke()
		}

		face, err := regularFace(rec.FontSize * opts.FontScale)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		dc.SetColor(rec.Color)

		x, y := vp.px(rec.X, rec.Y)
		lines := strings.Split(rec.Text, "\n")
		lineH := rec.FontSize * opts.FontScale * 1.2
		top := y - lineH*float64(len(lines)-1)/2
		for i, line := range lines {
			dc.DrawStringAnchored(line, x, top+float64(i)*lineH, 0.5, 0.5)
		}
	}
	return nil
}
