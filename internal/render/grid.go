package render

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/ancestry-maps/internal/census"
	"github.com/sells-group/ancestry-maps/internal/labels"
)

// BatchOptions configures the per-variable render loop.
type BatchOptions struct {
	Single      Options
	GridSize    int // combined image edge, pixels
	GridCols    int
	Concurrency int
	OutDir      string
	WithLabels  bool
}

// DefaultBatchOptions renders 1000×1000 singles and a 1200×1200
// three-column grid.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Single:      DefaultOptions(),
		GridSize:    1200,
		GridCols:    3,
		Concurrency: 4,
	}
}

// RenderAll renders one PNG per variable plus the combined grid. Each
// variable's failure is logged and collected without aborting the rest;
// the combined error reports every failed image at the end.
func RenderAll(ctx context.Context, j *census.Joined, vars []string, opts BatchOptions) error {
	if opts.GridCols <= 0 {
		opts.GridCols = 3
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}

	log := zap.L().With(zap.String("component", "render.batch"))

	var mu sync.Mutex
	var failed []string

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for _, v := range vars {
		variable := v
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			if err := renderOne(j, variable, opts); err != nil {
				log.Warn("variable render failed, continuing",
					zap.String("variable", variable),
					zap.Error(err),
				)
				mu.Lock()
				failed = append(failed, variable)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "render: batch cancelled")
	}

	gridImg, err := Grid(j, vars, opts)
	if err != nil {
		log.Warn("combined grid render failed", zap.Error(err))
		failed = append(failed, "full-grid")
	} else {
		gridPath := filepath.Join(opts.OutDir, "full-grid.png")
		if err := Save(gridImg, gridPath); err != nil {
			log.Warn("combined grid write failed", zap.Error(err))
			failed = append(failed, "full-grid")
		}
	}

	if len(failed) > 0 {
		return eris.Wrapf(ErrRender, "render: %d image(s) failed: %v", len(failed), failed)
	}

	log.Info("all maps rendered",
		zap.Int("variables", len(vars)),
		zap.String("out_dir", opts.OutDir),
	)
	return nil
}

// renderOne renders a single labeled or unlabeled variable map. The label
// placer runs only when labels were requested.
func renderOne(j *census.Joined, variable string, opts BatchOptions) error {
	var recs []labels.Record
	if opts.WithLabels {
		var err error
		recs, err = labels.Place(j.FC, variable)
		if err != nil {
			return err
		}
	}

	title := fmt.Sprintf("%% reporting %s ancestry", variable)
	img, err := Choropleth(j.Rows, variable, title, opts.Single, recs)
	if err != nil {
		return err
	}

	return Save(img, filepath.Join(opts.OutDir, variable+".png"))
}

// Grid composites every variable into one unlabeled multi-panel image,
// GridCols panels per row. A failed panel is logged and left blank.
func Grid(j *census.Joined, vars []string, opts BatchOptions) (image.Image, error) {
	if len(vars) == 0 {
		return nil, eris.Wrap(ErrRender, "render: no variables for grid")
	}

	log := zap.L().With(zap.String("component", "render.grid"))

	cols := opts.GridCols
	rows := (len(vars) + cols - 1) / cols
	cellW := opts.GridSize / cols
	cellH := opts.GridSize / rows

	panelOpts := opts.Single
	panelOpts.Width = cellW
	panelOpts.Height = cellH
	panelOpts.TitleSize = 13
	panelOpts.LegendSize = 8
	panelOpts.ShowLegend = false
	panelOpts.Margin = 0.06

	dc := gg.NewContext(opts.GridSize, opts.GridSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	var blank int
	for i, v := range vars {
		img, err := Choropleth(j.Rows, v, v, panelOpts, nil)
		if err != nil {
			log.Warn("grid panel failed, leaving blank",
				zap.String("variable", v),
				zap.Error(err),
			)
			blank++
			continue
		}
		dc.DrawImage(img, (i%cols)*cellW, (i/cols)*cellH)
	}

	if blank == len(vars) {
		return nil, eris.Wrap(ErrRender, "render: every grid panel failed")
	}
	return dc.Image(), nil
}
