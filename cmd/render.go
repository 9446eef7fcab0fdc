package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ancestry-maps/internal/census"
	"github.com/sells-group/ancestry-maps/internal/config"
	"github.com/sells-group/ancestry-maps/internal/render"
	"github.com/sells-group/ancestry-maps/internal/usmap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render choropleth PNGs for the ancestry variables",
	Long: `Loads the boundary shapefile, projects and relocates it into the national
frame, joins the survey extract, and writes one <Variable>.png per requested
variable plus the combined full-grid.png.

A single variable's failure is reported but does not stop the others.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := zap.L().With(zap.String("command", "render"))

		shpPath, _ := cmd.Flags().GetString("shapefile")
		if shpPath == "" {
			shpPath = cfg.Paths.Shapefile
		}
		tablePath, _ := cmd.Flags().GetString("table")
		if tablePath == "" {
			tablePath = cfg.Paths.Table
		}
		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = cfg.Paths.OutDir
		}

		vars, err := resolveVariables(cmd)
		if err != nil {
			return err
		}

		withLabels, _ := cmd.Flags().GetBool("labels")

		log.Info("starting render",
			zap.String("shapefile", shpPath),
			zap.String("table", tablePath),
			zap.Strings("variables", vars),
			zap.Bool("labels", withLabels),
		)

		fc, err := usmap.Load(shpPath, mapOptions(cfg.Map))
		if err != nil {
			return eris.Wrap(err, "render: load map")
		}

		joined, err := census.Join(fc, tablePath)
		if err != nil {
			return eris.Wrap(err, "render: join table")
		}

		opts := render.DefaultBatchOptions()
		opts.Single.Width = cfg.Render.SingleSize
		opts.Single.Height = cfg.Render.SingleSize
		opts.Single.FontScale = cfg.Render.FontScale
		opts.GridSize = cfg.Render.GridSize
		opts.GridCols = cfg.Render.GridCols
		opts.Concurrency = cfg.Render.Concurrency
		opts.OutDir = outDir
		opts.WithLabels = withLabels

		if err := render.RenderAll(ctx, joined, vars, opts); err != nil {
			return eris.Wrap(err, "render")
		}

		fmt.Printf("Rendered %d maps to %s\n", len(vars)+1, outDir)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("shapefile", "", "boundary shapefile path (default: from config)")
	renderCmd.Flags().String("table", "", "survey extract path, .csv or .xlsx (default: from config)")
	renderCmd.Flags().String("out", "", "output directory (default: from config)")
	renderCmd.Flags().String("vars", "", "comma-separated variable names (default: the standard twelve)")
	renderCmd.Flags().Bool("labels", true, "draw per-state labels and leader lines on single maps")
	rootCmd.AddCommand(renderCmd)
}

// resolveVariables picks the variable list from the flag, config, or the
// standard set, validating every name against the column mapping.
func resolveVariables(cmd *cobra.Command) ([]string, error) {
	varsStr, _ := cmd.Flags().GetString("vars")

	var vars []string
	switch {
	case varsStr != "":
		vars = splitAndTrim(varsStr)
	case len(cfg.Render.Variables) > 0:
		vars = cfg.Render.Variables
	default:
		vars = census.RenderVariables
	}

	for _, v := range vars {
		if _, ok := census.MappingByDisplay(v); !ok {
			return nil, eris.Errorf("unknown variable %q", v)
		}
	}
	return vars, nil
}

// mapOptions converts the configured projection/relocation parameters.
func mapOptions(mc config.MapConfig) usmap.Options {
	return usmap.Options{
		Projection: usmap.Projection{
			OriginLat: mc.OriginLat,
			OriginLon: mc.OriginLon,
			Radius:    mc.EarthRadius,
		},
		Relocate: usmap.RelocateOptions{
			AlaskaRotate:  mc.AlaskaRotate,
			AlaskaDivisor: mc.AlaskaDivisor,
			AlaskaShift:   [2]float64{mc.AlaskaShiftX, mc.AlaskaShiftY},
			HawaiiRotate:  mc.HawaiiRotate,
			HawaiiShift:   [2]float64{mc.HawaiiShiftX, mc.HawaiiShiftY},
		},
	}
}

// splitAndTrim splits a comma-separated flag value.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
