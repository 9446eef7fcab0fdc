package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/ancestry-maps/internal/census"
	"github.com/sells-group/ancestry-maps/internal/usmap"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-variable summary statistics for the joined table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		shpPath, _ := cmd.Flags().GetString("shapefile")
		if shpPath == "" {
			shpPath = cfg.Paths.Shapefile
		}
		tablePath, _ := cmd.Flags().GetString("table")
		if tablePath == "" {
			tablePath = cfg.Paths.Table
		}

		fc, err := usmap.Load(shpPath, mapOptions(cfg.Map))
		if err != nil {
			return eris.Wrap(err, "stats: load map")
		}
		joined, err := census.Join(fc, tablePath)
		if err != nil {
			return eris.Wrap(err, "stats: join table")
		}

		vars, err := resolveVariables(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%-12s %8s %8s %8s %6s\n", "Variable", "Min", "Mean", "Max", "Null")
		fmt.Println(strings.Repeat("-", 46))

		for _, v := range vars {
			mapping, _ := census.MappingByDisplay(v)

			var min, max, sum float64
			var n, nulls int
			for _, f := range joined.FC.Features {
				val := f.Attrs[mapping.Semantic]
				if val == nil {
					nulls++
					continue
				}
				if n == 0 || *val < min {
					min = *val
				}
				if n == 0 || *val > max {
					max = *val
				}
				sum += *val
				n++
			}

			if n == 0 {
				fmt.Printf("%-12s %8s %8s %8s %6d\n", v, "-", "-", "-", nulls)
				continue
			}
			fmt.Printf("%-12s %8.1f %8.1f %8.1f %6d\n", v, min, sum/float64(n), max, nulls)
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().String("shapefile", "", "boundary shapefile path (default: from config)")
	statsCmd.Flags().String("table", "", "survey extract path (default: from config)")
	statsCmd.Flags().String("vars", "", "comma-separated variable names (default: the standard twelve)")
	rootCmd.AddCommand(statsCmd)
}
