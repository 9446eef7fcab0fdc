package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ancestry-maps/internal/usmap"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the Census boundary shapefile",
	Long: `Downloads and extracts the Census cartographic boundary ZIP so later
render runs work entirely offline.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dest, _ := cmd.Flags().GetString("dest")
		if dest == "" {
			dest = cfg.Paths.FetchDir
		}
		url, _ := cmd.Flags().GetString("url")
		if url == "" {
			url = cfg.Paths.BoundaryURL
		}

		zap.L().Info("fetching boundary data",
			zap.String("command", "fetch"),
			zap.String("url", url),
			zap.String("dest", dest),
		)

		shpPath, err := usmap.Fetch(ctx, nil, url, dest)
		if err != nil {
			return eris.Wrap(err, "fetch")
		}

		fmt.Printf("Boundary shapefile ready: %s\n", shpPath)
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("dest", "", "destination directory (default: from config)")
	fetchCmd.Flags().String("url", "", "boundary ZIP URL (default: from config)")
	rootCmd.AddCommand(fetchCmd)
}
