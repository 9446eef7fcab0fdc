package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ancestry-maps/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ancestry-maps",
	Short: "Render US ancestry choropleth maps",
	Long:  "Loads a state boundary shapefile, joins a census ancestry survey extract, and renders one choropleth PNG per ancestry variable plus a combined grid.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		zap.ReplaceGlobals(zap.L().With(zap.String("run_id", uuid.NewString())))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
