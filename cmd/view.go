package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orome/automata-go/automata"
	"github.com/orome/automata-go/automata/viewer"
)

var (
	viewScale int // Pixels per cell in the viewer window
	viewTPS   int // Generations per second
	viewRows  int // Visible generations before the display scrolls
)

// viewCmd opens the interactive viewer. It requires a build with the ebiten
// tag; otherwise it reports how to enable the viewer.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Watch the automaton evolve in an interactive window",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		// The viewer advances one generation per tick for as long as the
		// window is open; cap memory via retention instead of steps.
		if cfg.KeepLast == 0 {
			cfg.KeepLast = viewRows
		}
		ev, err := automata.NewEvolver(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		if err := viewer.Run(ev, viewer.Options{Scale: viewScale, TPS: viewTPS, Rows: viewRows}); err != nil {
			logrus.Fatalf("Viewer: %v", err)
		}
	},
}

func init() {
	viewCmd.Flags().IntVar(&viewScale, "scale", 4, "Pixels per cell")
	viewCmd.Flags().IntVar(&viewTPS, "tps", 30, "Generations per second")
	viewCmd.Flags().IntVar(&viewRows, "rows", 200, "Visible generations before the display scrolls")
	rootCmd.AddCommand(viewCmd)
}
