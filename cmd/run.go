package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orome/automata-go/automata/render"
)

var delay time.Duration // Pause between printed generations

// runCmd evolves the automaton and prints it generation by generation.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evolve the automaton and print it step by step",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		ev := evolve()

		rows, err := render.Rows(ev.History(), windowSpec(ev.History()), glyphs)
		if err != nil {
			logrus.Fatalf("Render failed: %v", err)
		}
		for _, row := range rows {
			fmt.Println(row)
			time.Sleep(delay)
		}

		if showStats {
			ev.Metrics().Print()
		}
	},
}

func init() {
	runCmd.Flags().DurationVarP(&delay, "delay", "D", 100*time.Millisecond, "Delay between printed generations")
	rootCmd.AddCommand(runCmd)
}
