package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orome/automata-go/automata/render"
)

// showCmd evolves the automaton and prints the history as text.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Evolve the automaton and print it as text",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		ev := evolve()

		text, err := render.Text(ev.History(), windowSpec(ev.History()), glyphs)
		if err != nil {
			logrus.Fatalf("Render failed: %v", err)
		}
		fmt.Println(text)

		if showStats {
			ev.Metrics().Print()
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
