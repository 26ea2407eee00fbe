package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orome/automata-go/automata"
)

// presetsCmd lists the scenarios available in the presets file.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List scenarios from the presets file",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		file, err := automata.LoadScenarios(presetsFile)
		if err != nil {
			logrus.Fatalf("Cannot load presets: %v", err)
		}
		if err := file.Validate(); err != nil {
			logrus.Fatalf("Invalid presets file: %v", err)
		}
		for _, s := range file.Scenarios {
			fmt.Printf("%-16s rule %-6s %s\n", s.Name, s.Rule, s.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
