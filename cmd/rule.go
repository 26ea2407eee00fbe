package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orome/automata-go/automata"
)

// ruleCmd prints a rule's lookup table without running a simulation.
var ruleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Print a rule's lookup table",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		id, err := automata.ParseIdentifier(ruleFlag)
		if err != nil {
			logrus.Fatalf("Invalid rule: %v", err)
		}
		rule, err := automata.NewRule(id, base, width)
		if err != nil {
			logrus.Fatalf("Invalid rule: %v", err)
		}

		fmt.Printf("Rule %s (base %d, width %d): %s\n", rule.Identifier(), rule.Base(), rule.Width(), rule.Encoding())
		outputs := rule.Outputs()
		for v := len(outputs) - 1; v >= 0; v-- {
			fmt.Printf("  %s -> %c\n", tupleDigits(v, rule.Base(), rule.Width()), automata.Alphabet[outputs[v]])
		}
	},
}

// tupleDigits renders a neighbor tuple's numeric value as its width alphabet
// digits, leftmost neighbor first.
func tupleDigits(v, base, width int) string {
	digits := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		digits[i] = automata.Alphabet[v%base]
		v /= base
	}
	return string(digits)
}

func init() {
	rootCmd.AddCommand(ruleCmd)
}
