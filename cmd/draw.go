package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orome/automata-go/automata/render"
)

var (
	format   string        // Output image format
	output   string        // Output file path; empty derives one from the run
	scale    int           // Pixels per cell
	gifDelay time.Duration // Pause between animated GIF frames
)

// drawCmd evolves the automaton and writes it as an image file.
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Evolve the automaton and save it as an image file",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		ev := evolve()

		path := output
		if path == "" {
			path = fmt.Sprintf("automaton-%s-%s-%d-%d-%d-%s.%s",
				ruleFlag, seedDescription(), ev.Config().Base, ev.Config().Cells,
				ev.Config().Generations, ev.Config().Boundary, format)
		}
		file, err := os.Create(path)
		if err != nil {
			logrus.Fatalf("Cannot create %s: %v", path, err)
		}
		defer file.Close()

		h := ev.History()
		spec := windowSpec(h)
		palette := render.DefaultPalette(ev.Config().Base)
		switch format {
		case "png":
			err = render.EncodePNG(file, h, spec, palette, scale)
		case "jpeg", "jpg":
			err = render.EncodeJPEG(file, h, spec, palette, scale)
		case "gif":
			err = render.EncodeGIF(file, h, spec, palette, scale, int(gifDelay/(10*time.Millisecond)))
		default:
			logrus.Fatalf("Unknown format %q, must be png, jpeg, or gif", format)
		}
		if err != nil {
			logrus.Fatalf("Encoding failed: %v", err)
		}
		logrus.Infof("Wrote %s", path)
		fmt.Println(path)
	},
}

func init() {
	drawCmd.Flags().StringVarP(&format, "format", "F", "png", "Output image format (png, jpeg, gif)")
	drawCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default derives from the run)")
	drawCmd.Flags().IntVar(&scale, "scale", 4, "Pixels per cell")
	drawCmd.Flags().DurationVar(&gifDelay, "gif-delay", 100*time.Millisecond, "Pause between animated GIF frames")
	rootCmd.AddCommand(drawCmd)
}
