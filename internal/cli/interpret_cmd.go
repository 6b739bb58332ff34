package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"wanderly/internal/itinerary"
)

func newInterpretCmd(app *App) *cobra.Command {
	var file string
	var write, asJSON bool

	cmd := &cobra.Command{
		Use:   "interpret INSTRUCTION",
		Short: "Apply one add/remove instruction to an itinerary file",
		Example: `  tripctl interpret "remove lunch on Day 2" --file trip.yaml
  tripctl interpret "add boat tour on Day 3 at 5 PM in Harbor" --file trip.json --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, format, err := readItinerary(file)
			if err != nil {
				return err
			}

			interpreter := app.Interpreter
			if interpreter == nil {
				interpreter = itinerary.NewInterpreter()
			}
			res := interpreter.Interpret(days, args[0])

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				p := printer{w: out, color: app.Color}
				p.result(res)
				p.itinerary(res.Itinerary)
			}

			if write && res.Changed() {
				if err := writeItinerary(file, res.Itinerary, format); err != nil {
					return err
				}
				if !asJSON {
					fmt.Fprintf(out, "Saved %s\n", file)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "itinerary file (.yaml, .yml or .json)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "save the file when the instruction changes it")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
