package cli

import (
	"github.com/spf13/cobra"
	"wanderly/internal/itinerary"
)

// App holds what the tripctl commands share.
type App struct {
	Interpreter *itinerary.Interpreter
	Color       bool
}

// NewRootCmd creates the top-level "tripctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Edit itinerary files with plain-language instructions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInterpretCmd(app),
		newSampleCmd(app),
	)

	return root
}
