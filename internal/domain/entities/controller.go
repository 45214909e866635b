package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra metadata a controller exposes for its subcommand.
type ControllerBind struct {
	Use     string
	Short   string
	Long    string
	Example string
	NArgs   int // exact number of positional arguments
}

// Controller is implemented by every subcommand handler.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
