package options

import (
	"github.com/spf13/cobra"
)

// MoveOptions
type MoveOptions struct {
	Front bool
	Free  bool
}

func AddMoveArgs(cmd *cobra.Command, o *MoveOptions) {
	cmd.Flags().BoolVar(&o.Front, "front", false,
		"Also bring the card to the front.")
	cmd.Flags().BoolVar(&o.Free, "free", false,
		"Do not keep the card within the board bounds.")
}
