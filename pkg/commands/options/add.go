package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions holds the editable fields of a task.
type TaskOptions struct {
	Title       string
	Description string
	Color       int
	X, Y        float64
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		"Longer description shown on the card.")
	cmd.Flags().IntVarP(&o.Color, "color", "c", 0,
		"Card colour, 0 to 7. See `taskboard key`.")
}

func AddPositionArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().Float64Var(&o.X, "x", 0,
		"Horizontal position on the board. Defaults to near the centre.")
	cmd.Flags().Float64Var(&o.Y, "y", 0,
		"Vertical position on the board. Defaults to near the centre.")
}

func AddEditArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"New title.")
	AddTaskArgs(cmd, o)
}

// Changed reports whether the named flag was set on the command line.
func Changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
