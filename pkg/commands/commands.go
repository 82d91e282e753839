package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/taskboard/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {
	noColor := false

	cmd := &cobra.Command{
		Use:   "taskboard",
		Short: base.Wrap80("A board of sticky-note tasks on the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			fd := os.Stdout.Fd()
			if noColor || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colour output.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addComplete(topLevel)
	addColor(topLevel)
	addMove(topLevel)
	addFront(topLevel)
	addShow(topLevel)
	addList(topLevel)
	addFilter(topLevel)
	addExport(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
