package commands

import (
	"fmt"
	"strconv"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/taskboard/pkg/commands/options"
	"tableflip.dev/taskboard/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	mo := &options.MoveOptions{}

	cmd := &cobra.Command{
		Use:   "move <task id> <x> <y>",
		Short: "Move a card on the board",
		Long: base.Wrap80("Move a card to x, y. The card is kept at least partly on " +
			"the board unless --free is set. Negative coordinates go after --."),
		Example: `
taskboard move <task id> 420 180 --front
taskboard move <task id> -- -40 120
`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return oo.HandleError(fmt.Errorf("invalid x %q", args[1]))
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return oo.HandleError(fmt.Errorf("invalid y %q", args[2]))
			}
			return withBoard(cmd.Context(), func(s *session) runner {
				return &move.Move{
					ID:      args[0],
					X:       x,
					Y:       y,
					Front:   mo.Front,
					Free:    mo.Free,
					Board:   s.board(),
					Service: s.service,
					JSON:    oo.JSON,
				}
			})
		},
	}

	options.AddMoveArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addFront(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "front <task id>",
		Short: "Bring a card in front of the others",
		Example: `
taskboard front <task id>
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withBoard(cmd.Context(), func(s *session) runner {
				return &move.Front{ID: args[0], Service: s.service, JSON: oo.JSON}
			})
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
