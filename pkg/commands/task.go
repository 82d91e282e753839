package commands

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/commands/options"
	"tableflip.dev/taskboard/pkg/runner/add"
	"tableflip.dev/taskboard/pkg/runner/color"
	"tableflip.dev/taskboard/pkg/runner/complete"
	"tableflip.dev/taskboard/pkg/runner/edit"
	"tableflip.dev/taskboard/pkg/runner/remove"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
taskboard add buy milk
taskboard add walk the dog --desc "around the block" --color 6
taskboard add call mum --x 40 --y 60
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			placed := options.Changed(cmd, "x") || options.Changed(cmd, "y")
			return withBoard(cmd.Context(), func(s *session) runner {
				return &add.Add{
					Service:     s.service,
					Title:       to.Title,
					Description: to.Description,
					Color:       to.Color,
					Placed:      placed,
					X:           to.X,
					Y:           to.Y,
					Board:       s.board(),
					Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
					JSON:        oo.JSON,
				}
			})
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddPositionArgs(cmd, to)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Change the title, description or colour of a task",
		Example: `
taskboard edit <task id> --title "buy oat milk"
taskboard edit <task id> --desc ""
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var patch app.Patch
			if options.Changed(cmd, "title") {
				patch.Title = &to.Title
			}
			if options.Changed(cmd, "desc") {
				patch.Description = &to.Description
			}
			if options.Changed(cmd, "color") {
				patch.Color = &to.Color
			}
			return withBoard(cmd.Context(), func(s *session) runner {
				return &edit.Edit{Service: s.service, ID: args[0], Patch: patch, JSON: oo.JSON}
			})
		},
	}

	options.AddEditArgs(cmd, to)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <task id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Delete a task",
		Example: `
taskboard rm <task id>
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withBoard(cmd.Context(), func(s *session) runner {
				return &remove.Remove{ID: args[0], Service: s.service, JSON: oo.JSON}
			})
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <task id>",
		Aliases: []string{"toggle", "complete"},
		Short:   "Mark a task done, or open again",
		Example: `
taskboard done <task id>
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withBoard(cmd.Context(), func(s *session) runner {
				return &complete.Complete{ID: args[0], Service: s.service, JSON: oo.JSON}
			})
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addColor(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "color <task id> <0-7>",
		Aliases: []string{"colour"},
		Short:   "Set the colour of a card",
		Example: `
taskboard color <task id> 4
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := strconv.Atoi(args[1])
			if err != nil {
				return oo.HandleError(fmt.Errorf("invalid colour %q", args[1]))
			}
			return withBoard(cmd.Context(), func(s *session) runner {
				return &color.Color{ID: args[0], Color: c, Service: s.service, JSON: oo.JSON}
			})
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
