package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/commands/options"
	"tableflip.dev/taskboard/pkg/runner/filter"
	"tableflip.dev/taskboard/pkg/runner/get"
	"tableflip.dev/taskboard/pkg/runner/show"
	"tableflip.dev/taskboard/pkg/timeutil"
)

func filterNames() []string {
	names := make([]string, 0, 3)
	for _, f := range board.Filters() {
		names = append(names, f.String())
	}
	return names
}

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List the tasks the saved filter shows",
		Example: `
taskboard list
taskboard list --filter done --since 1w
taskboard list --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			g := &get.Get{ShowID: io.ShowID, JSON: oo.JSON}
			if fo.Filter != "" {
				f, err := board.ParseFilter(fo.Filter)
				if err != nil {
					return oo.HandleError(err)
				}
				g.Filter = f
			}
			if fo.Since != "" {
				d, err := timeutil.ParseAge(fo.Since)
				if err != nil {
					return oo.HandleError(err)
				}
				g.Since = d
			}
			return withBoard(cmd.Context(), func(s *session) runner {
				g.Service = s.service
				return g
			})
		},
	}

	options.AddFilterArgs(cmd, fo)
	_ = cmd.RegisterFlagCompletionFunc("filter", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return filterNames(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show <task id>",
		Short: "Show one task in full",
		Example: `
taskboard show <task id>
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withBoard(cmd.Context(), func(s *session) runner {
				return &show.Show{ID: args[0], Service: s.service, JSON: oo.JSON}
			})
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addFilter(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "filter <" + strings.Join(filterNames(), "|") + ">",
		Short: "Choose which tasks the board shows",
		Example: `
taskboard filter open
`,
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: filterNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withBoard(cmd.Context(), func(s *session) runner {
				return &filter.Filter{Filter: args[0], ShowID: io.ShowID, Service: s.service, JSON: oo.JSON}
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
