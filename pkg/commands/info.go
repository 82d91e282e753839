package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskboard/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the board and where it is stored.",
		Example: `
taskboard info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withBoard(cmd.Context(), func(s *session) runner {
				return &info.Info{Config: s.cfg, Store: s.store, Service: s.service}
			})
		},
	}

	topLevel.AddCommand(cmd)
}
