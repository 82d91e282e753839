package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskboard/pkg/commands/options"
	"tableflip.dev/taskboard/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole board document",
		Example: `
taskboard export > board.json
taskboard export --format toml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withBoard(cmd.Context(), func(s *session) runner {
				return &export.Export{Format: eo.Format, Service: s.service}
			})
		},
	}

	options.AddExportArgs(cmd, eo)
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{export.FormatJSON, export.FormatTOML}, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
