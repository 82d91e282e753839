package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions narrows a listing.
type FilterOptions struct {
	Filter string
	Since  string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"One of all, open or done. Defaults to the saved filter.")
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only tasks created within this age, example: --since=3d.`)
}
