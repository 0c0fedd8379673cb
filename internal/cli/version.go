package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/liftoff/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the liftoff version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "liftoff %s\n", version.GetFullVersion())
			_, _ = fmt.Fprintf(out, "libGDX %s\n", version.GdxVersion)
			return nil
		},
	}
}
