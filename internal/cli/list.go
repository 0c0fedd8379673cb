package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/liftoff/internal/catalog"
	"github.com/modu-ai/liftoff/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List platforms, languages, extensions and templates",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().Bool("markdown", false, "Print raw markdown instead of rendering it")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	loc, err := localizer(cmd, deps.getenv("LIFTOFF_LOCALE"))
	if err != nil {
		return err
	}
	md := fmt.Sprintf("# %s\n\n%s", loc.Text("list.title"), catalog.Describe())

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "markdown") {
		_, _ = fmt.Fprint(out, md)
		return nil
	}

	rendered, err := ui.RenderMarkdown(ui.NewTheme(deps.Headless.NoColor()), md)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
