package cli

import "github.com/spf13/cobra"

func addTray(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "tray",
		Short: "Open the tab tray for the most recent window.",
		Example: `
tabtray-control tray
tabtray-control tray --private --width 100
`,
		Args: cobra.NoArgs,
		RunE: rt.tray,
	}
	topLevel.AddCommand(cmd)
}
