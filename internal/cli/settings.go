package cli

import (
	"fmt"
	"io"

	"github.com/atomicstack/tabtray-control/internal/prefs"
	"github.com/atomicstack/tabtray-control/internal/settings"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addSettings(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the preferences the tray runs with.",
		Example: `
tabtray-control settings
tabtray-control settings --prefs-file ~/prefs.toml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := prefs.Load(rt.cfg.App.PrefsFile)
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), rt.cfg.App.PrefsFile, p)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func printSettings(out io.Writer, path string, p prefs.Prefs) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Preferences"), path)
	tbl.AddRow(bold.Sprint("Theme"), themeStatus(p.Theme))
	tbl.AddRow(bold.Sprint("Inactive tabs"), inactiveStatus(p))
	tbl.AddRow(bold.Sprint("Tracking protection"), settings.NewContentBlocker(p).Status())
	fmt.Fprintln(out, tbl)
}

func themeStatus(t prefs.Theme) string {
	if t.UseSystemAppearance {
		return "System"
	}
	if t.AutomaticBrightness {
		return fmt.Sprintf("Automatic (%.0f%%)", t.UserBrightnessThreshold*100)
	}
	return t.Manual
}

func inactiveStatus(p prefs.Prefs) string {
	if p.InactiveAfter() == 0 {
		return settings.StatusOff
	}
	return fmt.Sprintf("After %d days", p.InactiveTabs.AfterDays)
}
