package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/atomicstack/tabtray-control/internal/tabstore"
	"github.com/atomicstack/tabtray-control/internal/viewmodel"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"

	maxColWidth = 60
	timeLayout  = "2006-01-02 15:04"
)

type windowListing struct {
	Window   uuid.UUID  `json:"window"`
	Selected string     `json:"selected,omitempty"`
	Tabs     []tabs.Tab `json:"tabs"`
}

func addList(topLevel *cobra.Command, rt *runtime) {
	synced := false
	output := outputTable
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the saved tabs of every window.",
		Example: `
tabtray-control list
tabtray-control list --synced
tabtray-control list -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unknown output format %q", output)
			}
			db, err := tabstore.Open(filepath.Join(rt.cfg.App.DataDir, tabstore.FileName))
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if synced {
				clients, err := db.ClientTabs(cmd.Context())
				if err != nil && !errors.Is(err, tabstore.ErrNoAccount) {
					return err
				}
				if output == outputJSON {
					return writeJSON(out, clients)
				}
				printClients(out, clients)
				return nil
			}
			listings, err := loadWindows(cmd.Context(), db)
			if err != nil {
				return err
			}
			if output == outputJSON {
				return writeJSON(out, listings)
			}
			printWindows(out, listings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&synced, "synced", false, "List tabs open on synced devices instead.")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format. One of 'table' or 'json'.")

	topLevel.AddCommand(cmd)
}

func loadWindows(ctx context.Context, db *tabstore.Store) ([]windowListing, error) {
	windows, err := db.Windows(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]windowListing, 0, len(windows))
	for _, window := range windows {
		list, selected, err := db.LoadSession(ctx, window)
		if err != nil {
			return nil, fmt.Errorf("loading window %s: %w", window, err)
		}
		listings = append(listings, windowListing{Window: window, Selected: selected, Tabs: list})
	}
	return listings, nil
}

func printWindows(out io.Writer, listings []windowListing) {
	if len(listings) == 0 {
		fmt.Fprintln(out, "No saved windows.")
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	for i, l := range listings {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", bold.Sprint("Window"), l.Window)

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = maxColWidth
		tbl.AddRow("", bold.Sprint("TITLE"), bold.Sprint("URL"), bold.Sprint("LAST USED"))
		for _, tab := range l.Tabs {
			marker := ""
			title := displayTitle(tab)
			if tab.UUID == l.Selected {
				marker = "●"
				title = bold.Sprint(title)
			}
			if tab.IsPrivate {
				marker += "p"
			}
			tbl.AddRow(marker, title, faint.Sprint(tab.URL), tab.LastExecuted.Local().Format(timeLayout))
		}
		fmt.Fprintln(out, tbl)
	}
}

func printClients(out io.Writer, clients []viewmodel.RemoteClient) {
	if len(clients) == 0 {
		fmt.Fprintln(out, "No synced devices.")
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = maxColWidth
	tbl.AddRow(bold.Sprint("DEVICE"), bold.Sprint("TITLE"), bold.Sprint("URL"))
	for _, client := range clients {
		name := client.Name
		if len(client.Tabs) == 0 {
			tbl.AddRow(name, "(no tabs)", "")
			continue
		}
		for _, tab := range client.Tabs {
			tbl.AddRow(name, tab.Title, tab.URL)
			name = ""
		}
	}
	fmt.Fprintln(out, tbl)
}

func displayTitle(tab tabs.Tab) string {
	switch {
	case tab.Title != "":
		return tab.Title
	case tab.IsFxHomeTab():
		return "Home"
	default:
		return tab.URL
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
