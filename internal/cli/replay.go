package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tabtray-control/internal/app"
	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/spf13/cobra"
)

func addReplay(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Feed a JSON-lines file of actions through the store and print the final state.",
		Long: `Each line holds one action or engine event. Blank lines and lines starting
with # are skipped. Use - to read from standard input.`,
		Example: `
tabtray-control replay session.jsonl
cat session.jsonl | tabtray-control replay -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeIn()

			a, err := app.New(cmd.Context(), rt.cfg.App)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := a.Close(); cerr != nil {
					logging.Error(cerr)
				}
			}()
			return a.Replay(cmd.Context(), in, cmd.OutOrStdout())
		},
	}
	topLevel.AddCommand(cmd)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening replay file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
