package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-granny/granny"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "Check that the runtime exports every required symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := granny.LocateLibrary(locateOptions()...)
			if err != nil {
				return err
			}
			logger.Debug().Str("library", path).Msg("checking exports")

			missing, err := granny.CheckLibrary(path)
			if err != nil {
				return err
			}
			return writeSymbolReport(cmd.OutOrStdout(), path, missing)
		},
	}
}

func writeSymbolReport(w io.Writer, path string, missing []string) error {
	absent := make(map[string]bool, len(missing))
	for _, name := range missing {
		absent[name] = true
	}

	fmt.Fprintf(w, "Library: %s\n", path)
	for _, name := range granny.RequiredSymbols() {
		status := "ok"
		if absent[name] {
			status = "MISSING"
		}
		fmt.Fprintf(w, "  %-34s %s\n", name, status)
	}

	required := len(granny.RequiredSymbols())
	fmt.Fprintf(w, "%d/%d exports resolved\n", required-len(missing), required)
	if len(missing) > 0 {
		return fmt.Errorf("%d required exports missing from %s", len(missing), path)
	}
	return nil
}
