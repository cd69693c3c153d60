// Package cli provides the grannyinspect command-line interface.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-granny/granny"
	"github.com/amikos-tech/pure-granny/internal/logging"
)

var (
	// Global flags
	libPath string
	verbose bool

	logger = zerolog.Nop()
)

// Version is set by the main package at startup.
var Version = "v0.1.0-dev"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grannyinspect",
		Short: "Inspect Granny 3D (.gr2) files through the Granny runtime",
		Long: `grannyinspect loads the Granny runtime library and reports on .gr2 files:
exported symbols, scene contents and embedded textures.

The runtime is located from --lib, GRANNY_LIB_PATH, GRANNY_LIB_DIR, the
working directory or the executable's directory, in that order.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(cmd.ErrOrStderr(), verbose)
			granny.SetLogger(logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&libPath, "lib", "", "Path to the Granny runtime library (overrides GRANNY_LIB_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newTexturesCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func locateOptions() []granny.LocateOption {
	if libPath == "" {
		return nil
	}
	return []granny.LocateOption{granny.WithLibraryPath(libPath)}
}

// initRuntime loads the runtime and returns its release function.
func initRuntime() (func(), error) {
	if err := granny.InitializeLibraryWithDiscovery(locateOptions()...); err != nil {
		return nil, fmt.Errorf("failed to initialize granny runtime: %w", err)
	}
	logger.Debug().Str("library", granny.LibraryName()).Msg("granny runtime ready")

	return func() {
		if err := granny.ReleaseLibrary(); err != nil {
			logger.Warn().Err(err).Msg("failed to release granny runtime")
		}
	}, nil
}

// openFile reads a .gr2 file and returns it with its file info. The caller
// frees the file.
func openFile(path string) (*granny.File, *granny.FileInfo, error) {
	file, err := granny.ReadEntireFile(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := file.Info()
	if err != nil {
		if freeErr := file.Free(); freeErr != nil {
			logger.Warn().Err(freeErr).Str("file", path).Msg("failed to free file")
		}
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, info, nil
}

func freeFile(file *granny.File, path string) {
	if err := file.Free(); err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("failed to free file")
	}
}
