// Package main provides the CLI entrypoint for setters-gen.
//
// setters-gen reads Go packages, picks the struct types marked with a
// //setters:gen directive (or named in setters.yaml) and writes one setter
// method per named field next to each of them.
//
// Commands:
//   - gen: generate and write the setter files
//   - check: generate in memory and fail if files on disk are missing or stale
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the state shared by every command.
type cli struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "setters-gen",
		Short: "Generate setter methods for Go struct types",
		Long: `setters-gen generates one setter method per named field of the struct
types marked with a //setters:gen directive.

The directive selects the setter shape (owned, mutable, immutable), the
visibility of the generated methods and their name prefix:

	//setters:gen immutable private prefix=with
	type Conf struct { ... }

//setters:skip disables generation for a type.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			c.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenCmd(c))
	root.AddCommand(newCheckCmd(c))

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cli{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
