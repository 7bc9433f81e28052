package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"setter-generator/internal/analyze"
	"setter-generator/internal/config"
	"setter-generator/internal/diagnostic"
	"setter-generator/internal/gen"
)

// ErrStale is returned by check when generated files differ from the disk.
var ErrStale = errors.New("generated files are out of date")

// runOptions are the flags shared by gen and check.
type runOptions struct {
	configPath      string
	outDir          string
	all             bool
	workers         int
	keepUnformatted bool
	dryRun          bool
}

func (o *runOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "Path to a setters.yaml file")
	cmd.Flags().StringVarP(&o.outDir, "out", "o", "", "Write every file to this directory instead of next to its record")
	cmd.Flags().BoolVar(&o.all, "all", false, "Generate for every struct type, not only the ones with a directive")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "Parallel workers (default GOMAXPROCS)")
}

func newGenCmd(c *cli) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate setter files",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, failed, err := c.generate(cmd.Context(), cmd.ErrOrStderr(), opts, args)
			if err != nil {
				return err
			}

			if opts.dryRun {
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f.Path())
				}

				return failed
			}

			written, err := gen.WriteFiles(files)
			for _, path := range written {
				c.logger.Info("wrote file", zap.String("path", path))
			}

			if err != nil {
				return errors.Join(err, failed)
			}

			c.logger.Debug("files up to date", zap.Int("unchanged", len(files)-len(written)))

			return failed
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the files that would be written")
	cmd.Flags().BoolVar(&opts.keepUnformatted, "keep-unformatted", false,
		"Write a .unformatted.go.txt sidecar when a file fails to format")

	return cmd
}

func newCheckCmd(c *cli) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Verify that generated setter files are up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, failed, err := c.generate(cmd.Context(), cmd.ErrOrStderr(), opts, args)
			if err != nil {
				return err
			}

			stale, err := staleFiles(files)
			if err != nil {
				return errors.Join(err, failed)
			}

			for _, path := range stale {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			if len(stale) > 0 {
				return errors.Join(fmt.Errorf("%w: %d file(s)", ErrStale, len(stale)), failed)
			}

			return failed
		},
	}

	opts.bind(cmd)

	return cmd
}

// generate loads the packages, applies the config file and renders every
// selected record. Diagnostics are printed to stderr. It returns the files of
// every record that succeeded; failed combines the record errors, which never
// keep a sibling's files from being returned. err is set when nothing could
// be generated at all.
func (c *cli) generate(
	ctx context.Context, stderr io.Writer, opts runOptions, patterns []string,
) (files []gen.GeneratedFile, failed error, err error) {
	var file *config.File

	if opts.configPath != "" {
		file, err = config.LoadFile(opts.configPath)
		if err != nil {
			return nil, nil, err
		}
	}

	gcfg := generatorConfig(file, opts)

	acfg := analyze.Config{All: opts.all, GeneratedHeader: gcfg.Header}
	if file != nil {
		acfg.Select = file.Selects
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	c.logger.Debug("loading packages", zap.Strings("patterns", patterns))

	records, err := analyze.NewAnalyzer(acfg).WithLogger(c.logger.Named("analyze")).LoadPackages(patterns...)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Debug("loaded records", zap.Int("records", len(records)))

	diags := &diagnostic.Diagnostics{}
	if file != nil {
		diags = config.Validate(file, records)
		records = file.ApplyAll(records)
	}

	g := gen.NewGenerator(gcfg).WithLogger(c.logger.Named("gen"))

	results, err := g.GenerateAll(ctx, records)
	if err != nil {
		return nil, nil, err
	}

	diags.Merge(gen.Diagnose(results))

	for _, d := range diags.All() {
		if d.Severity == diagnostic.DiagnosticInfo && !c.verbose {
			continue
		}

		fmt.Fprintln(stderr, d.String())
	}

	for _, res := range results {
		if res.Err == nil {
			files = append(files, res.Files...)
		}
	}

	return files, diags.Error(), nil
}

// generatorConfig layers the config file and the flags over the defaults.
func generatorConfig(file *config.File, opts runOptions) gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()

	if file != nil {
		if file.Output.Suffix != "" {
			cfg.Suffix = file.Output.Suffix
		}

		if file.Output.Header != "" {
			cfg.Header = file.Output.Header
		}

		cfg.OutputDir = file.Output.Dir
	}

	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}

	cfg.Workers = opts.workers
	cfg.KeepUnformatted = opts.keepUnformatted

	return cfg
}

// staleFiles returns the paths whose content on disk differs from files.
func staleFiles(files []gen.GeneratedFile) ([]string, error) {
	var stale []string

	for _, f := range files {
		got, err := os.ReadFile(f.Path())
		if errors.Is(err, os.ErrNotExist) {
			stale = append(stale, f.Path())
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Path(), err)
		}

		if !bytes.Equal(got, f.Content) {
			stale = append(stale, f.Path())
		}
	}

	return stale, nil
}
