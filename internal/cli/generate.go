package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/moatarget/pkg/pipeline"
	"github.com/matzehuels/moatarget/pkg/render/sink"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	config  configFlags
	output  string
	formats string
	dpi     float64
}

// generateCommand creates the generate command for writing target documents.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the target document",
		Long: `Write the MOA grid target in one or more formats.

A single format is written to the output path as given. With several formats
the output's extension is replaced by each format name.`,
		Example: `  moatarget generate
  moatarget generate -f svg -o grid.svg
  moatarget generate -f pdf,png --boxes-per-inch 4 -o targets/fine
  moatarget generate -c target.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.config.resolve(cmd)
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().StringVar(&opts.config.title, "title", "", "document title")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default target.<format>)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: "+strings.Join(sink.Formats, ","))
	cmd.Flags().Float64Var(&opts.dpi, "dpi", pipeline.DefaultDPI, "PNG resolution")

	return cmd
}

// runGenerate computes the layout once, renders every format and writes the
// results.
func (c *CLI) runGenerate(ctx context.Context, opts generateOptions) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.config.load()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	runner := c.newRunner()
	popts := pipeline.Options{
		Config:  &cfg,
		Formats: parseFormats(opts.formats),
		Output:  opts.output,
		DPI:     opts.dpi,
		Logger:  logger,
	}

	spinner := newSpinner(ctx, "Rendering target...")
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.Stop()
		return err
	}
	paths, err := runner.Write(ctx, result, result.Output)
	spinner.Stop()
	if err != nil {
		return err
	}

	prog.done("Rendered",
		"formats", strings.Join(result.Formats, ","),
		"bytes", result.Stats.Bytes,
		"boxes_per_inch", result.Layout.Geometry.BoxesPerInch)
	g := result.Layout.Geometry
	printSuccess("Generated %s target (%d boxes per inch)", StyleTitle.Render(cfg.Title), g.BoxesPerInch)
	for _, p := range paths {
		printFile(p)
	}
	printDetail("box %gin · target %gin · bullseye %gin", g.Spacing.Inches(), g.SideLength.Inches(), g.BullLength.Inches())
	return nil
}
