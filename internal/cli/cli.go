package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/moatarget/pkg/buildinfo"
	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/pipeline"
	"github.com/matzehuels/moatarget/pkg/render/sink"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger. The logger also
// receives the PNG rasterizer's diagnostics.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	sink.SetRasterLogger(logger)
	return &CLI{Logger: logger}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand it generates the default target.pdf.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   buildinfo.Name,
		Short: "moatarget prints MOA grid shooting targets",
		Long: `moatarget generates a printable US Letter shooting target: a square grid with
a centered bullseye, crosshair lines, a 1-inch reference ruler and a table
that maps shooting distance to grid resolution in MOA.

Run without arguments to write target.pdf to the current directory.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), generateOptions{})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// configFlags are the configuration flags shared by generate and table.
type configFlags struct {
	path         string
	boxesPerInch int
	title        string

	// boxesPerInchSet is true when --boxes-per-inch was given, even as 0.
	boxesPerInchSet bool
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "config", "c", "", "config file (.toml, .yaml)")
	cmd.Flags().IntVar(&f.boxesPerInch, "boxes-per-inch", 0, "grid boxes per inch (overrides config)")
}

// resolve records which overrides were given on the command line.
func (f *configFlags) resolve(cmd *cobra.Command) {
	f.boxesPerInchSet = cmd.Flags().Changed("boxes-per-inch")
}

// load reads the configuration file, if any, and applies flag overrides.
func (f *configFlags) load() (config.Config, error) {
	cfg := config.Default()
	if f.path != "" {
		loaded, err := config.Load(f.path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if f.boxesPerInchSet {
		cfg.Grid.BoxesPerInch = f.boxesPerInch
	}
	if f.title != "" {
		cfg.Title = f.title
	}
	return cfg, cfg.Validate()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// stdout is where command results are printed; tests replace it.
var stdout io.Writer = os.Stdout
