package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/moa"
)

// tableCommand creates the table command, which prints the distance table
// the target would carry without rendering a document.
func (c *CLI) tableCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the distance to MOA table",
		Long: `Print how many grid boxes span one minute of angle at each configured
distance. Rows printed in color are whole-number resolutions.`,
		Example: `  moatarget table
  moatarget table --boxes-per-inch 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(cmd)
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			l, err := layout.Compute(cfg)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("built distance table", "rows", len(l.Rows))

			g := l.Geometry
			printKeyValue("Boxes per inch", StyleNumber.Render(fmt.Sprint(g.BoxesPerInch)))
			printKeyValue("Box size", fmt.Sprintf("%gin", g.Spacing.Inches()))
			printKeyValue("1 MOA at 100 yd", fmt.Sprintf("%.1f boxes", moa.BoxesPerMOA(100, g.BoxesPerInch)))
			renderDistanceTable(stdout, l.Rows)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
