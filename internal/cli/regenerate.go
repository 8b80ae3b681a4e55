package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logomark/logomark/pkg/engine"
)

// regenerateCommand creates the regenerate command. Regeneration draws one
// fresh salted candidate without recording it, so repeated calls explore
// the variation space freely.
func (c *CLI) regenerateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "regenerate <brand-name>",
		Short: "Produce one fresh variation without recording it",
		Long: `Produce a single fresh logo variation for a brand name.

The result is not written to the uniqueness ledger, so two consecutive
calls produce different marks. Use generate to record accepted logos.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegenerate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "generation algorithm (see 'logomark algorithms')")
	cmd.Flags().BoolVar(&opts.infinite, "infinite", false, "select from the full-seed algorithm family")
	cmd.Flags().StringVar(&opts.primary, "primary", "", "primary color (hex)")
	cmd.Flags().StringVar(&opts.accent, "accent", "", "accent color (hex)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit the logo as JSON")

	return cmd
}

func (c *CLI) runRegenerate(cmd *cobra.Command, brandName string, opts *generateOpts) error {
	ctx := cmd.Context()

	engOpts, err := c.engineOptions(brandName, opts)
	if err != nil {
		return err
	}

	runner := engine.NewRunner(nil, c.Logger)
	logo, err := runner.Regenerate(ctx, engOpts)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		return writeJSON(os.Stdout, logo)
	}
	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(logo.SVG), 0o644); err != nil {
			return err
		}
		printSuccess("Regenerated %s (%s)", brandName, logo.Algorithm)
		printLogoStats(1, logo.Hash, logo.Quality.Score, logo.Meta.Geometry.PathCount, engine.DefaultMinQualityScore)
		printFile(opts.output)
		return nil
	}
	fmt.Println(logo.SVG)
	return nil
}
