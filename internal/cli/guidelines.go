package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logomark/logomark/pkg/engine"
	"github.com/logomark/logomark/pkg/guidelines"
)

// guidelinesOpts holds the command-line flags for the guidelines command.
type guidelinesOpts struct {
	algorithm string
	company   string // display name override in the document
	primary   string
	accent    string
	jsonOut   bool
	output    string
}

// guidelinesCommand creates the guidelines command. It generates the
// brand's deterministic base mark and derives usage documentation from it.
func (c *CLI) guidelinesCommand() *cobra.Command {
	var opts guidelinesOpts

	cmd := &cobra.Command{
		Use:   "guidelines <brand-name>",
		Short: "Derive brand guidelines for a brand's logo",
		Long: `Derive brand guidelines from a brand's deterministic base logo.

The document covers clear space, minimum sizes, approved color
variations, usage rules, and typography suggestions. Output is Markdown
by default, or JSON with --json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGuidelines(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "generation algorithm (see 'logomark algorithms')")
	cmd.Flags().StringVar(&opts.company, "company", "", "company display name (defaults to the brand name)")
	cmd.Flags().StringVar(&opts.primary, "primary", "", "primary color (hex)")
	cmd.Flags().StringVar(&opts.accent, "accent", "", "accent color (hex)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit guidelines as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) runGuidelines(cmd *cobra.Command, brandName string, opts *guidelinesOpts) error {
	ctx := cmd.Context()

	genOpts := generateOpts{
		algorithm: opts.algorithm,
		primary:   opts.primary,
		accent:    opts.accent,
	}
	engOpts, err := c.engineOptions(brandName, &genOpts)
	if err != nil {
		return err
	}
	engOpts.Variations = 1
	// The base mark uses the empty salt so the same brand always yields
	// the same document.
	engOpts.Salter = func(int, int) string { return "" }
	engOpts.CandidatesPerVariation = 1

	runner := engine.NewRunner(nil, c.Logger)
	result, err := runner.Generate(ctx, engOpts)
	if err != nil {
		return err
	}
	if len(result.Logos) == 0 {
		return fmt.Errorf("no logo generated for %q", brandName)
	}

	guides := guidelines.Generate(&result.Logos[0], guidelines.Options{CompanyName: opts.company})

	var out []byte
	if opts.jsonOut {
		out, err = guides.JSON()
		if err != nil {
			return err
		}
		out = append(out, '\n')
	} else {
		out = []byte(guides.Markdown())
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, out, 0o644); err != nil {
			return err
		}
		printSuccess("Wrote guidelines for %s", brandName)
		printFile(opts.output)
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}
