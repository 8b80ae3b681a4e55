package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/engine"
	"github.com/logomark/logomark/pkg/guidelines"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	algorithm   string // generation algorithm (empty selects by brand hash)
	infinite    bool   // restrict brand-based selection to the full-seed family
	interactive bool   // pick the algorithm in a TUI list
	variations  int    // number of variations to produce
	minScore    float64
	candidates  int    // candidate budget per variation
	primary     string // primary brand color
	accent      string // accent brand color
	category    string // free-form category recorded in metadata
	output      string // output directory (stdout if empty)
	jsonOut     bool   // emit the full result as JSON instead of SVG files
	withGuides  bool   // also write brand guidelines per variation
	noLedger    bool   // skip the configured ledger, use an isolated one
}

// generateCommand creates the generate command, the main entry point.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <brand-name>",
		Short: "Generate logo variations for a brand name",
		Long: `Generate deterministic SVG logo variations for a brand name.

The algorithm is chosen from the brand name unless overridden, every
variation is scored for quality, and accepted marks are recorded in the
uniqueness ledger.

Examples:
  logomark generate Acme
  logomark generate Acme --algorithm monogram-merge --variations 3
  logomark generate Acme --infinite --output ./logos --guidelines
  logomark generate Acme --json > acme.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "generation algorithm (see 'logomark algorithms')")
	cmd.Flags().BoolVar(&opts.infinite, "infinite", false, "select from the full-seed algorithm family")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the algorithm interactively")
	cmd.Flags().IntVarP(&opts.variations, "variations", "n", 0, "number of variations")
	cmd.Flags().Float64Var(&opts.minScore, "min-score", 0, "quality acceptance threshold (0-100)")
	cmd.Flags().IntVar(&opts.candidates, "candidates", 0, "candidate budget per variation")
	cmd.Flags().StringVar(&opts.primary, "primary", "", "primary color (hex)")
	cmd.Flags().StringVar(&opts.accent, "accent", "", "accent color (hex)")
	cmd.Flags().StringVar(&opts.category, "category", "", "brand category recorded in metadata")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (stdout if empty)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit full result as JSON")
	cmd.Flags().BoolVar(&opts.withGuides, "guidelines", false, "also write brand guidelines per variation")
	cmd.Flags().BoolVar(&opts.noLedger, "no-ledger", false, "do not record results in the configured ledger")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, brandName string, opts *generateOpts) error {
	engOpts, err := c.engineOptions(brandName, opts)
	if err != nil {
		return err
	}

	runner, closeLedger, err := c.newRunner(ctx, opts.noLedger)
	if err != nil {
		return err
	}
	defer closeLedger()

	prog := newProgress(c.Logger)
	var spin *spinner
	if !opts.jsonOut {
		spin = newSpinner(fmt.Sprintf("Generating logos for %s", brandName))
		spin.start()
	}

	result, err := runner.Generate(ctx, engOpts)
	if spin != nil {
		spin.stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d variations in %d attempts", len(result.Logos), result.Stats.Attempts))

	if opts.jsonOut {
		return writeJSON(os.Stdout, result)
	}
	return c.writeLogos(brandName, opts, engOpts.MinQualityScore, result)
}

// engineOptions maps CLI flags onto engine options, falling back to the
// config file's defaults for anything unset.
func (c *CLI) engineOptions(brandName string, opts *generateOpts) (engine.Options, error) {
	name, err := resolveAlgorithm(brandName, opts)
	if err != nil {
		return engine.Options{}, err
	}

	defaults := c.Config.Defaults
	engOpts := engine.Options{
		BrandName:              brandName,
		Algorithm:              name,
		Variations:             opts.variations,
		MinQualityScore:        opts.minScore,
		CandidatesPerVariation: opts.candidates,
		PrimaryColor:           opts.primary,
		AccentColor:            opts.accent,
		Category:               opts.category,
		Logger:                 c.Logger,
	}
	if engOpts.Variations == 0 {
		engOpts.Variations = defaults.Variations
	}
	if engOpts.MinQualityScore == 0 {
		engOpts.MinQualityScore = defaults.MinScore
	}
	if engOpts.CandidatesPerVariation == 0 {
		engOpts.CandidatesPerVariation = defaults.Candidates
	}
	if engOpts.PrimaryColor == "" {
		engOpts.PrimaryColor = defaults.PrimaryColor
	}
	if engOpts.AccentColor == "" {
		engOpts.AccentColor = defaults.AccentColor
	}
	return engOpts, nil
}

// resolveAlgorithm applies the flag precedence: explicit name, interactive
// pick, infinite-family selection, then brand-hash selection (left to the
// engine when empty).
func resolveAlgorithm(brandName string, opts *generateOpts) (algo.Name, error) {
	if opts.algorithm != "" {
		name := algo.Name(opts.algorithm)
		if !algo.Valid(name) {
			return "", fmt.Errorf("unknown algorithm %q (see 'logomark algorithms')", opts.algorithm)
		}
		return name, nil
	}
	if opts.interactive {
		name, err := pickAlgorithm(brandName)
		if err != nil {
			return "", err
		}
		if name == "" {
			return "", fmt.Errorf("no algorithm selected")
		}
		return name, nil
	}
	if opts.infinite {
		return engine.SelectInfiniteAlgorithm(brandName), nil
	}
	return "", nil
}

// writeLogos writes each variation's SVG (and optional guidelines) to the
// output directory, or the first SVG to stdout when no directory is given.
func (c *CLI) writeLogos(brandName string, opts *generateOpts, threshold float64, result *engine.Result) error {
	if opts.output == "" {
		for i, logo := range result.Logos {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(logo.SVG)
		}
		return nil
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return err
	}

	slug := brandSlug(brandName)
	printSuccess("Generated %d variations for %s", len(result.Logos), brandName)
	if len(result.Logos) > 0 {
		name := result.Logos[0].Algorithm
		printInfo("algorithm: %s (%s)", name, algo.FamilyOf(name))
	}
	var below int
	for _, logo := range result.Logos {
		if logo.Quality.Score < threshold {
			below++
		}
		base := fmt.Sprintf("%s-%s-%d", slug, logo.Algorithm, logo.Variant+1)

		svgPath := filepath.Join(opts.output, base+".svg")
		if err := os.WriteFile(svgPath, []byte(logo.SVG), 0o644); err != nil {
			return err
		}
		printLogoStats(logo.Variant+1, logo.Hash, logo.Quality.Score, logo.Meta.Geometry.PathCount, threshold)
		printFile(svgPath)

		if opts.withGuides {
			guides := guidelines.Generate(&logo, guidelines.Options{})
			mdPath := filepath.Join(opts.output, base+"-guidelines.md")
			if err := os.WriteFile(mdPath, []byte(guides.Markdown()), 0o644); err != nil {
				return err
			}
			printFile(mdPath)
		}
	}
	if result.Stats.Duplicate > 0 {
		printWarning("%d duplicate candidates were resampled", result.Stats.Duplicate)
	}
	if below > 0 {
		printError("%d variations scored below the %.0f threshold", below, threshold)
	}
	printNewline()
	printNextStep("Derive guidelines", fmt.Sprintf("logomark guidelines %q", brandName))
	return nil
}

// brandSlug converts a brand name into a filesystem-safe file stem.
func brandSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "logo"
	}
	return b.String()
}

// writeJSON writes v as indented JSON.
func writeJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
