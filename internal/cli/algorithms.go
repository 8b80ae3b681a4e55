package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/engine"
)

// algorithmsCommand creates the algorithms command, which lists every
// generation algorithm with its family.
func (c *CLI) algorithmsCommand() *cobra.Command {
	var brandName string

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the available generation algorithms",
		Long: `List every generation algorithm and its family.

Fixed algorithms derive their look from the brand name alone; infinite
algorithms consume the full seed, so every salt yields a new mark.

With --for, the deterministic selection for that brand is marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlgorithms(brandName)
		},
	}

	cmd.Flags().StringVar(&brandName, "for", "", "mark the algorithm selected for this brand name")

	return cmd
}

func runAlgorithms(brandName string) error {
	var selected, selectedInfinite algo.Name
	if brandName != "" {
		selected = engine.SelectAlgorithm(brandName)
		selectedInfinite = engine.SelectInfiniteAlgorithm(brandName)
	}

	fmt.Println(StyleTitle.Render("Algorithms"))
	printNewline()
	for _, name := range algo.Names() {
		family := string(algo.FamilyOf(name))
		line := "  " + StyleValue.Render(fmt.Sprintf("%-24s", string(name))) + StyleDim.Render(family)
		switch name {
		case selected:
			line += " " + StyleHighlight.Render("← "+brandName)
		case selectedInfinite:
			line += " " + StyleDim.Render("← "+brandName+" (infinite)")
		}
		fmt.Println(line)
	}
	printNewline()
	printNextStep("Generate with a specific algorithm", "logomark generate Acme --algorithm monogram-merge")
	return nil
}
