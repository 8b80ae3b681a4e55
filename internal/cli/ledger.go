package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logomark/logomark/pkg/ledger"
)

// ledgerCommand creates the ledger command group for inspecting and
// managing the uniqueness ledger.
func (c *CLI) ledgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and manage the uniqueness ledger",
	}

	cmd.AddCommand(c.ledgerStatsCommand())
	cmd.AddCommand(c.ledgerCheckCommand())
	cmd.AddCommand(c.ledgerClearCommand())

	return cmd
}

func (c *CLI) ledgerStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ledger backend and entry count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := c.openLedger(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer led.Close()

			printKeyValue("backend", c.Config.Ledger.Backend)
			count, ok, err := ledgerLen(led)
			if err != nil {
				return err
			}
			if ok {
				printKeyValue("entries", fmt.Sprintf("%d", count))
			} else {
				printDetail("entry counts are not available for this backend")
			}
			return nil
		},
	}
}

func (c *CLI) ledgerCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <hash>",
		Short: "Check whether a logo hash is already recorded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := c.openLedger(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer led.Close()

			exists, err := led.Contains(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if exists {
				printWarning("hash %s is recorded", args[0])
			} else {
				printSuccess("hash %s is unique", args[0])
			}
			return nil
		},
	}
}

func (c *CLI) ledgerClearCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry from the file ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("clearing erases every recorded hash; re-run with --force to confirm")
			}
			led, err := c.openLedger(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer led.Close()

			f, ok := led.(*ledger.File)
			if !ok {
				return fmt.Errorf("clear is only supported for the file backend (configured: %s)", c.Config.Ledger.Backend)
			}
			if err := f.Clear(); err != nil {
				return err
			}
			printSuccess("ledger cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm clearing the ledger")

	return cmd
}

// ledgerLen reports the entry count for backends that can enumerate
// entries. The second return is false when the backend cannot.
func ledgerLen(led ledger.Ledger) (int, bool, error) {
	switch l := led.(type) {
	case *ledger.Memory:
		return l.Len(), true, nil
	case *ledger.File:
		n, err := l.Len()
		return n, err == nil, err
	default:
		return 0, false, nil
	}
}
