package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabgrid/pkg/settings"
)

// storeCommand creates the settings store management command.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the settings store",
	}

	cmd.AddCommand(c.storePathCommand())
	cmd.AddCommand(c.storeClearCommand())

	return cmd
}

// storePathCommand creates the "store path" subcommand.
func (c *CLI) storePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the settings document is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()
			fmt.Fprintln(stdout, settings.Describe(store))
			return nil
		},
	}
}

// storeClearCommand creates the "store clear" subcommand.
func (c *CLI) storeClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the settings document of the profile",
		Long: `Delete the settings document of the current profile. The next command
starts again from the default layouts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(settings.Clearer)
			if !ok {
				printWarning("The %s store cannot be cleared", c.config().Store.Backend)
				return nil
			}
			if err := clearer.Clear(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Cleared profile %s", c.config().Profile)
			printDetail("Location: %s", settings.Describe(store))
			return nil
		},
	}
}
