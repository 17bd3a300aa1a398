package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCommand creates the health command
func NewHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the recommendation service is reachable",
		Args:  cobra.NoArgs,
		RunE:  runHealth,
	}
}

func runHealth(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer syncLogger(ctx.Logger)

	c, err := ctx.NewClient()
	if err != nil {
		return err
	}

	status, err := c.Health(cmd.Context())
	if err != nil {
		return err
	}
	if status == "" {
		status = "up"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.BaseURL(), status)
	return nil
}
