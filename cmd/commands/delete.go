package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete one of your products",
		Long: `Delete a product you own (requires login). Asks for confirmation
unless --yes is passed.

Examples:
  hrayfi delete 42
  hrayfi delete 42 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseID(args[0])
	if err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	if _, err := ctx.RequireSession(); err != nil {
		return err
	}

	product, err := ctx.Client.GetProduct(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch product %d: %w", id, err)
	}

	confirmed, err := cli.Confirm(fmt.Sprintf("Delete product %q (#%d)? This cannot be undone.", product.Name, product.ID), false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Delete cancelled")
		return nil
	}

	if err := ctx.Client.DeleteProduct(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	cli.PrintSuccess("Deleted product %q (#%d)", product.Name, product.ID)
	return nil
}
