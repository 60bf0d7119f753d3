package cmd

import (
	"fmt"

	"github.com/nguyentranbao-ct/catalog-console/internal/app"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newProductsCmd fetches the catalog once and prints the display listing.
func newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Print the current product listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()

			var display usecase.DisplayUsecase
			if err := app.New(fx.Populate(&display)).Err(); err != nil {
				return err
			}
			if err := display.Reload(cmd.Context()); err != nil {
				return err
			}

			out, err := usecase.RenderListing(display.Snapshot())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
