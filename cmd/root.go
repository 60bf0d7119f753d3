package cmd

import (
	"fmt"
	"os"

	"github.com/nguyentranbao-ct/catalog-console/internal/app"
	"github.com/nguyentranbao-ct/catalog-console/internal/server"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "catalog-console",
	Short:         "Product catalog display, query console and API proxy",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		defer logger.Sync()
		app.Invoke(
			server.StartServer,
			usecase.StartDisplay,
		).Run()
	},
}

func init() {
	rootCmd.AddCommand(newQueryCmd(), newProductsCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
