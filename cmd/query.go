package cmd

import (
	"fmt"

	"github.com/nguyentranbao-ct/catalog-console/internal/app"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type queryOptions struct {
	method string
	url    string
	body   string
}

// newQueryCmd sends one console request and prints the recorded answer.
func newQueryCmd() *cobra.Command {
	opts := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Send a single request to the catalog service",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()

			var console usecase.ConsoleUsecase
			if err := app.New(fx.Populate(&console)).Err(); err != nil {
				return err
			}

			// an empty url lets the method pick its template
			console.SetURL(opts.url)
			if err := console.SetMethod(opts.method); err != nil {
				return err
			}
			if cmd.Flags().Changed("body") {
				console.SetBody(opts.body)
			}

			view := console.Send(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %d\n%s\n", view.Method, view.URL, view.StatusCode, view.FormattedResponse)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "X", "GET", "request method (GET, POST, PUT, DELETE)")
	cmd.Flags().StringVar(&opts.url, "url", "", "target url, defaults to the method's template")
	cmd.Flags().StringVarP(&opts.body, "body", "d", "", "request body for POST and PUT")
	return cmd
}
