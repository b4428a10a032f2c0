package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/Gorgui12/tekalis-configurator/internal/api/client"
)

func catalogCmd() *cobra.Command {
	catalogRoot := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and reload the server catalog",
	}

	catalogRoot.AddCommand(
		catalogListCmd(),
		catalogGetCmd(),
		catalogRefreshCmd(),
	)

	return catalogRoot
}

func catalogListCmd() *cobra.Command {
	var params apiclient.ListCatalogParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products with optional filters",
		Example: `  # Everything, in catalog order
  cfgr catalog list

  # Lenovo gaming machines
  cfgr catalog list --usage gaming --brand lenovo

  # Ultrabooks under 900 000
  cfgr catalog list --weight-class very_portable --max-price 900000

  # Second page of 5
  cfgr catalog list --limit 5 --offset 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListCatalog(context.Background(), &params)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(w, resp)
			}

			if len(resp.Items) == 0 {
				_, err := fmt.Fprintln(w, "No products found.")
				return err
			}

			if _, err := fmt.Fprintf(w, "Showing %d of %d products (source: %s)\n\n",
				len(resp.Items), resp.Total, resp.Source); err != nil {
				return err
			}
			return printCatalogTable(w, resp.Items)
		},
	}
	cmd.Flags().StringVar(&params.Usage, "usage", "", "usage filter")
	cmd.Flags().StringVar(&params.Brand, "brand", "", "brand or name substring filter")
	cmd.Flags().StringVar(&params.WeightClass, "weight-class", "", "portability band filter")
	cmd.Flags().Int64Var(&params.MinPrice, "min-price", 0, "lowest price, inclusive")
	cmd.Flags().Int64Var(&params.MaxPrice, "max-price", 0, "highest price, inclusive")
	cmd.Flags().StringVar(&params.Search, "search", "", "name substring filter")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "result offset")

	return cmd
}

func catalogGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show product details",
		Example: `  cfgr catalog get apple-macbook-air-m2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := newClient().GetCatalogItem(context.Background(), args[0])
			if err != nil {
				if apiclient.IsNotFound(err) {
					return fmt.Errorf("product %q not found", args[0])
				}
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), item)
			}
			return printCatalogDetail(cmd.OutOrStdout(), item)
		},
	}
}

func catalogRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Make the server reload its catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().RefreshCatalog(context.Background())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(w, resp)
			}
			_, err = fmt.Fprintf(w,
				"Catalog reloaded from %s: %d products (%d malformed, %d duplicates dropped) in %dms\n",
				resp.Source, resp.Items, resp.Malformed, resp.Duplicates, resp.DurationMs,
			)
			return err
		},
	}
}
