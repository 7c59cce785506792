package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
	"github.com/anthariksham-labs/kubera/internal/model"
	"github.com/anthariksham-labs/kubera/internal/quotes"
	"github.com/anthariksham-labs/kubera/internal/report"
)

func assetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage assets and debts",
	}

	cmd.AddCommand(addAssetCmd())
	cmd.AddCommand(listAssetsCmd())
	cmd.AddCommand(updateAssetCmd())
	cmd.AddCommand(deleteAssetCmd())

	return cmd
}

func addAssetCmd() *cobra.Command {
	var (
		assetType string
		balance   string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an asset or debt",
		Long: `Add an asset. Savings, HSA and free-form types carry a balance; Debt
balances are outstanding amounts; a Portfolio always starts empty and is
valued from its holdings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			asset, err := svc.AddAsset(cmd.Context(), args[0], model.AssetType(assetType), balance)
			if err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s asset %q", asset.Type, asset.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&assetType, "type", "t", string(model.AssetTypeSavings), "asset type (Savings, HSA, Debt, Portfolio, or free-form)")
	cmd.Flags().StringVarP(&balance, "balance", "b", "", "starting balance (ignored for Portfolio)")
	return cmd
}

func listAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assets with portfolio valuations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			doc, err := svc.Document(cmd.Context())
			if err != nil {
				return presentable(err)
			}
			if len(doc.Assets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No assets yet. Use 'kubera assets add' to create one."))
				return nil
			}

			// One-shot quote refresh so portfolio rows show live-ish prices.
			cache := quotes.NewCache()
			quotes.NewRefresher(quotes.NewMockFeed(time.Now().UnixNano()), cache, 0).RefreshOnce(doc)

			currency := displayCurrency()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Value"),
				cli.BoldStyle.Render("ID"))

			for _, a := range doc.Assets {
				value := a.Balance
				if a.Type == model.AssetTypePortfolio {
					value = report.PortfolioValue(a, cache)
				}
				display := cli.FormatAmount(value, currency)
				if a.Type == model.AssetTypeDebt {
					display = cli.ErrorStyle.Render(display)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, a.Type, display, cli.SubtleStyle.Render(a.ID))

				if a.Type == model.AssetTypePortfolio {
					for _, h := range a.Holdings {
						lot := model.Asset{Type: model.AssetTypePortfolio, Holdings: []model.Holding{h}}
						fmt.Fprintf(w, "  %s\t%s shares\t%s\t%s\n",
							h.Ticker,
							h.Shares.String(),
							cli.FormatAmount(report.PortfolioValue(lot, cache), currency),
							cli.FormatGainLoss(report.PortfolioGainLoss(lot, cache), currency))
					}
				}
			}
			return nil
		},
	}
}

func updateAssetCmd() *cobra.Command {
	var (
		name      string
		assetType string
		balance   string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an asset",
		Long:  `Update an asset in place. Only the flags you pass change; everything else is preserved.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			var patch model.AssetPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("type") {
				t := model.AssetType(assetType)
				patch.Type = &t
			}
			if cmd.Flags().Changed("balance") {
				b, err := decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("balance must be a number: %w", err)
				}
				patch.Balance = &b
			}

			if err := svc.UpdateAsset(cmd.Context(), args[0], patch); err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess("Asset updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&assetType, "type", "", "new type")
	cmd.Flags().StringVar(&balance, "balance", "", "new balance")
	return cmd
}

func deleteAssetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an asset by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			if err := svc.DeleteAsset(cmd.Context(), args[0]); err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess("Asset deleted"))
			return nil
		},
	}
}
