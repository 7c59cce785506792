package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
)

func holdingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holdings",
		Short: "Manage stock holdings",
	}

	cmd.AddCommand(addHoldingCmd())

	return cmd
}

func addHoldingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <ticker> <shares> <purchase-price>",
		Short: "Add a purchase lot to the portfolio",
		Long: `Append a stock lot to the Portfolio asset. When no portfolio exists yet
one named "Stocks" is created. Repeated tickers stay separate lots.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			holding, err := svc.AddHolding(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s shares of %s at %s",
				holding.Shares, holding.Ticker,
				cli.FormatAmount(holding.PurchasePrice, displayCurrency()))))
			return nil
		},
	}
}
