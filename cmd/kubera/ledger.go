package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
	"github.com/anthariksham-labs/kubera/internal/report"
)

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Record signed value changes on the asset or debt ledger",
	}

	cmd.AddCommand(addLedgerEntryCmd("asset", "Append a value change to the asset ledger"))
	cmd.AddCommand(addLedgerEntryCmd("debt", "Append a value change to the debt ledger"))
	cmd.AddCommand(listLedgerCmd())

	return cmd
}

func addLedgerEntryCmd(side, short string) *cobra.Command {
	return &cobra.Command{
		Use:   side + " <label> <value-change>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			add := svc.AddAssetEntry
			if side == "debt" {
				add = svc.AddDebtEntry
			}
			entry, err := add(cmd.Context(), args[0], args[1])
			if err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s on the %s ledger",
				cli.FormatAmount(entry.ValueChange, displayCurrency()), side)))
			return nil
		},
	}
}

func listLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List both ledgers and their balance",
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

			currency := displayCurrency()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Side"),
				cli.BoldStyle.Render("Label"),
				cli.BoldStyle.Render("Change"))
			for _, e := range doc.AssetsLedger {
				fmt.Fprintf(w, "asset\t%s\t%s\n", e.Label, cli.FormatAmount(e.ValueChange, currency))
			}
			for _, e := range doc.DebtsLedger {
				fmt.Fprintf(w, "debt\t%s\t%s\n", e.Label, cli.ErrorStyle.Render(cli.FormatAmount(e.ValueChange, currency)))
			}
			fmt.Fprintf(w, "\t%s\t%s\n",
				cli.BoldStyle.Render("Balance"),
				cli.BoldStyle.Render(cli.FormatAmount(report.LedgerBalance(doc), currency)))
			return nil
		},
	}
}
