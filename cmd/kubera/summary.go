package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
	"github.com/anthariksham-labs/kubera/internal/quotes"
	"github.com/anthariksham-labs/kubera/internal/report"
)

func summaryCmd() *cobra.Command {
	var (
		month int
		year  int
		top   int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show net worth, net debt and monthly spending",
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

			cache := quotes.NewCache()
			quotes.NewRefresher(quotes.NewMockFeed(time.Now().UnixNano()), cache, 0).RefreshOnce(doc)

			m, y := resolveMonth(month, year)
			summary := report.Summarize(doc, m, y, cache)
			currency := displayCurrency()

			fmt.Println(cli.RenderBox("Net Worth", cli.BoldStyle.Render(cli.FormatAmount(summary.NetWorth, currency))))
			fmt.Println(cli.RenderBox("Net Debt", cli.ErrorStyle.Render(cli.FormatAmount(summary.NetDebt, currency))))

			var spend strings.Builder
			spend.WriteString(cli.BoldStyle.Render(cli.FormatAmount(summary.MonthlySpend, currency)))
			if categories := report.TopCategories(doc, m, y, top); len(categories) > 0 {
				spend.WriteString("\n\n" + cli.SubtleStyle.Render(fmt.Sprintf("Top %d categories", len(categories))))
				for _, c := range categories {
					spend.WriteString(fmt.Sprintf("\n%s  %s", cli.FormatAmount(c.Total, currency), c.Category))
				}
			}
			fmt.Println(cli.RenderBox(fmt.Sprintf("%s %d Spend %s", m, y, cli.ChartIcon), spend.String()))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default: current)")
	cmd.Flags().IntVar(&top, "top", 5, "number of top categories to show")
	return cmd
}
