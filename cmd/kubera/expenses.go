package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
	"github.com/anthariksham-labs/kubera/internal/model"
	"github.com/anthariksham-labs/kubera/internal/report"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Record and review expenses",
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record a new expense",
		Long:  `Record an expense with an amount and category. A new category name is added to the category set automatically.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			expense, err := svc.AddExpense(cmd.Context(), args[0], args[1], description)
			if err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s under %s",
				cli.FormatAmount(expense.Amount, displayCurrency()), expense.Category)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	return cmd
}

func listExpensesCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the month's expenses, newest first",
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

			m, y := resolveMonth(month, year)
			renderExpenses(os.Stdout, doc, m, y, displayCurrency())
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default: current)")
	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			if err := svc.DeleteExpense(cmd.Context(), strings.TrimSpace(args[0])); err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess("Expense deleted"))
			return nil
		},
	}
}

// renderExpenses writes the month's expenses as a table, newest first.
// Dates print in UTC, the same clock the month filter uses, so an expense
// never shows a date outside the month it was selected for.
func renderExpenses(out io.Writer, doc *model.Document, m time.Month, y int, currency string) {
	expenses := report.MonthlyExpenses(doc, m, y)
	if len(expenses) == 0 {
		fmt.Fprintln(out, cli.InfoStyle.Render(fmt.Sprintf("No expenses recorded for %s %d.", m, y)))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Amount"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Description"),
		cli.BoldStyle.Render("ID"))

	for _, e := range expenses {
		desc := e.Description
		if desc == "" {
			desc = cli.SubtleStyle.Render("(none)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.UTC().Format("2006-01-02"),
			cli.FormatAmount(e.Amount, currency),
			e.Category,
			desc,
			cli.SubtleStyle.Render(e.ID))
	}

	total := report.MonthlyTotal(doc, m, y)
	fmt.Fprintf(w, "\t%s\t\t\t\n", cli.BoldStyle.Render(cli.FormatAmount(total, currency)))
}

// resolveMonth fills zero month/year arguments from the current UTC date, the
// same clock expense timestamps are recorded and filtered on. The aggregation
// itself never reads the clock; the caller supplies it here.
func resolveMonth(month, year int) (time.Month, int) {
	now := time.Now().UTC()
	m := time.Month(month)
	if month < 1 || month > 12 {
		m = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	return m, year
}
