package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expense, asset and debt categories",
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

			fmt.Println(cli.FormatTitle("Categories"))
			for _, c := range doc.Categories {
				fmt.Printf("  %s\n", c)
			}
			fmt.Println(cli.FormatTitle("Asset categories"))
			for _, c := range doc.AssetCategories {
				fmt.Printf("  %s\n", c)
			}
			fmt.Println(cli.FormatTitle("Debt categories"))
			for _, c := range doc.DebtCategories {
				fmt.Printf("  %s\n", c)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		asset bool
		debt  bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long: `Append a category to the expense category set, or to the asset or debt
set with --asset/--debt. Names match case-sensitively; an existing name is
left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asset && debt {
				return fmt.Errorf("--asset and --debt are mutually exclusive")
			}

			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			add := svc.AddCategory
			switch {
			case asset:
				add = svc.AddAssetCategory
			case debt:
				add = svc.AddDebtCategory
			}
			if err := add(cmd.Context(), args[0]); err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category %q available", args[0])))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asset, "asset", false, "add to the asset category set")
	cmd.Flags().BoolVar(&debt, "debt", false, "add to the debt category set")
	return cmd
}
