package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data",
		Long:  `Drop the stored document. The next command reseeds the default category sets with empty ledgers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				fmt.Print("This deletes every expense, asset and snapshot. Type 'yes' to continue: ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			if err := svc.Reset(cmd.Context()); err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess("All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}
