package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anthariksham-labs/kubera/internal/cli"
	"github.com/anthariksham-labs/kubera/internal/quotes"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and review net worth snapshots",
	}

	cmd.AddCommand(takeSnapshotCmd())
	cmd.AddCommand(listSnapshotsCmd())

	return cmd
}

func takeSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take",
		Short: "Append a point-in-time net worth snapshot",
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

			snapshot, err := svc.TakeSnapshot(cmd.Context(), cache)
			if err != nil {
				return presentable(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Snapshot recorded: %s",
				cli.FormatAmount(snapshot.Value, displayCurrency()))))
			return nil
		},
	}
}

func listSnapshotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, store, err := openLedger()
			if err != nil {
				return presentable(err)
			}
			defer store.Close()

			snapshots, err := svc.Snapshots(cmd.Context())
			if err != nil {
				return presentable(err)
			}
			if len(snapshots) == 0 {
				fmt.Println(cli.InfoStyle.Render("No snapshots yet. Use 'kubera snapshot take' to record one."))
				return nil
			}

			currency := displayCurrency()
			for _, s := range snapshots {
				fmt.Printf("%s  %s  %s\n",
					s.Timestamp.Local().Format("2006-01-02 15:04"),
					cli.BoldStyle.Render(cli.FormatAmount(s.Value, currency)),
					cli.SubtleStyle.Render(s.ID))
			}
			return nil
		},
	}
}
