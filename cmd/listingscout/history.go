package main

import (
	"errors"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/store"
)

var (
	historyKind  string
	historyLimit int
)

func init() {
	historyCmd.Flags().StringVarP(&historyKind, "kind", "k", "", "only show records of this kind, e.g. analyze-product")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of records")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		initLogger(config.LogConfig{Level: "warn", Format: "text"})
		if cfg.Store.DSN == "" {
			return errors.New("DATABASE_URL is not set")
		}

		st, err := store.Open(cmd.Context(), cfg.Store.DSN)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.List(cmd.Context(), historyKind, historyLimit)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Created", "Kind", "Input", "Summary"})
		for _, r := range records {
			t.AppendRow(table.Row{
				r.CreatedAt.Local().Format(time.DateTime),
				r.Kind,
				truncate(r.Input, 40),
				truncate(r.Summary, 80),
			})
		}
		t.Render()
		return nil
	},
}
