package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/scraper"
)

var searchMax int

func init() {
	searchCmd.Flags().IntVarP(&searchMax, "max", "n", 10, "maximum number of competitors")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Amazon for competitors and print them as a table.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		initLogger(config.LogConfig{Level: "warn", Format: "text"})

		sc, err := scraper.New(cfg.Browser, cfg.Scraper)
		if err != nil {
			return fmt.Errorf("initialise scraper: %w", err)
		}
		defer sc.Close()

		competitors, err := sc.SearchCompetitors(cmd.Context(), args[0], searchMax)
		if err != nil {
			return err
		}

		t := newTable()
		t.SetTitle(fmt.Sprintf("%q on %s", args[0], sc.Marketplace().Host))
		t.AppendHeader(table.Row{"#", "ASIN", "Title", "Price", "Rating", "Reviews"})
		for i, c := range competitors {
			t.AppendRow(table.Row{i + 1, c.ASIN, truncate(c.Title, 60), c.Price, c.Rating, c.ReviewCount})
		}
		t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d found", len(competitors))})
		t.Render()
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
