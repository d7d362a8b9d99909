package scraper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/models"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1,247", 1247},
		{"856", 856},
		{"(12,345)", 12345},
		{"", 0},
		{"no reviews", 0},
		{"0,000,042", 42},
		{"99999999999999999999999 ratings", math.MaxInt},
	}
	for _, tt := range tests {
		if got := ParseCount(tt.in); got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"4.5", 4.5},
		{"4.5 out of 5 stars", 4.5},
		{" 4 ", 4},
		{"", 0},
		{"N/A", 0},
	}
	for _, tt := range tests {
		if got := ParseRating(tt.in); got != tt.want {
			t.Errorf("ParseRating(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func competitors() []models.Competitor {
	return []models.Competitor{
		{Title: "A", Rating: "4.6", ReviewCount: "2,000"},
		{Title: "B", Rating: "3.9", ReviewCount: "5,000"},
		{Title: "C", Rating: "4.2", ReviewCount: "40"},
		{Title: "D", Rating: "4.0", ReviewCount: "100"},
		{Title: "E", Rating: "", ReviewCount: ""},
	}
}

func TestFilter(t *testing.T) {
	got := Filter(competitors(), 4.0, 100)
	require.Equal(t, []string{"A", "D"}, titles(got))

	require.Len(t, Filter(competitors(), 0, 0), 5)
}

func TestTopPerformers(t *testing.T) {
	got := TopPerformers(competitors(), 4.0, 0, 2)
	require.Equal(t, []string{"A", "C"}, titles(got))

	require.Empty(t, TopPerformers(competitors(), 5.0, 0, 3))
}

func TestDedupeByTitle(t *testing.T) {
	in := []models.Competitor{
		{Title: "Insulated Water Bottle 32oz", ASIN: "B000000001"},
		{Title: "Insulated Water Bottle 32oz", ASIN: "B000000002"},
		{Title: "insulated water bottle, 32oz!", ASIN: "B000000003"},
		{Title: "Stainless Steel Travel Mug with Handle", ASIN: "B000000004"},
	}

	got := DedupeByTitle(in)
	require.Len(t, got, 2)
	require.Equal(t, "B000000001", got[0].ASIN)
	require.Equal(t, "B000000004", got[1].ASIN)
}

func titles(cs []models.Competitor) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Title
	}
	return out
}
