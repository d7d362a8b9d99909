package scraper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/models"
)

const searchHTML = `<html><body>
<div data-component-type="s-search-result">
  <h2><a href="/Insulated-Water-Bottle/dp/B0ABCDEF12/ref=sr_1_1"><span>Insulated Water Bottle 32oz</span></a></h2>
  <span class="a-price"><span class="a-offscreen">$24.99</span></span>
  <i><span class="a-icon-alt">4.5 out of 5 stars</span></i>
  <span class="a-size-base">1,247</span>
  <img class="s-image" src="https://m.media-amazon.com/images/I/a.jpg">
</div>
<div data-component-type="s-search-result">
  <h2><a href="https://www.amazon.com/gp/product/B0ZZZZZZZ9"><span>Kids Water Bottle with Straw</span></a></h2>
  <span class="a-price-whole">12.</span>
  <span class="a-icon-alt">4.1 out of 5 stars</span>
  <span class="a-size-base">(856)</span>
  <img class="s-image" data-src="https://m.media-amazon.com/images/I/b.jpg">
</div>
<div data-component-type="s-search-result"><span>Sponsored</span></div>
</body></html>`

func TestParseSearchStandardLayout(t *testing.T) {
	got := ParseSearch(searchHTML, "https://amazon.com", 10)

	want := []models.Competitor{
		{
			Title:       "Insulated Water Bottle 32oz",
			Price:       "$24.99",
			Rating:      "4.5",
			ReviewCount: "1,247",
			Link:        "https://amazon.com/Insulated-Water-Bottle/dp/B0ABCDEF12/ref=sr_1_1",
			Image:       "https://m.media-amazon.com/images/I/a.jpg",
			ASIN:        "B0ABCDEF12",
		},
		{
			Title:       "Kids Water Bottle with Straw",
			Price:       "12.",
			Rating:      "4.1",
			ReviewCount: "856",
			Link:        "https://www.amazon.com/gp/product/B0ZZZZZZZ9",
			Image:       "https://m.media-amazon.com/images/I/b.jpg",
			ASIN:        "B0ZZZZZZZ9",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSearch() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSearchCapsResults(t *testing.T) {
	got := ParseSearch(searchHTML, "https://amazon.com", 1)
	require.Len(t, got, 1)
	require.Equal(t, "B0ABCDEF12", got[0].ASIN)
}

func TestParseSearchFallsBackToResultItems(t *testing.T) {
	page := `<div class="s-result-item">
  <h2><a href="/dp/B0STRAT002?asin=IGNORED"><span>Gym Bottle</span></a></h2>
  <span class="a-price-whole">15.</span>
</div>`

	got := ParseSearch(page, "https://amazon.co.uk", 5)
	require.Len(t, got, 1)
	require.Equal(t, "Gym Bottle", got[0].Title)
	require.Equal(t, "https://amazon.co.uk/dp/B0STRAT002?asin=IGNORED", got[0].Link)
	require.Equal(t, "B0STRAT002", got[0].ASIN)
}

func TestParseSearchRecipeLayout(t *testing.T) {
	page := `<div class="puisg-row">
  <div data-cy="title-recipe-title"><span>Travel Mug</span></div>
  <a class="a-link-normal" href="/x/ref=sr?asin=B0RECIPE03"><span>2,001</span></a>
</div>`

	got := ParseSearch(page, "https://amazon.com", 5)
	require.NotEmpty(t, got)
	require.Equal(t, "Travel Mug", got[0].Title)
	require.Equal(t, "2,001", got[0].ReviewCount)
	require.Equal(t, "B0RECIPE03", got[0].ASIN)
}

func TestParseSearchEmptyPage(t *testing.T) {
	got := ParseSearch("<html><body>No results</body></html>", "https://amazon.com", 10)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestMarketplaceLookup(t *testing.T) {
	tests := []struct {
		code     string
		host     string
		linkBase string
	}{
		{"US", "www.amazon.com", "https://amazon.com"},
		{"uk", "www.amazon.co.uk", "https://amazon.co.uk"},
		{"GB", "www.amazon.co.uk", "https://amazon.co.uk"},
		{" de ", "www.amazon.de", "https://amazon.de"},
		{"ZZ", "www.amazon.com", "https://amazon.com"},
		{"", "www.amazon.com", "https://amazon.com"},
	}
	for _, tt := range tests {
		m := LookupMarketplace(tt.code)
		if m.Host != tt.host || m.linkBase() != tt.linkBase {
			t.Errorf("LookupMarketplace(%q) = %s (%s), want %s (%s)", tt.code, m.Host, m.linkBase(), tt.host, tt.linkBase)
		}
	}
}

func TestSearchURL(t *testing.T) {
	got := LookupMarketplace("US").SearchURL("water bottle & straw")
	require.Equal(t, "https://www.amazon.com/s?k=water+bottle+%26+straw&ref=sr_pg_1", got)
}
