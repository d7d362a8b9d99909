package scraper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/models"
)

const productHTML = `<html><head><title>Amazon.com: Insulated Water Bottle</title></head><body>
<span id="productTitle">  Insulated Water Bottle  </span>
<span class="a-price-whole">24.</span>
<span class="a-icon-alt">4.5 out of 5 stars</span>
<span data-hook="total-review-count">1,247 global ratings</span>
<div id="availability"><span> In Stock </span></div>
<a id="bylineInfo">Visit the HydroCo Store</a>
<div id="wayfinding-breadcrumbs_feature_div"> Sports
    ›   Water Bottles </div>
<div id="feature-bullets"><ul><li><span>Keeps drinks cold 24 hours</span></li><li><span>Leak proof lid</span></li></ul></div>
<div id="productDescription"><p>Double wall steel.</p></div>
<div id="altImages"><img src="a.jpg"><img src="b.jpg"><img></div>
<div id="variation_style_name"><span class="selection">32oz</span></div>
<table id="productDetails_techSpec_section_1">
<tr><th>x</th><td>Capacity</td><td>32 Ounces</td></tr>
<tr><td>orphan</td></tr>
</table>
<div class="s-result-item"><h2><a href="/dp/B0REL00001"><span>Other Bottle</span></a></h2><span class="a-offscreen">$9.99</span></div>
</body></html>`

func TestParseProduct(t *testing.T) {
	const pageURL = "https://www.amazon.com/Insulated-Bottle/dp/B0ABCDEF12?th=1"
	got, err := ParseProduct(productHTML, pageURL)
	require.NoError(t, err)

	want := &models.Product{
		Title:          "Insulated Water Bottle",
		Price:          "24.",
		Rating:         "4.5 out of 5 stars",
		ReviewCount:    "1,247 global ratings",
		Availability:   "In Stock",
		Brand:          "Visit the HydroCo Store",
		Category:       "Sports › Water Bottles",
		BulletPoints:   []string{"Keeps drinks cold 24 hours", "Leak proof lid"},
		Description:    "Double wall steel.",
		Images:         []string{"a.jpg", "b.jpg"},
		Variants:       []string{"32oz"},
		Specifications: []models.Specification{{Key: "Capacity", Value: "32 Ounces"}},
		ASIN:           "B0ABCDEF12",
		RelatedProducts: []models.RelatedProduct{
			{Title: "Other Bottle", Price: "$9.99", Link: "/dp/B0REL00001"},
		},
		URL: pageURL,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseProduct() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProductFallbacks(t *testing.T) {
	page := `<html><body>
<span id="productTitle">Bottle</span>
<span class="a-offscreen">$19.99</span>
<span id="acrCustomerReviewText">856 ratings</span>
<div id="aplus_feature_div"><h3>Why HydroCo</h3><p>Stays cold all day.</p></div>
</body></html>`

	got, err := ParseProduct(page, "https://www.amazon.com/dp/B0ABCDEF12")
	require.NoError(t, err)
	require.Equal(t, "$19.99", got.Price)
	require.Equal(t, "856 ratings", got.ReviewCount)
	require.Contains(t, got.Description, "Why HydroCo")
	require.Contains(t, got.Description, "Stays cold all day.")
	require.Empty(t, got.RelatedProducts)
	require.NotNil(t, got.Specifications)
}

func TestParseProductWithoutTitle(t *testing.T) {
	_, err := ParseProduct(`<html><body><h1>Sorry, we just need to make sure you're not a robot.</h1></body></html>`, "https://www.amazon.com/dp/B0ABCDEF12")
	var se *models.ScrapeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, models.ErrCodeParse, se.Code)
}

func TestASINFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.amazon.com/dp/B08N5WRWNW", "B08N5WRWNW"},
		{"https://www.amazon.com/Some-Name/dp/B08N5WRWNW/ref=sr_1_1?keywords=x", "B08N5WRWNW"},
		{"https://www.amazon.com/gp/bestsellers", ""},
		{"/dp/B0ABCDEF12", "B0ABCDEF12"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ASINFromURL(tt.url); got != tt.want {
			t.Errorf("ASINFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
