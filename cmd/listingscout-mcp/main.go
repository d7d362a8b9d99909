// Command listingscout-mcp exposes a running listingscout API as MCP tools
// over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	apiURL := os.Getenv("LISTINGSCOUT_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:3001"
	}
	api := newAPIClient(apiURL, os.Getenv("LISTINGSCOUT_API_KEY"))

	s := server.NewMCPServer(
		"listingscout",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("search_competitors",
		mcp.WithDescription("Search Amazon for a keyword and return the competing products on the results page, with price, rating and review count."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search keyword, e.g. 'stainless steel water bottle'"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of competitors (default: 10)"),
		),
	), handleSearchCompetitors(api))

	s.AddTool(mcp.NewTool("batch_search_competitors",
		mcp.WithDescription("Run up to 20 competitor searches in one job and return the results for each query."),
		mcp.WithArray("queries",
			mcp.Required(),
			mcp.Description("List of search keywords"),
			mcp.WithStringItems(),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of competitors per query (default: 10, max: 50)"),
		),
	), handleBatchSearch(api))

	s.AddTool(mcp.NewTool("quick_keywords",
		mcp.WithDescription("Generate an Amazon keyword analysis from a product title without scraping a listing."),
		mcp.WithString("product_title",
			mcp.Required(),
			mcp.Description("The product title"),
		),
		mcp.WithString("category", mcp.Description("Product category")),
		mcp.WithString("description", mcp.Description("Short product description")),
		mcp.WithString("price", mcp.Description("Product price, e.g. '$24.99'")),
	), handleQuickKeywords(api))

	s.AddTool(mcp.NewTool("analyze_product",
		mcp.WithDescription("Scrape an Amazon product page and return keyword, competitor, advertising and sales strategy analyses."),
		mcp.WithString("amazon_url",
			mcp.Required(),
			mcp.Description("The Amazon product detail page URL"),
		),
	), handleAnalyzeProduct(api))

	s.AddTool(mcp.NewTool("diagnose_sales",
		mcp.WithDescription("Compare an Amazon listing with the top performers in its niche and explain why it is not selling."),
		mcp.WithString("amazon_url",
			mcp.Required(),
			mcp.Description("The Amazon product detail page URL"),
		),
	), handleDiagnoseSales(api))

	s.AddTool(mcp.NewTool("optimize_launch",
		mcp.WithDescription("Research competitors for a new product and return an optimized listing, keyword strategy and launch plan."),
		mcp.WithString("product_name",
			mcp.Required(),
			mcp.Description("Name of the new product"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Amazon category of the product"),
		),
		mcp.WithArray("key_features", mcp.Description("Key product features"), mcp.WithStringItems()),
		mcp.WithArray("unique_selling_points", mcp.Description("What sets the product apart"), mcp.WithStringItems()),
		mcp.WithString("target_audience", mcp.Description("Who the product is for")),
		mcp.WithString("price_range", mcp.Description("Planned price range, e.g. '$20-30'")),
		mcp.WithString("brand", mcp.Description("Brand name")),
		mcp.WithString("launch_budget", mcp.Description("Launch budget, e.g. '$2000'")),
	), handleOptimizeLaunch(api))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
