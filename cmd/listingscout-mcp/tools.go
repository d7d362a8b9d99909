package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/use-agent/listingscout/models"
)

// jsonResult renders v as indented JSON text.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.Marshal(v, jsontext.WithIndent("  "))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func formatCompetitors(b *strings.Builder, cs []models.Competitor) {
	for i, c := range cs {
		fmt.Fprintf(b, "%d. %s\n", i+1, c.Title)
		fmt.Fprintf(b, "   ASIN: %s | Price: %s | Rating: %s | Reviews: %s\n", c.ASIN, c.Price, c.Rating, c.ReviewCount)
		if c.Link != "" {
			fmt.Fprintf(b, "   %s\n", c.Link)
		}
	}
}

func handleSearchCompetitors(api *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		var resp models.CompetitorSearchResponse
		err = api.post(ctx, "/api/competitor-search", models.CompetitorSearchRequest{
			SearchQuery: query,
			MaxResults:  request.GetInt("max_results", 10),
		}, &resp)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Search: %s (%d found)\n\n", resp.SearchQuery, resp.TotalFound)
		formatCompetitors(&b, resp.Competitors)
		return mcp.NewToolResultText(b.String()), nil
	}
}

func handleBatchSearch(api *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		queries, err := request.RequireStringSlice("queries")
		if err != nil || len(queries) == 0 {
			return mcp.NewToolResultError("queries is required and must be an array of strings"), nil
		}

		var started models.BatchResponse
		err = api.post(ctx, "/api/batch/competitor-search", models.BatchRequest{
			Queries:    queries,
			MaxResults: request.GetInt("max_results", 0),
		}, &started)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("batch request failed: %v", err)), nil
		}
		if started.ID == "" {
			return mcp.NewToolResultError("batch job creation failed"), nil
		}

		status, err := api.waitBatch(ctx, started.ID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("polling batch job failed: %v", err)), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Batch %s: %d/%d queries completed\n", status.ID, status.Completed, status.Total)
		for _, r := range status.Results {
			fmt.Fprintf(&b, "\n## %s\n", r.Query)
			if r.Error != nil {
				fmt.Fprintf(&b, "Error: [%s] %s\n", r.Error.Code, r.Error.Message)
				continue
			}
			formatCompetitors(&b, r.Competitors)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

func handleQuickKeywords(api *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := request.RequireString("product_title")
		if err != nil {
			return mcp.NewToolResultError("product_title is required"), nil
		}

		var resp models.QuickKeywordsResponse
		err = api.post(ctx, "/api/quick-keywords", models.QuickKeywordsRequest{
			ProductTitle: title,
			Category:     request.GetString("category", ""),
			Description:  request.GetString("description", ""),
			Price:        request.GetString("price", ""),
		}, &resp)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(resp.KeywordAnalysis), nil
	}
}

func handleAnalyzeProduct(api *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("amazon_url")
		if err != nil {
			return mcp.NewToolResultError("amazon_url is required"), nil
		}

		var resp models.AnalyzeResponse
		if err := api.post(ctx, "/api/analyze-product", models.AnalyzeRequest{AmazonURL: url}, &resp); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(resp), nil
	}
}

func handleDiagnoseSales(api *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("amazon_url")
		if err != nil {
			return mcp.NewToolResultError("amazon_url is required"), nil
		}

		var resp models.DiagnoseResponse
		if err := api.post(ctx, "/api/diagnose-sales-problems", models.AnalyzeRequest{AmazonURL: url}, &resp); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(resp), nil
	}
}

func handleOptimizeLaunch(api *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("product_name")
		if err != nil {
			return mcp.NewToolResultError("product_name is required"), nil
		}
		category, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError("category is required"), nil
		}

		info := &models.ProductInfo{
			ProductName:         name,
			Category:            category,
			KeyFeatures:         request.GetStringSlice("key_features", nil),
			UniqueSellingPoints: request.GetStringSlice("unique_selling_points", nil),
			TargetAudience:      request.GetString("target_audience", ""),
			PriceRange:          request.GetString("price_range", ""),
			Brand:               request.GetString("brand", ""),
			LaunchBudget:        request.GetString("launch_budget", ""),
		}

		var resp models.LaunchResponse
		if err := api.post(ctx, "/api/optimize-new-product", models.LaunchRequest{ProductInfo: info}, &resp); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(resp), nil
	}
}
