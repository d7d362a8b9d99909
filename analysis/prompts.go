package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/use-agent/listingscout/models"
)

const jsonOnly = "IMPORTANT: Respond ONLY with valid JSON. Do not include any explanatory text, markdown formatting, or code blocks. Start your response with { and end with }."

func keywordPrompt(p *models.Product, desc string, suggestions []string) string {
	var b strings.Builder
	b.WriteString("Analyze this Amazon product and provide comprehensive keyword research for ranking optimization:\n\n")
	b.WriteString("Product Details:\n")
	fmt.Fprintf(&b, "- Title: %s\n", p.Title)
	fmt.Fprintf(&b, "- Brand: %s\n", p.Brand)
	fmt.Fprintf(&b, "- Category: %s\n", p.Category)
	fmt.Fprintf(&b, "- Price: %s\n", p.Price)
	fmt.Fprintf(&b, "- Rating: %s\n", p.Rating)
	fmt.Fprintf(&b, "- Review Count: %s\n", p.ReviewCount)
	fmt.Fprintf(&b, "- Description: %s\n", desc)
	fmt.Fprintf(&b, "- Bullet Points: %s\n", strings.Join(p.BulletPoints, ", "))
	fmt.Fprintf(&b, "- ASIN: %s\n", p.ASIN)
	if len(suggestions) > 0 {
		fmt.Fprintf(&b, "\nReal Amazon shopper searches for this product: %s\n", strings.Join(suggestions, ", "))
	}
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Provide the analysis in this exact JSON format:\n")
	b.WriteString(keywordFormat)
	b.WriteString("\nFocus on keywords that will actually help this product rank higher on Amazon. Consider search volume, competition, and relevance.\n")
	return b.String()
}

func competitorPrompt(p *models.Product, competitors []models.Competitor) string {
	var b strings.Builder
	b.WriteString("Analyze this product against its competitors and provide strategic insights:\n\n")
	b.WriteString("Your Product:\n")
	fmt.Fprintf(&b, "- Title: %s\n", p.Title)
	fmt.Fprintf(&b, "- Price: %s\n", p.Price)
	fmt.Fprintf(&b, "- Rating: %s\n", p.Rating)
	fmt.Fprintf(&b, "- Review Count: %s\n\n", p.ReviewCount)
	b.WriteString("Top Competitors:\n")
	for i, c := range competitors {
		fmt.Fprintf(&b, "%d. %s\n   Price: %s\n   Rating: %s\n   Reviews: %s\n", i+1, c.Title, c.Price, c.Rating, c.ReviewCount)
	}
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Provide analysis in this JSON format:\n")
	b.WriteString(competitorFormat)
	return b.String()
}

func adKeywordsPrompt(p *models.Product, k *models.KeywordAnalysis) string {
	var primary, longTail []string
	if k != nil {
		primary, longTail = k.PrimaryKeywords, k.LongTailKeywords
	}
	var b strings.Builder
	b.WriteString("Generate Amazon PPC advertising keywords for this product:\n\n")
	fmt.Fprintf(&b, "Product: %s\n", p.Title)
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	fmt.Fprintf(&b, "Price: %s\n", p.Price)
	fmt.Fprintf(&b, "Primary Keywords: %s\n", strings.Join(primary, ", "))
	fmt.Fprintf(&b, "Long Tail Keywords: %s\n", strings.Join(longTail, ", "))
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Provide PPC keywords in this JSON format:\n")
	b.WriteString(adKeywordsFormat)
	b.WriteString("\nFocus on keywords that will drive profitable sales, not just traffic.\n")
	return b.String()
}

func salesStrategyPrompt(p *models.Product, ca *models.CompetitorAnalysis, k *models.KeywordAnalysis) string {
	var position models.CompetitivePosition
	if ca != nil {
		position = ca.CompetitivePosition
	}
	positionJSON, _ := json.Marshal(position)

	var b strings.Builder
	b.WriteString("Create a comprehensive sales improvement strategy for this Amazon product:\n\n")
	fmt.Fprintf(&b, "Product: %s\n", p.Title)
	fmt.Fprintf(&b, "Current Rating: %s\n", p.Rating)
	fmt.Fprintf(&b, "Review Count: %s\n", p.ReviewCount)
	fmt.Fprintf(&b, "Price: %s\n\n", p.Price)
	fmt.Fprintf(&b, "Competitive Position: %s\n", positionJSON)
	fmt.Fprintf(&b, "Key Opportunities: %s\n", strings.Join(position.Opportunities, ", "))
	if k != nil && len(k.PrimaryKeywords) > 0 {
		fmt.Fprintf(&b, "Target Keywords: %s\n", strings.Join(k.PrimaryKeywords, ", "))
	}
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Provide strategy in this JSON format:\n")
	b.WriteString(salesStrategyFormat)
	return b.String()
}

func diagnosePrompt(p *models.Product, desc string, top []models.Competitor) string {
	var b strings.Builder
	b.WriteString("CRITICAL SALES ANALYSIS: Analyze why this Amazon product is not selling well compared to successful competitors.\n\n")
	b.WriteString("YOUR PRODUCT (Low/No Sales):\n")
	fmt.Fprintf(&b, "- Title: %s\n", p.Title)
	fmt.Fprintf(&b, "- Price: %s\n", p.Price)
	fmt.Fprintf(&b, "- Rating: %s\n", p.Rating)
	fmt.Fprintf(&b, "- Review Count: %s\n", p.ReviewCount)
	fmt.Fprintf(&b, "- Category: %s\n", p.Category)
	fmt.Fprintf(&b, "- Description: %s\n", desc)
	fmt.Fprintf(&b, "- Bullet Points: %s\n", strings.Join(p.BulletPoints, " | "))
	fmt.Fprintf(&b, "- Images Available: %d\n\n", len(p.Images))
	b.WriteString("TOP PERFORMING COMPETITORS:\n")
	for i, c := range top {
		fmt.Fprintf(&b, "COMPETITOR %d (HIGH SALES):\n- Title: %s\n- Price: %s\n- Rating: %s\n- Reviews: %s\n", i+1, c.Title, c.Price, c.Rating, c.ReviewCount)
	}
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Analyze and provide specific reasons why the product isn't selling in this JSON format:\n")
	b.WriteString(salesProblemsFormat)
	return b.String()
}

func keywordGapsPrompt(p *models.Product, desc string, top []models.Competitor, missing []string) string {
	var b strings.Builder
	b.WriteString("KEYWORD GAP ANALYSIS: Find the missing keywords that successful competitors are using but your product is not.\n\n")
	b.WriteString("YOUR PRODUCT:\n")
	fmt.Fprintf(&b, "Title: %s\n", p.Title)
	fmt.Fprintf(&b, "Current Keywords: %s %s\n\n", strings.Join(p.BulletPoints, " "), desc)
	b.WriteString("TOP COMPETITORS:\n")
	for i, c := range top {
		fmt.Fprintf(&b, "COMPETITOR %d:\nTitle: %s\nEstimated Keywords: %s\n", i+1, c.Title, strings.Join(strings.Fields(c.Title), ", "))
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, "\nCompetitor title terms absent from your listing: %s\n", strings.Join(missing, ", "))
	}
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Provide keyword gap analysis in this JSON format:\n")
	b.WriteString(keywordGapsFormat)
	return b.String()
}

func listingOptimizationPrompt(p *models.Product, desc string, top []models.Competitor) string {
	var b strings.Builder
	b.WriteString("LISTING OPTIMIZATION: Create optimized listing elements based on successful competitor analysis.\n\n")
	b.WriteString("YOUR CURRENT LISTING:\n")
	fmt.Fprintf(&b, "Title: %s\n", p.Title)
	fmt.Fprintf(&b, "Bullet Points: %s\n", strings.Join(p.BulletPoints, " | "))
	fmt.Fprintf(&b, "Description: %s\n", desc)
	fmt.Fprintf(&b, "Price: %s\n\n", p.Price)
	b.WriteString("TOP PERFORMING COMPETITORS:\n")
	for i, c := range top {
		fmt.Fprintf(&b, "HIGH PERFORMER %d:\nTitle: %s\nPrice: %s\nRating: %s (%s reviews)\n", i+1, c.Title, c.Price, c.Rating, c.ReviewCount)
	}
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Provide optimized listing elements in this JSON format:\n")
	b.WriteString(listingOptimizationFormat)
	return b.String()
}

func optimizeListingPrompt(info *models.ProductInfo, competitors []models.Competitor) string {
	var b strings.Builder
	b.WriteString("CREATE SEO-OPTIMIZED AMAZON LISTING: Generate a complete, SEO-friendly Amazon product listing that will outrank competitors.\n\n")
	b.WriteString("NEW PRODUCT INFORMATION:\n")
	fmt.Fprintf(&b, "- Product Name: %s\n", info.ProductName)
	fmt.Fprintf(&b, "- Category: %s\n", info.Category)
	fmt.Fprintf(&b, "- Key Features: %s\n", strings.Join(info.KeyFeatures, ", "))
	fmt.Fprintf(&b, "- Target Audience: %s\n", info.TargetAudience)
	fmt.Fprintf(&b, "- Unique Selling Points: %s\n", strings.Join(info.UniqueSellingPoints, ", "))
	fmt.Fprintf(&b, "- Price Range: %s\n", info.PriceRange)
	fmt.Fprintf(&b, "- Product Dimensions: %s\n", orDefault(info.Dimensions, "Not specified"))
	fmt.Fprintf(&b, "- Material/Composition: %s\n", orDefault(info.Material, "Not specified"))
	fmt.Fprintf(&b, "- Brand: %s\n\n", orDefault(info.Brand, "Generic"))

	fmt.Fprintf(&b, "TOP COMPETITORS ANALYSIS (%d competitors analyzed):\n", len(competitors))
	for i, c := range head(competitors, 15) {
		fmt.Fprintf(&b, "COMPETITOR %d:\n- Title: %s\n- Price: %s\n- Rating: %s\n- Reviews: %s\n", i+1, c.Title, c.Price, c.Rating, c.ReviewCount)
	}

	titles := make([]string, 0, 10)
	for _, c := range head(competitors, 10) {
		titles = append(titles, c.Title)
	}
	b.WriteString("\nCOMPETITOR TITLE ANALYSIS:\n")
	fmt.Fprintf(&b, "Common patterns in successful titles: %s\n\n", strings.Join(titles, " | "))
	b.WriteString("COMPETITOR KEYWORD EXTRACTION:\n")
	b.WriteString("Extract high-performing keywords from competitor titles and identify:\n")
	b.WriteString("1. Most frequently used keywords across all competitors\n")
	b.WriteString("2. High-converting keywords (from top-rated products)\n")
	b.WriteString("3. Long-tail keywords competitors are targeting\n")
	b.WriteString("4. Category-specific keywords\n")
	b.WriteString("5. Brand positioning keywords\n")
	b.WriteString("6. Feature-based keywords\n")
	b.WriteString("7. Benefit-focused keywords\n\n")

	b.WriteString("MARKET INSIGHTS:\n")
	fmt.Fprintf(&b, "- Total competitors analyzed: %d\n", len(competitors))
	fmt.Fprintf(&b, "- Average rating: %s\n", averageRating(competitors))
	fmt.Fprintf(&b, "- Price range observed: %s\n", strings.Join(observedPrices(competitors), ", "))

	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Generate optimized listing in this JSON format:\n")
	b.WriteString(optimizedListingFormat)
	return b.String()
}

func insightsPrompt(info *models.ProductInfo, competitors []models.Competitor) string {
	var b strings.Builder
	b.WriteString("COMPETITIVE INTELLIGENCE ANALYSIS: Analyze competitors to identify opportunities for a new product launch.\n\n")
	b.WriteString("YOUR NEW PRODUCT:\n")
	fmt.Fprintf(&b, "- Product: %s\n", info.ProductName)
	fmt.Fprintf(&b, "- Category: %s\n", info.Category)
	fmt.Fprintf(&b, "- Target Audience: %s\n", info.TargetAudience)
	fmt.Fprintf(&b, "- Unique Features: %s\n\n", strings.Join(info.UniqueSellingPoints, ", "))
	b.WriteString("COMPETITOR ANALYSIS:\n")
	for i, c := range competitors {
		fmt.Fprintf(&b, "COMPETITOR %d:\n- Title: %s\n- Price: %s\n- Rating: %s\n- Reviews: %s\n", i+1, c.Title, c.Price, c.Rating, c.ReviewCount)
	}
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Provide competitive analysis in this JSON format:\n")
	b.WriteString(insightsFormat)
	return b.String()
}

func launchPlanPrompt(info *models.ProductInfo, insights *models.CompetitorInsights, listing *models.OptimizedListing) string {
	var recommended string
	var opportunities, gaps []string
	if insights != nil {
		recommended = string(insights.PricingAnalysis.RecommendedPrice)
		for _, k := range head(insights.KeywordOpportunities, 3) {
			opportunities = append(opportunities, string(k.Keyword))
		}
		for _, g := range head(insights.MarketGaps, 2) {
			gaps = append(gaps, string(g.Gap))
		}
	}
	var title string
	var targets []string
	if listing != nil {
		title = string(listing.OptimizedTitle.Title)
		if listing.CompetitivePositioning != nil {
			targets = listing.CompetitivePositioning.TargetKeywords
		}
	}

	var b strings.Builder
	b.WriteString("CREATE COMPREHENSIVE PRODUCT LAUNCH PLAN: Generate a detailed 90-day launch strategy for maximum success.\n\n")
	b.WriteString("PRODUCT INFORMATION:\n")
	fmt.Fprintf(&b, "- Product: %s\n", info.ProductName)
	fmt.Fprintf(&b, "- Category: %s\n", info.Category)
	fmt.Fprintf(&b, "- Target Price: %s\n", info.PriceRange)
	fmt.Fprintf(&b, "- Launch Budget: %s\n\n", orDefault(info.LaunchBudget, "Not specified"))
	b.WriteString("COMPETITIVE INSIGHTS:\n")
	fmt.Fprintf(&b, "- Recommended Price: %s\n", recommended)
	fmt.Fprintf(&b, "- Key Opportunities: %s\n", strings.Join(opportunities, ", "))
	fmt.Fprintf(&b, "- Market Gaps: %s\n\n", strings.Join(gaps, ", "))
	b.WriteString("OPTIMIZED LISTING:\n")
	fmt.Fprintf(&b, "- Title: %s\n", title)
	fmt.Fprintf(&b, "- Target Keywords: %s\n", strings.Join(targets, ", "))
	b.WriteString("\n" + jsonOnly + "\n\n")
	b.WriteString("Generate launch plan in this JSON format:\n")
	b.WriteString(launchPlanFormat)
	return b.String()
}

// averageRating formats the mean parsed rating to one decimal. Unparseable
// ratings count as zero.
func averageRating(cs []models.Competitor) string {
	if len(cs) == 0 {
		return "0.0"
	}
	var sum float64
	for _, c := range cs {
		if f, err := strconv.ParseFloat(strings.TrimSpace(c.Rating), 64); err == nil {
			sum += f
		}
	}
	return strconv.FormatFloat(sum/float64(len(cs)), 'f', 1, 64)
}

func observedPrices(cs []models.Competitor) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		if c.Price != "" {
			out = append(out, c.Price)
		}
	}
	return out
}

// seedPhrase is the autocomplete seed for a title: its first three words.
func seedPhrase(title string) string {
	words := strings.Fields(strings.ToLower(title))
	return strings.Join(head(words, 3), " ")
}

func listingText(p *models.Product) string {
	return p.Title + " " + strings.Join(p.BulletPoints, " ") + " " + p.Description
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
