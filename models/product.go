package models

import "time"

// Product is the record scraped from an Amazon product detail page.
type Product struct {
	Title           string           `json:"title"`
	Price           string           `json:"price"`
	Rating          string           `json:"rating"`
	ReviewCount     string           `json:"reviewCount"`
	Availability    string           `json:"availability"`
	Brand           string           `json:"brand"`
	Category        string           `json:"category"`
	BulletPoints    []string         `json:"bulletPoints"`
	Description     string           `json:"description"`
	Images          []string         `json:"images"`
	Variants        []string         `json:"variants"`
	Specifications  []Specification  `json:"specifications"`
	ASIN            string           `json:"asin"`
	RelatedProducts []RelatedProduct `json:"relatedProducts"`
	ScrapedAt       time.Time        `json:"scrapedAt"`
	URL             string           `json:"url"`
}

// Specification is one row of the technical details table.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RelatedProduct is a product card found on a detail page.
type RelatedProduct struct {
	Title  string `json:"title"`
	Price  string `json:"price"`
	Rating string `json:"rating"`
	Link   string `json:"link"`
}

// Competitor is one organic result from an Amazon search page.
type Competitor struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`      // digits only, e.g. "4.5"
	ReviewCount string `json:"reviewCount"` // digits and commas, e.g. "1,247"
	Link        string `json:"link"`
	Image       string `json:"image"`
	ASIN        string `json:"asin"`
}

// ProductSummary is the trimmed product block returned by analyze-product.
type ProductSummary struct {
	Title       string `json:"title"`
	Brand       string `json:"brand"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	ReviewCount string `json:"reviewCount"`
	Category    string `json:"category"`
	ASIN        string `json:"asin"`
	URL         string `json:"url"`
}

// QuickProduct is the hand-described product echoed by quick-keywords.
type QuickProduct struct {
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	Brand        string   `json:"brand"`
	Rating       string   `json:"rating"`
	ReviewCount  string   `json:"reviewCount"`
	BulletPoints []string `json:"bulletPoints"`
}

// Quick projects a Product onto the quick-keywords productData block.
func (p *Product) Quick() *QuickProduct {
	return &QuickProduct{
		Title:        p.Title,
		Category:     p.Category,
		Description:  p.Description,
		Price:        p.Price,
		Brand:        p.Brand,
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		BulletPoints: p.BulletPoints,
	}
}

// Summary projects a Product onto the analyze-product response block.
func (p *Product) Summary(url string) ProductSummary {
	return ProductSummary{
		Title:       p.Title,
		Brand:       p.Brand,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Category:    p.Category,
		ASIN:        p.ASIN,
		URL:         url,
	}
}
