package scraper

import (
	"net/url"
	"strings"
)

// Marketplace is one regional Amazon storefront.
type Marketplace struct {
	Code           string
	Host           string
	Currency       string
	MarketplaceID  string
	AcceptLanguage string
}

var marketplaces = map[string]Marketplace{
	"US": {Code: "US", Host: "www.amazon.com", Currency: "USD", MarketplaceID: "ATVPDKIKX0DER", AcceptLanguage: "en-US,en;q=0.9"},
	"CA": {Code: "CA", Host: "www.amazon.ca", Currency: "CAD", MarketplaceID: "A2EUQ1WTGCTBG2", AcceptLanguage: "en-CA,en;q=0.9"},
	"GB": {Code: "GB", Host: "www.amazon.co.uk", Currency: "GBP", MarketplaceID: "A1F83G8C2ARO7P", AcceptLanguage: "en-GB,en;q=0.9"},
	"DE": {Code: "DE", Host: "www.amazon.de", Currency: "EUR", MarketplaceID: "A1PA6795UKMFR9", AcceptLanguage: "de-DE,de;q=0.9,en;q=0.8"},
	"FR": {Code: "FR", Host: "www.amazon.fr", Currency: "EUR", MarketplaceID: "A13V1IB3VIYZZH", AcceptLanguage: "fr-FR,fr;q=0.9,en;q=0.8"},
	"ES": {Code: "ES", Host: "www.amazon.es", Currency: "EUR", MarketplaceID: "A1RKKUPIHCS9HS", AcceptLanguage: "es-ES,es;q=0.9,en;q=0.8"},
	"IT": {Code: "IT", Host: "www.amazon.it", Currency: "EUR", MarketplaceID: "APJ6JRA9NG5V4", AcceptLanguage: "it-IT,it;q=0.9,en;q=0.8"},
	"IN": {Code: "IN", Host: "www.amazon.in", Currency: "INR", MarketplaceID: "A21TJRUUN4KGV", AcceptLanguage: "en-IN,en;q=0.9"},
	"JP": {Code: "JP", Host: "www.amazon.co.jp", Currency: "JPY", MarketplaceID: "A1VC38T7YXB528", AcceptLanguage: "ja-JP,ja;q=0.9,en;q=0.8"},
	"AU": {Code: "AU", Host: "www.amazon.com.au", Currency: "AUD", MarketplaceID: "A39IBJ37TRP1C6", AcceptLanguage: "en-AU,en;q=0.9"},
	"BR": {Code: "BR", Host: "www.amazon.com.br", Currency: "BRL", MarketplaceID: "A2Q3Y263D00KWC", AcceptLanguage: "pt-BR,pt;q=0.9,en;q=0.8"},
	"MX": {Code: "MX", Host: "www.amazon.com.mx", Currency: "MXN", MarketplaceID: "A1AM78C64UM0Y8", AcceptLanguage: "es-MX,es;q=0.9,en;q=0.8"},
	"AE": {Code: "AE", Host: "www.amazon.ae", Currency: "AED", MarketplaceID: "A2VIGQ35RCS4UG", AcceptLanguage: "en-AE,en;q=0.9,ar;q=0.8"},
	"SG": {Code: "SG", Host: "www.amazon.sg", Currency: "SGD", MarketplaceID: "A19VAU5U5O7RUS", AcceptLanguage: "en-SG,en;q=0.9"},
}

var marketplaceAlias = map[string]string{"UK": "GB"}

// LookupMarketplace returns the storefront for a two-letter code. Unknown
// codes fall back to US.
func LookupMarketplace(code string) Marketplace {
	code = strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := marketplaceAlias[code]; ok {
		code = canonical
	}
	if m, ok := marketplaces[code]; ok {
		return m
	}
	return marketplaces["US"]
}

// SearchURL is the first results page for a query.
func (m Marketplace) SearchURL(query string) string {
	return "https://" + m.Host + "/s?k=" + url.QueryEscape(query) + "&ref=sr_pg_1"
}

// linkBase prefixes relative result links. The www label is dropped, so
// the US store yields https://amazon.com.
func (m Marketplace) linkBase() string {
	return "https://" + strings.TrimPrefix(m.Host, "www.")
}
