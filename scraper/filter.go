package scraper

import (
	"math"
	"strconv"
	"strings"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/simhash"
)

// nearDuplicate is the largest title fingerprint distance treated as the
// same listing.
const nearDuplicate = 3

// ParseCount reads a review count such as "1,247". Non-digits are ignored,
// an empty or digitless string is 0 and counts past math.MaxInt clamp to it.
func ParseCount(s string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// ParseRating reads the leading number of a rating such as "4.5" or
// "4.5 out of 5 stars". Unparseable ratings are 0.
func ParseRating(s string) float64 {
	m := ratingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// Filter keeps competitors with at least minRating stars and minReviews
// reviews, preserving order.
func Filter(cs []models.Competitor, minRating float64, minReviews int) []models.Competitor {
	out := make([]models.Competitor, 0, len(cs))
	for _, c := range cs {
		if ParseRating(c.Rating) >= minRating && ParseCount(c.ReviewCount) >= minReviews {
			out = append(out, c)
		}
	}
	return out
}

// TopPerformers filters competitors and keeps the first limit.
func TopPerformers(cs []models.Competitor, minRating float64, minReviews, limit int) []models.Competitor {
	out := Filter(cs, minRating, minReviews)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DedupeByTitle drops competitors whose title equals, or nearly equals, an
// earlier one. The first occurrence is kept.
func DedupeByTitle(cs []models.Competitor) []models.Competitor {
	out := make([]models.Competitor, 0, len(cs))
	seen := make(map[string]bool, len(cs))
	var prints []uint64
	for _, c := range cs {
		if seen[c.Title] {
			continue
		}
		fp := simhash.Title(c.Title)
		dup := false
		if fp != 0 {
			for _, p := range prints {
				if simhash.Similar(fp, p, nearDuplicate) {
					dup = true
					break
				}
			}
		}
		seen[c.Title] = true
		if dup {
			continue
		}
		if fp != 0 {
			prints = append(prints, fp)
		}
		out = append(out, c)
	}
	return out
}
