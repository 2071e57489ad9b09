package domain

import "strings"

// CategoryTranslation maps a category label as stored in the product table
// to its English form. English labels are what users type in questions,
// native labels are what the queries filter on.
type CategoryTranslation struct {
	Native  string
	English string
}

// SellerPerformance aggregates orders and review scores for all sellers in
// one city. AvgReview is nil when none of the city's orders have reviews.
type SellerPerformance struct {
	City        string
	TotalOrders int
	AvgReview   *float64
}

// ProductRating is one row of a review aggregation query.
type ProductRating struct {
	ProductID   string
	ReviewCount int
	AvgScore    float64
}

// NormalizeCategory canonicalizes a category label so that English labels
// from the translation table and substrings of user questions compare
// equal: "Home Beauty", " home beauty " and "home_beauty" all normalize
// to "home_beauty".
func NormalizeCategory(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
