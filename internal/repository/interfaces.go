package repository

import (
	"context"

	"github.com/aswincandra/olist-analytics/internal/domain"
)

// Analytics is the read-only query surface over the Olist store. Every
// method runs a single parameterized statement; no method mutates state.
type Analytics interface {
	// CategoryTranslations returns every (native, english) category pair.
	CategoryTranslations(ctx context.Context) ([]domain.CategoryTranslation, error)

	// AveragePriceByCategory averages non-null item prices for products in
	// the given native category. Returns nil when no priced item matches.
	AveragePriceByCategory(ctx context.Context, nativeCategory string) (*float64, error)

	// ListCategories returns the distinct non-null native category labels,
	// sorted ascending.
	ListCategories(ctx context.Context) ([]string, error)

	// SellerPerformance aggregates order count and average review score for
	// sellers in the given city (case-insensitive exact match). Returns
	// domain.ErrNotFound when the city has no sellers.
	SellerPerformance(ctx context.Context, city string) (*domain.SellerPerformance, error)

	// MostPositiveReviewedProduct returns the product with the highest
	// number of reviews scored 4 or above, or domain.ErrNotFound.
	MostPositiveReviewedProduct(ctx context.Context) (*domain.ProductRating, error)

	// BestProducts returns up to limit products with average review score
	// >= 4, ordered by average score then review count, both descending.
	BestProducts(ctx context.Context, limit int) ([]domain.ProductRating, error)
}
