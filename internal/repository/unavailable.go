package repository

import (
	"context"

	"github.com/aswincandra/olist-analytics/internal/domain"
)

// Unavailable is the Analytics implementation used when no store is
// configured (demo mode). Every call fails with ErrStoreUnavailable; the
// agents log that and degrade to empty results or fallback data.
type Unavailable struct{}

func NewUnavailable() Unavailable { return Unavailable{} }

func (Unavailable) CategoryTranslations(ctx context.Context) ([]domain.CategoryTranslation, error) {
	return nil, domain.ErrStoreUnavailable
}

func (Unavailable) AveragePriceByCategory(ctx context.Context, nativeCategory string) (*float64, error) {
	return nil, domain.ErrStoreUnavailable
}

func (Unavailable) ListCategories(ctx context.Context) ([]string, error) {
	return nil, domain.ErrStoreUnavailable
}

func (Unavailable) SellerPerformance(ctx context.Context, city string) (*domain.SellerPerformance, error) {
	return nil, domain.ErrStoreUnavailable
}

func (Unavailable) MostPositiveReviewedProduct(ctx context.Context) (*domain.ProductRating, error) {
	return nil, domain.ErrStoreUnavailable
}

func (Unavailable) BestProducts(ctx context.Context, limit int) ([]domain.ProductRating, error) {
	return nil, domain.ErrStoreUnavailable
}
