package agent

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/domain"
	"github.com/aswincandra/olist-analytics/internal/metrics"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

// FallbackCategories is served when the store yields no category rows
// (missing database, demo deployment). The orchestrator renders it exactly
// like real data.
var FallbackCategories = []string{
	"furniture",
	"electronics",
	"auto",
	"toys",
	"fashion",
	"sports",
	"home_appliances",
	"books",
	"health_beauty",
}

// CatalogAgent answers catalog questions: category listing, average price
// per category and seller performance per city.
type CatalogAgent struct {
	base
}

func NewCatalogAgent(repo repository.Analytics, logger *zap.Logger, m *metrics.Metrics) *CatalogAgent {
	return &CatalogAgent{base: newBase(repo, logger, m)}
}

// Categories returns the distinct native category labels, sorted
// ascending. An unreachable store or an empty result both yield the
// fallback list.
func (a *CatalogAgent) Categories(ctx context.Context) []string {
	a.observe("list_categories")

	categories, err := a.repo.ListCategories(ctx)
	if err != nil {
		a.degrade("list_categories", err)
	}

	if len(categories) == 0 {
		if a.metrics != nil {
			a.metrics.RecordFallbackServed()
		}
		return FallbackCategories
	}
	return categories
}

// AveragePrice returns the average non-null item price for a native
// category, or nil when the category has no priced items or the store
// query fails.
func (a *CatalogAgent) AveragePrice(ctx context.Context, nativeCategory string) *float64 {
	a.observe("average_price_by_category")

	avg, err := a.repo.AveragePriceByCategory(ctx, nativeCategory)
	if err != nil {
		a.degrade("average_price_by_category", err)
		return nil
	}
	return avg
}

// SellerPerformance returns the aggregate for sellers in the given city,
// or nil when the city is unknown or the store query fails.
func (a *CatalogAgent) SellerPerformance(ctx context.Context, city string) *domain.SellerPerformance {
	a.observe("seller_performance")

	perf, err := a.repo.SellerPerformance(ctx, city)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.degrade("seller_performance", err)
		}
		return nil
	}
	return perf
}
