package agent

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/domain"
	"github.com/aswincandra/olist-analytics/internal/metrics"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

// ReviewsAgent answers review-analysis questions.
type ReviewsAgent struct {
	base
}

func NewReviewsAgent(repo repository.Analytics, logger *zap.Logger, m *metrics.Metrics) *ReviewsAgent {
	return &ReviewsAgent{base: newBase(repo, logger, m)}
}

// MostPositiveReviewedProduct returns the product with the most reviews
// scored 4 or above, or nil when no such product exists or the store
// query fails. Ties are broken by the store's row order.
func (a *ReviewsAgent) MostPositiveReviewedProduct(ctx context.Context) *domain.ProductRating {
	a.observe("most_positive_reviewed_product")

	rating, err := a.repo.MostPositiveReviewedProduct(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.degrade("most_positive_reviewed_product", err)
		}
		return nil
	}
	return rating
}
