package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/domain"
	"github.com/aswincandra/olist-analytics/internal/metrics"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

// DefaultRecommendationLimit bounds best-product answers.
const DefaultRecommendationLimit = 5

// RecommendationAgent answers product recommendation questions.
type RecommendationAgent struct {
	base
}

func NewRecommendationAgent(repo repository.Analytics, logger *zap.Logger, m *metrics.Metrics) *RecommendationAgent {
	return &RecommendationAgent{base: newBase(repo, logger, m)}
}

// BestProducts returns up to limit products with an average review score
// of at least 4, best first. A non-positive limit falls back to the
// default. Store failures yield an empty slice.
func (a *RecommendationAgent) BestProducts(ctx context.Context, limit int) []domain.ProductRating {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	a.observe("best_products")

	ratings, err := a.repo.BestProducts(ctx, limit)
	if err != nil {
		a.degrade("best_products", err)
		return nil
	}
	return ratings
}
