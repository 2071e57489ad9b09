package agent

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/domain"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

func TestRecommendationAgent_BestProducts(t *testing.T) {
	best := []domain.ProductRating{
		{ProductID: "p1", ReviewCount: 50, AvgScore: 4.9},
		{ProductID: "p2", ReviewCount: 30, AvgScore: 4.8},
		{ProductID: "p3", ReviewCount: 90, AvgScore: 4.5},
		{ProductID: "p4", ReviewCount: 12, AvgScore: 4.5},
		{ProductID: "p5", ReviewCount: 7, AvgScore: 4.2},
		{ProductID: "p6", ReviewCount: 3, AvgScore: 4.0},
	}

	repo := repository.NewMockAnalytics()
	repo.Best = best

	a := NewRecommendationAgent(repo, zap.NewNop(), nil)

	got := a.BestProducts(context.Background(), DefaultRecommendationLimit)
	if len(got) != 5 {
		t.Fatalf("BestProducts() returned %d rows, want 5", len(got))
	}

	// non-increasing by (avg score, review count), all >= 4
	for i, r := range got {
		if r.AvgScore < 4 {
			t.Errorf("row %d: AvgScore = %v, want >= 4", i, r.AvgScore)
		}
		if i == 0 {
			continue
		}
		prev := got[i-1]
		if r.AvgScore > prev.AvgScore {
			t.Errorf("row %d: AvgScore %v > previous %v", i, r.AvgScore, prev.AvgScore)
		}
		if r.AvgScore == prev.AvgScore && r.ReviewCount > prev.ReviewCount {
			t.Errorf("row %d: ReviewCount %d > previous %d at equal score", i, r.ReviewCount, prev.ReviewCount)
		}
	}
}

func TestRecommendationAgent_BestProducts_DefaultLimit(t *testing.T) {
	repo := repository.NewMockAnalytics()
	repo.Best = []domain.ProductRating{{ProductID: "p1", ReviewCount: 1, AvgScore: 4.5}}

	a := NewRecommendationAgent(repo, zap.NewNop(), nil)

	if got := a.BestProducts(context.Background(), 0); len(got) != 1 {
		t.Errorf("BestProducts(0) returned %d rows, want 1", len(got))
	}
	if got := a.BestProducts(context.Background(), -3); len(got) != 1 {
		t.Errorf("BestProducts(-3) returned %d rows, want 1", len(got))
	}
}

func TestRecommendationAgent_BestProducts_StoreFailure(t *testing.T) {
	repo := repository.NewMockAnalytics()
	repo.Err = errors.New("connection refused")

	a := NewRecommendationAgent(repo, zap.NewNop(), nil)

	if got := a.BestProducts(context.Background(), 5); len(got) != 0 {
		t.Errorf("BestProducts() with failing store = %v, want empty", got)
	}
}
