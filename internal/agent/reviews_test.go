package agent

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/domain"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

func TestReviewsAgent_MostPositiveReviewedProduct(t *testing.T) {
	repo := repository.NewMockAnalytics()
	repo.TopPositive = &domain.ProductRating{ProductID: "p42", ReviewCount: 88, AvgScore: 4.7}

	a := NewReviewsAgent(repo, zap.NewNop(), nil)

	got := a.MostPositiveReviewedProduct(context.Background())
	if got == nil {
		t.Fatal("MostPositiveReviewedProduct() = nil, want row")
	}
	if got.ProductID != "p42" || got.ReviewCount != 88 {
		t.Errorf("got %+v, want p42 with 88 reviews", got)
	}
}

func TestReviewsAgent_MostPositiveReviewedProduct_Absent(t *testing.T) {
	repo := repository.NewMockAnalytics()

	a := NewReviewsAgent(repo, zap.NewNop(), nil)

	if got := a.MostPositiveReviewedProduct(context.Background()); got != nil {
		t.Errorf("MostPositiveReviewedProduct() = %v, want nil", got)
	}
}

func TestReviewsAgent_MostPositiveReviewedProduct_StoreFailure(t *testing.T) {
	repo := repository.NewMockAnalytics()
	repo.Err = errors.New("connection refused")

	a := NewReviewsAgent(repo, zap.NewNop(), nil)

	if got := a.MostPositiveReviewedProduct(context.Background()); got != nil {
		t.Errorf("MostPositiveReviewedProduct() with failing store = %v, want nil", got)
	}
}
