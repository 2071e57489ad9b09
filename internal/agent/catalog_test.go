package agent

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/domain"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

func TestCatalogAgent_Categories(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		err        error
		want       []string
	}{
		{
			name:       "store data is returned sorted",
			categories: []string{"moveis_decoracao", "beleza_saude", "automotivo"},
			want:       []string{"automotivo", "beleza_saude", "moveis_decoracao"},
		},
		{
			name: "empty store yields fallback list",
			want: FallbackCategories,
		},
		{
			name: "store failure yields fallback list",
			err:  errors.New("connection refused"),
			want: FallbackCategories,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMockAnalytics()
			repo.Categories = tt.categories
			repo.Err = tt.err

			a := NewCatalogAgent(repo, zap.NewNop(), nil)

			got := a.Categories(context.Background())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogAgent_Categories_FallbackLiteral(t *testing.T) {
	want := []string{
		"furniture", "electronics", "auto", "toys", "fashion",
		"sports", "home_appliances", "books", "health_beauty",
	}
	if !reflect.DeepEqual(FallbackCategories, want) {
		t.Errorf("FallbackCategories = %v, want %v", FallbackCategories, want)
	}
}

func TestCatalogAgent_AveragePrice(t *testing.T) {
	tests := []struct {
		name     string
		prices   map[string]float64
		err      error
		category string
		want     *float64
	}{
		{
			name:     "known category",
			prices:   map[string]float64{"moveis_decoracao": 87.5},
			category: "moveis_decoracao",
			want:     ptr(87.5),
		},
		{
			name:     "unknown category is absent",
			prices:   map[string]float64{"moveis_decoracao": 87.5},
			category: "automotivo",
			want:     nil,
		},
		{
			name:     "store failure is absent",
			err:      errors.New("connection refused"),
			category: "moveis_decoracao",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMockAnalytics()
			repo.AvgPrices = tt.prices
			if repo.AvgPrices == nil {
				repo.AvgPrices = map[string]float64{}
			}
			repo.Err = tt.err

			a := NewCatalogAgent(repo, zap.NewNop(), nil)

			got := a.AveragePrice(context.Background(), tt.category)
			switch {
			case got == nil && tt.want != nil:
				t.Errorf("AveragePrice() = nil, want %v", *tt.want)
			case got != nil && tt.want == nil:
				t.Errorf("AveragePrice() = %v, want nil", *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("AveragePrice() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestCatalogAgent_SellerPerformance(t *testing.T) {
	avg := 4.3
	repo := repository.NewMockAnalytics()
	repo.Sellers["sao paulo"] = domain.SellerPerformance{
		City:        "sao paulo",
		TotalOrders: 120,
		AvgReview:   &avg,
	}

	a := NewCatalogAgent(repo, zap.NewNop(), nil)

	perf := a.SellerPerformance(context.Background(), "Sao Paulo")
	if perf == nil {
		t.Fatal("SellerPerformance() = nil, want row")
	}
	if perf.TotalOrders != 120 {
		t.Errorf("TotalOrders = %d, want 120", perf.TotalOrders)
	}

	if got := a.SellerPerformance(context.Background(), "curitiba"); got != nil {
		t.Errorf("SellerPerformance(unknown city) = %v, want nil", got)
	}

	repo.Err = errors.New("connection refused")
	if got := a.SellerPerformance(context.Background(), "sao paulo"); got != nil {
		t.Errorf("SellerPerformance() with failing store = %v, want nil", got)
	}
}

func ptr(f float64) *float64 { return &f }
