package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aswincandra/olist-analytics/internal/domain"
)

// MockAnalytics is an in-memory Analytics used in unit tests. Fixture data
// is set directly on the fields; Err, when set, is returned by every call
// to simulate a failing store.
type MockAnalytics struct {
	mu sync.RWMutex

	Translations []domain.CategoryTranslation
	Categories   []string
	AvgPrices    map[string]float64 // native category -> average
	Sellers      map[string]domain.SellerPerformance
	TopPositive  *domain.ProductRating
	Best         []domain.ProductRating

	Err error

	Calls []string
}

func NewMockAnalytics() *MockAnalytics {
	return &MockAnalytics{
		AvgPrices: make(map[string]float64),
		Sellers:   make(map[string]domain.SellerPerformance),
	}
}

func (m *MockAnalytics) record(call string) {
	m.Calls = append(m.Calls, call)
}

func (m *MockAnalytics) CategoryTranslations(ctx context.Context) ([]domain.CategoryTranslation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CategoryTranslations")
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Translations, nil
}

func (m *MockAnalytics) AveragePriceByCategory(ctx context.Context, nativeCategory string) (*float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("AveragePriceByCategory:" + nativeCategory)
	if m.Err != nil {
		return nil, m.Err
	}
	avg, ok := m.AvgPrices[nativeCategory]
	if !ok {
		return nil, nil
	}
	return &avg, nil
}

func (m *MockAnalytics) ListCategories(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListCategories")
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]string, len(m.Categories))
	copy(out, m.Categories)
	sort.Strings(out)
	return out, nil
}

func (m *MockAnalytics) SellerPerformance(ctx context.Context, city string) (*domain.SellerPerformance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SellerPerformance:" + city)
	if m.Err != nil {
		return nil, m.Err
	}
	perf, ok := m.Sellers[strings.ToLower(city)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &perf, nil
}

func (m *MockAnalytics) MostPositiveReviewedProduct(ctx context.Context) (*domain.ProductRating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("MostPositiveReviewedProduct")
	if m.Err != nil {
		return nil, m.Err
	}
	if m.TopPositive == nil {
		return nil, domain.ErrNotFound
	}
	return m.TopPositive, nil
}

func (m *MockAnalytics) BestProducts(ctx context.Context, limit int) ([]domain.ProductRating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("BestProducts")
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > len(m.Best) {
		limit = len(m.Best)
	}
	return m.Best[:limit], nil
}
