package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/agent"
	"github.com/aswincandra/olist-analytics/internal/metrics"
)

// UnsupportedAnswer is returned when no routing rule matches the question.
const UnsupportedAnswer = "Pertanyaan belum didukung oleh sistem."

// AnswerService turns one natural-language question into one text answer.
// It never fails: every error underneath degrades to explanatory text.
type AnswerService interface {
	Answer(ctx context.Context, question string) string
}

type OrchestratorDeps struct {
	Catalog    *agent.CatalogAgent
	Reviews    *agent.ReviewsAgent
	Recommend  *agent.RecommendationAgent
	Translator *agent.Translator
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
}

// rule is one entry of the routing table. match tests the lowercased
// question; answer may still decline (ok=false) when its sub-conditions
// find nothing to act on, in which case evaluation continues with the
// next rule.
type rule struct {
	name   string
	match  func(q string) bool
	answer func(ctx context.Context, q string) (text string, ok bool)
}

type orchestrator struct {
	catalog    *agent.CatalogAgent
	reviews    *agent.ReviewsAgent
	recommend  *agent.RecommendationAgent
	translator *agent.Translator
	logger     *zap.Logger
	metrics    *metrics.Metrics
	rules      []rule
}

func NewOrchestrator(deps OrchestratorDeps) AnswerService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	o := &orchestrator{
		catalog:    deps.Catalog,
		reviews:    deps.Reviews,
		recommend:  deps.Recommend,
		translator: deps.Translator,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}

	// evaluated in order, first rule that matches and answers wins
	o.rules = []rule{
		{
			name:   "list_categories",
			match:  containsAny("kategori apa"),
			answer: o.answerCategories,
		},
		{
			name:   "average_price",
			match:  containsAny("harga rata rata", "rata-rata harga"),
			answer: o.answerAveragePrice,
		},
		{
			name:   "seller_performance",
			match:  containsAny("performa seller", "bandingkan seller"),
			answer: o.answerSellerPerformance,
		},
		{
			name:   "most_positive_reviewed",
			match:  containsAny("paling sering direview positif"),
			answer: o.answerMostPositiveReviewed,
		},
		{
			name:   "best_products",
			match:  containsAny("produk terbaik", "produk paling bagus"),
			answer: o.answerBestProducts,
		},
	}

	return o
}

func (o *orchestrator) Answer(ctx context.Context, question string) string {
	start := time.Now()
	if o.metrics != nil {
		o.metrics.IncQuestionsInFlight()
		defer o.metrics.DecQuestionsInFlight()
	}

	q := strings.ToLower(question)

	for _, r := range o.rules {
		if !r.match(q) {
			continue
		}

		text, ok := r.answer(ctx, q)
		if !ok {
			// the rule's keyword matched but its parameters did not
			// resolve (unknown category, no city named); keep going
			continue
		}

		o.logger.Info("question answered",
			zap.String("rule", r.name),
			zap.Duration("took", time.Since(start)),
		)
		if o.metrics != nil {
			o.metrics.RecordQuestion(r.name, "answered", time.Since(start))
		}
		return text
	}

	o.logger.Info("question not supported", zap.String("question", question))
	if o.metrics != nil {
		o.metrics.RecordQuestion("none", "unsupported", time.Since(start))
	}
	return UnsupportedAnswer
}

func (o *orchestrator) answerCategories(ctx context.Context, q string) (string, bool) {
	categories := o.catalog.Categories(ctx)
	return "Kategori yang tersedia:\n- " + strings.Join(categories, "\n- "), true
}

func (o *orchestrator) answerAveragePrice(ctx context.Context, q string) (string, bool) {
	english, native, found := o.translator.Match(ctx, q)
	if !found {
		return "", false
	}

	avg := o.catalog.AveragePrice(ctx, native)
	if avg == nil {
		return fmt.Sprintf("Tidak ditemukan harga valid untuk kategori %s.", english), true
	}
	return fmt.Sprintf("Rata-rata harga produk kategori %s adalah %.2f.", english, *avg), true
}

// answerSellerPerformance checks São Paulo before Rio; the first city
// mentioned in that fixed order wins even when the question names both.
func (o *orchestrator) answerSellerPerformance(ctx context.Context, q string) (string, bool) {
	if strings.Contains(q, "sao paulo") || strings.Contains(q, "são paulo") {
		perf := o.catalog.SellerPerformance(ctx, "sao paulo")
		if perf == nil {
			return "Data São Paulo tidak ditemukan.", true
		}
		return "Seller São Paulo: " + formatPerformance(perf.TotalOrders, perf.AvgReview), true
	}
	if strings.Contains(q, "rio") {
		perf := o.catalog.SellerPerformance(ctx, "rio de janeiro")
		if perf == nil {
			return "Data Rio tidak ditemukan.", true
		}
		return "Seller Rio de Janeiro: " + formatPerformance(perf.TotalOrders, perf.AvgReview), true
	}
	return "", false
}

func (o *orchestrator) answerMostPositiveReviewed(ctx context.Context, q string) (string, bool) {
	rating := o.reviews.MostPositiveReviewedProduct(ctx)
	if rating == nil {
		return "Tidak ditemukan produk dengan review positif.", true
	}
	return fmt.Sprintf(
		"Produk dengan review positif terbanyak adalah %s dengan %d review positif.",
		rating.ProductID, rating.ReviewCount,
	), true
}

func (o *orchestrator) answerBestProducts(ctx context.Context, q string) (string, bool) {
	ratings := o.recommend.BestProducts(ctx, agent.DefaultRecommendationLimit)
	if len(ratings) == 0 {
		return "Belum cukup data untuk rekomendasi produk.", true
	}

	lines := make([]string, len(ratings))
	for i, r := range ratings {
		lines[i] = fmt.Sprintf("%s (rating %.2f, %d review)", r.ProductID, r.AvgScore, r.ReviewCount)
	}
	return "Rekomendasi produk terbaik:\n- " + strings.Join(lines, "\n- "), true
}

func formatPerformance(totalOrders int, avgReview *float64) string {
	if avgReview == nil {
		return fmt.Sprintf("%d order, belum ada review.", totalOrders)
	}
	return fmt.Sprintf("%d order, rata-rata review %.2f.", totalOrders, *avgReview)
}

func containsAny(phrases ...string) func(q string) bool {
	return func(q string) bool {
		for _, p := range phrases {
			if strings.Contains(q, p) {
				return true
			}
		}
		return false
	}
}
