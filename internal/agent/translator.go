package agent

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/domain"
	"github.com/aswincandra/olist-analytics/internal/metrics"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

// Translator resolves the English category names users type to the native
// labels the product table stores. The map is rebuilt on every call; the
// system keeps no state between requests.
type Translator struct {
	base
}

func NewTranslator(repo repository.Analytics, logger *zap.Logger, m *metrics.Metrics) *Translator {
	return &Translator{base: newBase(repo, logger, m)}
}

// Map returns normalized English label -> native label. An unreachable
// store yields an empty map; average-price lookups then report the
// category as not found.
func (t *Translator) Map(ctx context.Context) map[string]string {
	t.observe("category_translations")

	rows, err := t.repo.CategoryTranslations(ctx)
	if err != nil {
		t.degrade("category_translations", err)
		return map[string]string{}
	}

	m := make(map[string]string, len(rows))
	for _, row := range rows {
		m[domain.NormalizeCategory(row.English)] = row.Native
	}
	return m
}

// Match finds the translation whose normalized English label occurs as a
// substring of the (lowercased) question. When several labels match, the
// longest one wins, with ties broken alphabetically, so the result does
// not depend on map iteration order.
func (t *Translator) Match(ctx context.Context, question string) (english, native string, ok bool) {
	m := t.Map(ctx)

	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if len(labels[i]) != len(labels[j]) {
			return len(labels[i]) > len(labels[j])
		}
		return labels[i] < labels[j]
	})

	// normalizing the question folds spaces to underscores, so both
	// "home beauty" and "home_beauty" phrasings hit the same label
	q := domain.NormalizeCategory(question)
	for _, label := range labels {
		if label != "" && strings.Contains(q, label) {
			return label, m[label], true
		}
	}
	return "", "", false
}
