// Package agent holds the stateless query agents. Each agent wraps one or
// more fixed read-only store queries and converts every store failure into
// an empty or absent result, so callers never see an error.
package agent

import (
	"go.uber.org/zap"

	"github.com/aswincandra/olist-analytics/internal/metrics"
	"github.com/aswincandra/olist-analytics/internal/repository"
)

type base struct {
	repo    repository.Analytics
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func newBase(repo repository.Analytics, logger *zap.Logger, m *metrics.Metrics) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{repo: repo, logger: logger, metrics: m}
}

func (b base) observe(operation string) {
	if b.metrics != nil {
		b.metrics.RecordStoreQuery(operation)
	}
}

// degrade logs a failed store query and records it; the caller then
// returns an empty result instead of the error.
func (b base) degrade(operation string, err error) {
	b.logger.Warn("store query failed, degrading to empty result",
		zap.String("operation", operation),
		zap.Error(err),
	)
	if b.metrics != nil {
		b.metrics.RecordStoreFailure(operation)
	}
}
