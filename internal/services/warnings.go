package services

import (
	"context"
	"slices"
	"sync"

	"github.com/epeers/portfoliocalc/internal/models"
)

type warningContextKey struct{}

// WarningCollector gathers non-fatal findings raised while a request is valued or loaded.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
}

// NewWarningContext returns a context carrying a fresh WarningCollector along
// with the collector itself, so the caller can read what was raised.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning records w on the collector carried by ctx, if any.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, w)
}

// GetWarnings returns a copy of the collected warnings in the order they were added.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return slices.Clone(wc.warnings)
}
