package ledger

import (
	"context"
	"log/slog"
)

// HealthChecker reports the gateway healthy while the ledger answers status queries
type HealthChecker struct {
	client Client
}

func NewHealthChecker(client Client) *HealthChecker {
	return &HealthChecker{client: client}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.client == nil {
		return false
	}

	if _, err := hc.client.Status(ctx); err != nil {
		slog.Warn("Ledger health check failed", "error", err)
		return false
	}

	return true
}
