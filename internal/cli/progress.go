package cli

import (
	"log/slog"

	"github.com/rdsctl/rdsctl/internal/adapter"
)

// progressLogger reports each fetched page through the logger.
type progressLogger struct {
	logger *slog.Logger
}

func (p progressLogger) OnPage(page adapter.Page) {
	p.logger.Info("page received",
		"operation", page.Operation,
		"page", page.Index,
		"items", page.Count,
		"more", page.NextMarker != "")
}
