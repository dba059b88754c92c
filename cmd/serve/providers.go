package serve

import (
	"log/slog"
	"time"

	"github.com/sig-0/tsycurve/ingest"
	"github.com/sig-0/tsycurve/provider/treasury"
)

// defaultProviders returns the default ingestion providers
func defaultProviders(logger *slog.Logger, feedTimeout time.Duration) []ingest.Provider {
	// Daily treasury par yield curve feed
	treasuryProvider := treasury.NewProvider(
		treasury.WithLogger(logger),
		treasury.WithTimeout(feedTimeout),
	)

	return []ingest.Provider{
		treasuryProvider,
	}
}
