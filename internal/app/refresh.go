package app

import (
	"context"
	"time"

	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
)

// startCatalogRefresh re-fetches the fund catalog on a fixed interval so
// console reads stay within the freshness window without paying the fetch.
func startCatalogRefresh(ctx context.Context, catalogService interfaces.CatalogService, logger *common.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Catalog refresh: stopped")
			return
		case <-ticker.C:
			refreshCatalog(ctx, catalogService, logger)
		}
	}
}

func refreshCatalog(ctx context.Context, catalogService interfaces.CatalogService, logger *common.Logger) {
	start := time.Now()

	funds, err := catalogService.GetFunds(ctx, interfaces.FundListOptions{Status: "active", ForceRefresh: true})
	if err != nil {
		logger.Warn().Err(err).Msg("Catalog refresh: fetch failed")
		return
	}

	logger.Info().
		Int("funds", len(funds)).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog refresh: complete")
}
