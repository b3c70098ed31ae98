package app

import (
	"context"
	"os"
	"time"

	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
)

// warmCache pre-fetches the fund catalog and template catalog on startup so
// the first console query is fast.
func warmCache(ctx context.Context, catalogService interfaces.CatalogService, templateService interfaces.TemplateService, logger *common.Logger) {
	// Check env var override
	if os.Getenv("CONSILIO_WARM_CACHE") == "off" {
		logger.Info().Msg("Warm cache: disabled via CONSILIO_WARM_CACHE=off")
		return
	}

	start := time.Now()

	funds, err := catalogService.GetFunds(ctx, interfaces.FundListOptions{Status: "active"})
	if err != nil {
		logger.Warn().Err(err).Msg("Warm cache: fund catalog fetch failed")
		return
	}

	templates, err := templateService.ListTemplates(ctx, false)
	if err != nil {
		// Templates are secondary; the fund catalog is already warm
		logger.Warn().Err(err).Msg("Warm cache: template catalog fetch failed")
	}

	logger.Info().
		Int("funds", len(funds)).
		Int("templates", len(templates)).
		Dur("elapsed", time.Since(start)).
		Msg("Warm cache: complete")
}
