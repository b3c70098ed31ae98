// Package catalog provides fund catalog read services
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bobmcallan/consilio/internal/cache"
	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
	"github.com/bobmcallan/consilio/internal/models"
)

// Compile-time interface check
var _ interfaces.CatalogService = (*Service)(nil)

// Service implements CatalogService
type Service struct {
	client interfaces.AdvisoryClient
	cache  *cache.ResourceCache
	logger *common.Logger
}

// NewService creates a new catalog service
func NewService(client interfaces.AdvisoryClient, c *cache.ResourceCache, logger *common.Logger) *Service {
	return &Service{
		client: client,
		cache:  c,
		logger: logger,
	}
}

// GetFunds returns catalog funds sorted by name. Reads within the catalog
// freshness window are served from cache unless ForceRefresh is set.
func (s *Service) GetFunds(ctx context.Context, opts interfaces.FundListOptions) ([]models.Fund, error) {
	status := normalizeStatus(opts.Status)
	key := cache.Key("funds", statusKey(status))

	if !opts.ForceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			if funds, ok := cached.([]models.Fund); ok {
				return funds, nil
			}
		}
	}

	funds, err := s.client.GetFunds(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get funds: %w", err)
	}

	sort.Slice(funds, func(i, j int) bool {
		return strings.ToLower(funds[i].FundName) < strings.ToLower(funds[j].FundName)
	})

	s.auditISINs(funds)
	s.cache.Set(key, funds, common.FreshnessFunds)

	s.logger.Debug().Str("status", statusKey(status)).Int("funds", len(funds)).Msg("Fund catalog fetched")
	return funds, nil
}

// GetFund returns a single catalog fund by id.
func (s *Service) GetFund(ctx context.Context, fundID int64) (*models.Fund, error) {
	funds, err := s.GetFunds(ctx, interfaces.FundListOptions{Status: "all"})
	if err != nil {
		return nil, err
	}

	for i := range funds {
		if funds[i].ID == fundID {
			return &funds[i], nil
		}
	}

	return nil, fmt.Errorf("fund %d not found in catalog", fundID)
}

// normalizeStatus maps the option value to the platform's query value:
// empty defaults to active, "all" means no filter.
func normalizeStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "active":
		return "active"
	case "all":
		return ""
	default:
		return strings.ToLower(strings.TrimSpace(status))
	}
}

func statusKey(status string) string {
	if status == "" {
		return "all"
	}
	return status
}

// auditISINs logs funds carrying a malformed ISIN. Bad identifiers come
// from upstream data entry and must not block the catalog read.
func (s *Service) auditISINs(funds []models.Fund) {
	for _, f := range funds {
		if f.ISINNumber == "" {
			continue
		}
		if err := models.ValidateISIN(f.ISINNumber); err != nil {
			s.logger.Warn().
				Int64("fund", f.ID).
				Str("isin", f.ISINNumber).
				Err(err).
				Msg("Fund has invalid ISIN")
		}
	}
}
