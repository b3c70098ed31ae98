// Package template manages portfolio template drafts: the allocation
// workflow from fund selection through weighting entry, validation, review,
// and submission to the platform.
package template

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/consilio/internal/allocation"
	"github.com/bobmcallan/consilio/internal/cache"
	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
	"github.com/bobmcallan/consilio/internal/models"
)

// Compile-time interface check
var _ interfaces.TemplateService = (*Service)(nil)

// draft is the service's mutable record for one in-progress template.
// The allocation itself is an immutable value; updates swap it under the
// service lock.
type draft struct {
	id             string
	name           string
	generationName string
	description    string
	createdAt      string // optional backdate for submission
	alloc          allocation.State
	created        time.Time
	updated        time.Time
}

// Service implements TemplateService. Drafts are session-scoped and live
// only in this map; submitting or discarding a draft removes it.
type Service struct {
	client    interfaces.AdvisoryClient
	catalog   interfaces.CatalogService
	gemini    interfaces.GeminiClient // nil when no API key is configured
	cache     *cache.ResourceCache
	tolerance float64
	logger    *common.Logger

	mu     sync.RWMutex
	drafts map[string]*draft
}

// NewService creates a new template service. gemini may be nil; description
// drafting then reports itself unconfigured.
func NewService(client interfaces.AdvisoryClient, catalog interfaces.CatalogService, gemini interfaces.GeminiClient, c *cache.ResourceCache, tolerance float64, logger *common.Logger) *Service {
	if tolerance <= 0 {
		tolerance = allocation.DefaultTolerance
	}
	return &Service{
		client:    client,
		catalog:   catalog,
		gemini:    gemini,
		cache:     c,
		tolerance: tolerance,
		logger:    logger,
		drafts:    make(map[string]*draft),
	}
}

// NewDraft opens a template draft with an empty allocation.
func (s *Service) NewDraft(ctx context.Context, details interfaces.DraftDetails) (*models.TemplateDraft, error) {
	d := &draft{
		id:      uuid.NewString(),
		alloc:   allocation.NewState(),
		created: time.Now(),
		updated: time.Now(),
	}
	applyDetails(d, details)

	s.mu.Lock()
	s.drafts[d.id] = d
	s.mu.Unlock()

	s.logger.Info().Str("draft", d.id).Str("name", d.name).Msg("Template draft opened")
	return s.snapshot(ctx, d), nil
}

// GetDraft returns a snapshot of a draft.
func (s *Service) GetDraft(ctx context.Context, draftID string) (*models.TemplateDraft, error) {
	d, err := s.find(draftID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, d), nil
}

// ListDrafts returns snapshots of all open drafts, oldest first.
func (s *Service) ListDrafts(ctx context.Context) ([]*models.TemplateDraft, error) {
	s.mu.RLock()
	open := make([]*draft, 0, len(s.drafts))
	for _, d := range s.drafts {
		open = append(open, d)
	}
	s.mu.RUnlock()

	sort.Slice(open, func(i, j int) bool {
		return open[i].created.Before(open[j].created)
	})

	snapshots := make([]*models.TemplateDraft, 0, len(open))
	for _, d := range open {
		snapshots = append(snapshots, s.snapshot(ctx, d))
	}
	return snapshots, nil
}

// UpdateDraftDetails changes a draft's name, generation, description or
// backdate. Nil fields are left as they are.
func (s *Service) UpdateDraftDetails(ctx context.Context, draftID string, details interfaces.DraftDetails) (*models.TemplateDraft, error) {
	d, err := s.find(draftID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	applyDetails(d, details)
	d.updated = time.Now()
	s.mu.Unlock()

	return s.snapshot(ctx, d), nil
}

// DiscardDraft closes a draft without submitting it.
func (s *Service) DiscardDraft(_ context.Context, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[draftID]; !ok {
		return fmt.Errorf("draft %s not found", draftID)
	}
	delete(s.drafts, draftID)

	s.logger.Info().Str("draft", draftID).Msg("Template draft discarded")
	return nil
}

// SetWeighting applies a weighting keystroke to a draft fund, selecting the
// fund if needed. Input is sanitized; a value over 100 is rejected and the
// field keeps its prior value, which the returned snapshot reports.
func (s *Service) SetWeighting(ctx context.Context, draftID string, fundID int64, input string) (*models.TemplateDraft, error) {
	d, err := s.find(draftID)
	if err != nil {
		return nil, err
	}

	fund, err := s.catalog.GetFund(ctx, fundID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if !fund.IsActive() && !d.alloc.IsSelected(fundID) {
		s.mu.Unlock()
		return nil, fmt.Errorf("fund %d (%s) is inactive and cannot be added", fundID, fund.FundName)
	}
	next, accepted := d.alloc.SetWeighting(fundID, input)
	d.alloc = next
	d.updated = time.Now()
	s.mu.Unlock()

	snap := s.snapshot(ctx, d)
	if !accepted {
		snap.Messages = append(snap.Messages,
			fmt.Sprintf("weighting %q for %s rejected: a single fund cannot exceed 100%%", input, fund.FundName))
	}
	return snap, nil
}

// DeselectFund removes a fund from a draft's allocation.
func (s *Service) DeselectFund(ctx context.Context, draftID string, fundID int64) (*models.TemplateDraft, error) {
	d, err := s.find(draftID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	d.alloc = d.alloc.Deselect(fundID)
	d.updated = time.Now()
	s.mu.Unlock()

	return s.snapshot(ctx, d), nil
}

// ReviewDraft returns the draft with validation, weighted risk, and
// optionally the rendered allocation chart.
func (s *Service) ReviewDraft(ctx context.Context, draftID string, opts interfaces.ReviewOptions) (*models.DraftReview, error) {
	d, err := s.find(draftID)
	if err != nil {
		return nil, err
	}

	snap := s.snapshot(ctx, d)
	review := &models.DraftReview{Draft: snap}

	if opts.IncludeChart && len(snap.Lines) > 0 {
		png, err := renderAllocationChart(snap)
		if err != nil {
			s.logger.Warn().Err(err).Str("draft", draftID).Msg("Allocation chart render failed")
		} else {
			review.ChartPNG = png
		}
	}

	return review, nil
}

// SubmitDraft validates the allocation, assembles the payload, and creates
// the template on the platform. A failed submission is never retried; the
// platform's error detail goes back to the adviser. On success the draft is
// closed and the template catalog cache invalidated.
func (s *Service) SubmitDraft(ctx context.Context, draftID string) (*models.PortfolioTemplate, error) {
	d, err := s.find(draftID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	name := d.name
	alloc := d.alloc
	req := models.TemplateCreate{
		Name:           d.name,
		GenerationName: d.generationName,
		Description:    d.description,
		CreatedAt:      d.createdAt,
	}
	s.mu.RUnlock()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("draft has no name; set one before submitting")
	}

	assessment := allocation.Validate(alloc, s.tolerance)
	if !assessment.Valid {
		return nil, fmt.Errorf("draft is not submittable: %s", strings.Join(assessment.Messages, "; "))
	}

	req.Funds = allocation.Assemble(alloc)

	created, err := s.client.CreateTemplate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()

	s.cache.InvalidatePrefix("templates")

	s.logger.Info().
		Str("draft", draftID).
		Int64("template", created.ID).
		Str("name", created.Name).
		Int("funds", len(req.Funds)).
		Msg("Template created")

	return created, nil
}

// ListTemplates returns the platform's template catalog, newest first.
func (s *Service) ListTemplates(ctx context.Context, forceRefresh bool) ([]models.PortfolioTemplate, error) {
	key := cache.Key("templates", "list")
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			if templates, ok := cached.([]models.PortfolioTemplate); ok {
				return templates, nil
			}
		}
	}

	templates, err := s.client.GetTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].CreatedAt.After(templates[j].CreatedAt)
	})

	s.cache.Set(key, templates, common.FreshnessTemplates)
	return templates, nil
}

// find looks up an open draft by id.
func (s *Service) find(draftID string) (*draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return nil, fmt.Errorf("draft %s not found", draftID)
	}
	return d, nil
}

// snapshot builds the immutable view of a draft: allocation lines enriched
// with catalog metadata, the balance assessment, and weighted risk. A
// catalog read failure degrades the snapshot (no names, no risk) rather
// than failing the operation.
func (s *Service) snapshot(ctx context.Context, d *draft) *models.TemplateDraft {
	var funds []models.Fund
	if catalogFunds, err := s.catalog.GetFunds(ctx, interfaces.FundListOptions{Status: "all"}); err != nil {
		s.logger.Warn().Err(err).Msg("Catalog unavailable for draft snapshot")
	} else {
		funds = catalogFunds
	}

	byID := make(map[int64]models.Fund, len(funds))
	for _, f := range funds {
		byID[f.ID] = f
	}

	s.mu.RLock()
	alloc := d.alloc
	snap := &models.TemplateDraft{
		ID:             d.id,
		Name:           d.name,
		GenerationName: d.generationName,
		Description:    d.description,
		CreatedAt:      d.created,
		UpdatedAt:      d.updated,
	}
	s.mu.RUnlock()

	for _, e := range alloc.Entries() {
		line := models.DraftLine{
			FundID: e.FundID,
			Raw:    string(e.Raw),
			Amount: e.Raw.Value(),
		}
		if f, ok := byID[e.FundID]; ok {
			line.FundName = f.FundName
			line.RiskFactor = f.RiskFactor
		}
		snap.Lines = append(snap.Lines, line)
	}

	assessment := allocation.Validate(alloc, s.tolerance)
	snap.Total = assessment.Total
	snap.Remaining = assessment.Remaining
	snap.Status = string(assessment.Status)
	snap.Valid = assessment.Valid
	snap.Messages = assessment.Messages

	if risk, ok := allocation.WeightedRisk(alloc, funds, s.tolerance); ok {
		snap.WeightedRisk = &risk
	}

	return snap
}

func applyDetails(d *draft, details interfaces.DraftDetails) {
	if details.Name != nil {
		d.name = strings.TrimSpace(*details.Name)
	}
	if details.GenerationName != nil {
		d.generationName = strings.TrimSpace(*details.GenerationName)
	}
	if details.Description != nil {
		d.description = *details.Description
	}
	if details.CreatedAt != nil {
		d.createdAt = strings.TrimSpace(*details.CreatedAt)
	}
}
