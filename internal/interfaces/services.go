// Package interfaces defines service contracts for Consilio
package interfaces

import (
	"context"

	"github.com/bobmcallan/consilio/internal/models"
)

// CatalogService manages fund catalog reads
type CatalogService interface {
	// GetFunds returns catalog funds, served from cache within the
	// freshness window unless ForceRefresh is set
	GetFunds(ctx context.Context, opts FundListOptions) ([]models.Fund, error)

	// GetFund returns a single catalog fund by id
	GetFund(ctx context.Context, fundID int64) (*models.Fund, error)

	// ExportFundsCSV renders the catalog as CSV for reporting
	ExportFundsCSV(ctx context.Context, opts FundListOptions) ([]byte, error)
}

// FundListOptions configures a catalog read
type FundListOptions struct {
	Status       string // "active" (default), "inactive", or "all"
	ForceRefresh bool   // Bypass the cache and refetch
}

// ClientGroupService manages client group operations
type ClientGroupService interface {
	// ListGroups returns client groups sorted by status rank then name
	ListGroups(ctx context.Context, opts GroupListOptions) ([]models.ClientGroup, error)

	// GetGroup returns a client group with members
	GetGroup(ctx context.Context, id int64) (*models.ClientGroup, error)

	// CreateGroup creates a client group, stamping the default adviser
	// when none is given
	CreateGroup(ctx context.Context, req models.ClientGroupCreate) (*models.ClientGroup, error)

	// UpdateGroup applies a partial update to a client group
	UpdateGroup(ctx context.Context, id int64, req models.ClientGroupUpdate) (*models.ClientGroup, error)

	// ExportGroupsCSV renders the group list as CSV for reporting
	ExportGroupsCSV(ctx context.Context, opts GroupListOptions) ([]byte, error)
}

// GroupListOptions configures a client group read
type GroupListOptions struct {
	Status       string // Filter by group status; empty for all
	ForceRefresh bool
}

// RelationshipService manages special relationships
type RelationshipService interface {
	// ListForGroup returns a group's relationships sorted by role rank
	// then contact name
	ListForGroup(ctx context.Context, clientGroupID int64) ([]models.SpecialRelationship, error)

	// Add attaches a relationship to a client group
	Add(ctx context.Context, req models.SpecialRelationshipCreate) (*models.SpecialRelationship, error)

	// Remove deletes a relationship
	Remove(ctx context.Context, id int64) error
}

// TemplateService manages portfolio template drafts and the template catalog
type TemplateService interface {
	// NewDraft opens a template draft with an empty allocation
	NewDraft(ctx context.Context, details DraftDetails) (*models.TemplateDraft, error)

	// GetDraft returns a snapshot of a draft
	GetDraft(ctx context.Context, draftID string) (*models.TemplateDraft, error)

	// ListDrafts returns snapshots of all open drafts
	ListDrafts(ctx context.Context) ([]*models.TemplateDraft, error)

	// UpdateDraftDetails changes a draft's name, generation or description
	UpdateDraftDetails(ctx context.Context, draftID string, details DraftDetails) (*models.TemplateDraft, error)

	// DiscardDraft closes a draft without submitting it
	DiscardDraft(ctx context.Context, draftID string) error

	// SetWeighting applies a weighting keystroke to a draft fund. Input is
	// sanitized; values over 100 are rejected and the field keeps its
	// prior value.
	SetWeighting(ctx context.Context, draftID string, fundID int64, input string) (*models.TemplateDraft, error)

	// DeselectFund removes a fund from a draft's allocation
	DeselectFund(ctx context.Context, draftID string, fundID int64) (*models.TemplateDraft, error)

	// ReviewDraft returns the draft with validation, weighted risk, and
	// optionally a rendered allocation chart
	ReviewDraft(ctx context.Context, draftID string, opts ReviewOptions) (*models.DraftReview, error)

	// SuggestDescription drafts a template description with Gemini
	SuggestDescription(ctx context.Context, draftID string) (string, error)

	// SubmitDraft validates, assembles and creates the template on the
	// platform, then closes the draft. Submission is never retried.
	SubmitDraft(ctx context.Context, draftID string) (*models.PortfolioTemplate, error)

	// ListTemplates returns the platform's template catalog
	ListTemplates(ctx context.Context, forceRefresh bool) ([]models.PortfolioTemplate, error)
}

// DraftDetails carries optional draft metadata; nil fields are unchanged.
type DraftDetails struct {
	Name           *string
	GenerationName *string
	Description    *string
	CreatedAt      *string // Optional backdate for submission, "2006-01-02"
}

// ReviewOptions configures a draft review
type ReviewOptions struct {
	IncludeChart bool // Render the allocation donut as PNG
}
