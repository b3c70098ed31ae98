// Package interfaces defines service contracts for Consilio
package interfaces

import (
	"context"

	"github.com/bobmcallan/consilio/internal/models"
)

// AdvisoryClient provides access to the Consilio platform API
type AdvisoryClient interface {
	// GetFunds retrieves the fund catalog, optionally filtered by status
	GetFunds(ctx context.Context, status string) ([]models.Fund, error)

	// GetClientGroups retrieves client groups, optionally filtered by status
	GetClientGroups(ctx context.Context, status string) ([]models.ClientGroup, error)

	// GetClientGroup retrieves a client group with its members
	GetClientGroup(ctx context.Context, id int64) (*models.ClientGroup, error)

	// CreateClientGroup creates a new client group
	CreateClientGroup(ctx context.Context, req models.ClientGroupCreate) (*models.ClientGroup, error)

	// UpdateClientGroup applies a partial update to a client group
	UpdateClientGroup(ctx context.Context, id int64, req models.ClientGroupUpdate) (*models.ClientGroup, error)

	// GetRelationships retrieves the special relationships for a client group
	GetRelationships(ctx context.Context, clientGroupID int64) ([]models.SpecialRelationship, error)

	// CreateRelationship attaches a special relationship to a client group
	CreateRelationship(ctx context.Context, req models.SpecialRelationshipCreate) (*models.SpecialRelationship, error)

	// DeleteRelationship removes a special relationship
	DeleteRelationship(ctx context.Context, id int64) error

	// GetTemplates retrieves the portfolio template catalog
	GetTemplates(ctx context.Context) ([]models.PortfolioTemplate, error)

	// CreateTemplate creates a portfolio template; never retried
	CreateTemplate(ctx context.Context, req models.TemplateCreate) (*models.PortfolioTemplate, error)
}

// GeminiClient provides access to Gemini API
type GeminiClient interface {
	// GenerateContent generates AI content from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
