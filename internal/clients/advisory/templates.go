package advisory

import (
	"context"
	"net/http"

	"github.com/bobmcallan/consilio/internal/models"
)

// GetTemplates retrieves the portfolio template catalog.
func (c *Client) GetTemplates(ctx context.Context) ([]models.PortfolioTemplate, error) {
	var templates []models.PortfolioTemplate
	if err := c.get(ctx, "/available-portfolios", &templates); err != nil {
		return nil, err
	}

	return templates, nil
}

// CreateTemplate creates a portfolio template from an assembled allocation.
// One attempt only: on failure the platform's error detail goes back to
// the adviser, who decides whether to re-submit.
func (c *Client) CreateTemplate(ctx context.Context, req models.TemplateCreate) (*models.PortfolioTemplate, error) {
	var template models.PortfolioTemplate
	if err := c.send(ctx, http.MethodPost, "/available-portfolios", req, &template); err != nil {
		return nil, err
	}

	return &template, nil
}
