package advisory

import (
	"context"
	"net/url"

	"github.com/bobmcallan/consilio/internal/models"
)

// GetFunds retrieves the fund catalog. Status filters to "active" or
// "inactive"; empty retrieves everything.
func (c *Client) GetFunds(ctx context.Context, status string) ([]models.Fund, error) {
	path := "/funds"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var funds []models.Fund
	if err := c.get(ctx, path, &funds); err != nil {
		return nil, err
	}

	return funds, nil
}
