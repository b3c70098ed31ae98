package advisory

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bobmcallan/consilio/internal/models"
)

// GetClientGroups retrieves client groups, optionally filtered by status.
func (c *Client) GetClientGroups(ctx context.Context, status string) ([]models.ClientGroup, error) {
	path := "/client-groups"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var groups []models.ClientGroup
	if err := c.get(ctx, path, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// GetClientGroup retrieves a client group with its members.
func (c *Client) GetClientGroup(ctx context.Context, id int64) (*models.ClientGroup, error) {
	var group models.ClientGroup
	if err := c.get(ctx, fmt.Sprintf("/client-groups/%d", id), &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// CreateClientGroup creates a new client group.
func (c *Client) CreateClientGroup(ctx context.Context, req models.ClientGroupCreate) (*models.ClientGroup, error) {
	var group models.ClientGroup
	if err := c.send(ctx, http.MethodPost, "/client-groups", req, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// UpdateClientGroup applies a partial update to a client group.
func (c *Client) UpdateClientGroup(ctx context.Context, id int64, req models.ClientGroupUpdate) (*models.ClientGroup, error) {
	var group models.ClientGroup
	if err := c.send(ctx, http.MethodPatch, fmt.Sprintf("/client-groups/%d", id), req, &group); err != nil {
		return nil, err
	}

	return &group, nil
}
