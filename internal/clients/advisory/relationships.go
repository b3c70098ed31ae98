package advisory

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bobmcallan/consilio/internal/models"
)

// GetRelationships retrieves the special relationships attached to a
// client group.
func (c *Client) GetRelationships(ctx context.Context, clientGroupID int64) ([]models.SpecialRelationship, error) {
	path := fmt.Sprintf("/special-relationships?client_group=%d", clientGroupID)

	var relationships []models.SpecialRelationship
	if err := c.get(ctx, path, &relationships); err != nil {
		return nil, err
	}

	return relationships, nil
}

// CreateRelationship attaches a special relationship to a client group.
func (c *Client) CreateRelationship(ctx context.Context, req models.SpecialRelationshipCreate) (*models.SpecialRelationship, error) {
	var relationship models.SpecialRelationship
	if err := c.send(ctx, http.MethodPost, "/special-relationships", req, &relationship); err != nil {
		return nil, err
	}

	return &relationship, nil
}

// DeleteRelationship removes a special relationship.
func (c *Client) DeleteRelationship(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/special-relationships/%d", id), nil, nil)
}
