// Package relationship provides special relationship management services
package relationship

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
var _ interfaces.RelationshipService = (*Service)(nil)

// Service implements RelationshipService
type Service struct {
	client interfaces.AdvisoryClient
	cache  *cache.ResourceCache
	logger *common.Logger
}

// NewService creates a new relationship service
func NewService(client interfaces.AdvisoryClient, c *cache.ResourceCache, logger *common.Logger) *Service {
	return &Service{
		client: client,
		cache:  c,
		logger: logger,
	}
}

// ListForGroup returns a group's special relationships sorted by role rank
// (authority roles first) then contact name.
func (s *Service) ListForGroup(ctx context.Context, clientGroupID int64) ([]models.SpecialRelationship, error) {
	key := cache.Key("relationships", "group", fmt.Sprintf("%d", clientGroupID))
	if cached, ok := s.cache.Get(key); ok {
		if relationships, ok := cached.([]models.SpecialRelationship); ok {
			return relationships, nil
		}
	}

	relationships, err := s.client.GetRelationships(ctx, clientGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get relationships for group %d: %w", clientGroupID, err)
	}

	sort.Slice(relationships, func(i, j int) bool {
		ri, rj := relationships[i].Role.Rank(), relationships[j].Role.Rank()
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(relationships[i].ContactName) < strings.ToLower(relationships[j].ContactName)
	})

	s.cache.Set(key, relationships, common.FreshnessRelationships)
	return relationships, nil
}

// Add attaches a special relationship to a client group.
func (s *Service) Add(ctx context.Context, req models.SpecialRelationshipCreate) (*models.SpecialRelationship, error) {
	if strings.TrimSpace(req.ContactName) == "" {
		return nil, fmt.Errorf("contact name is required")
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("unknown relationship role %q", req.Role)
	}

	relationship, err := s.client.CreateRelationship(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", err)
	}

	s.cache.InvalidatePrefix("relationships")

	s.logger.Info().
		Int64("group", req.ClientGroupID).
		Str("contact", req.ContactName).
		Str("role", string(req.Role)).
		Msg("Special relationship added")

	return relationship, nil
}

// Remove deletes a special relationship.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.client.DeleteRelationship(ctx, id); err != nil {
		return fmt.Errorf("failed to delete relationship %d: %w", id, err)
	}

	s.cache.InvalidatePrefix("relationships")

	s.logger.Info().Int64("relationship", id).Msg("Special relationship removed")
	return nil
}
