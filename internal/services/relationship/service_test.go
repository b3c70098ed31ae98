package relationship

import (
	"context"
	"testing"

	"github.com/bobmcallan/consilio/internal/cache"
	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/models"
)

// fakeClient implements interfaces.AdvisoryClient for relationship tests.
type fakeClient struct {
	relationships []models.SpecialRelationship
	listCalls     int
	deletedID     int64
}

func (c *fakeClient) GetFunds(context.Context, string) ([]models.Fund, error) { return nil, nil }
func (c *fakeClient) GetClientGroups(context.Context, string) ([]models.ClientGroup, error) {
	return nil, nil
}
func (c *fakeClient) GetClientGroup(context.Context, int64) (*models.ClientGroup, error) {
	return nil, nil
}
func (c *fakeClient) CreateClientGroup(context.Context, models.ClientGroupCreate) (*models.ClientGroup, error) {
	return nil, nil
}
func (c *fakeClient) UpdateClientGroup(context.Context, int64, models.ClientGroupUpdate) (*models.ClientGroup, error) {
	return nil, nil
}

func (c *fakeClient) GetRelationships(_ context.Context, groupID int64) ([]models.SpecialRelationship, error) {
	c.listCalls++
	var out []models.SpecialRelationship
	for _, r := range c.relationships {
		if r.ClientGroupID == groupID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *fakeClient) CreateRelationship(_ context.Context, req models.SpecialRelationshipCreate) (*models.SpecialRelationship, error) {
	r := models.SpecialRelationship{
		ID:            int64(len(c.relationships) + 1),
		ClientGroupID: req.ClientGroupID,
		ContactName:   req.ContactName,
		Role:          req.Role,
		Firm:          req.Firm,
	}
	c.relationships = append(c.relationships, r)
	return &r, nil
}

func (c *fakeClient) DeleteRelationship(_ context.Context, id int64) error {
	c.deletedID = id
	return nil
}

func (c *fakeClient) GetTemplates(context.Context) ([]models.PortfolioTemplate, error) {
	return nil, nil
}
func (c *fakeClient) CreateTemplate(context.Context, models.TemplateCreate) (*models.PortfolioTemplate, error) {
	return nil, nil
}

func newTestService(client *fakeClient) *Service {
	return NewService(client, cache.New(16), common.NewSilentLogger())
}

func TestListForGroup_SortedByRoleRankThenContact(t *testing.T) {
	client := &fakeClient{relationships: []models.SpecialRelationship{
		{ID: 1, ClientGroupID: 7, ContactName: "Tomoko Abe", Role: models.RoleFamily},
		{ID: 2, ClientGroupID: 7, ContactName: "walter Singh", Role: models.RoleAccountant},
		{ID: 3, ClientGroupID: 7, ContactName: "Ana Ruiz", Role: models.RoleAccountant},
		{ID: 4, ClientGroupID: 7, ContactName: "Leo Marsh", Role: models.RolePowerOfAttorney},
		{ID: 5, ClientGroupID: 9, ContactName: "Other Group", Role: models.RoleDoctor},
	}}
	svc := newTestService(client)

	relationships, err := svc.ListForGroup(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListForGroup: %v", err)
	}

	want := []string{"Leo Marsh", "Ana Ruiz", "walter Singh", "Tomoko Abe"}
	if len(relationships) != len(want) {
		t.Fatalf("got %d relationships, want %d", len(relationships), len(want))
	}
	for i, name := range want {
		if relationships[i].ContactName != name {
			t.Errorf("relationships[%d] = %q, want %q", i, relationships[i].ContactName, name)
		}
	}
}

func TestListForGroup_CachedUntilMutation(t *testing.T) {
	client := &fakeClient{relationships: []models.SpecialRelationship{
		{ID: 1, ClientGroupID: 7, ContactName: "Leo Marsh", Role: models.RoleSolicitor},
	}}
	svc := newTestService(client)
	ctx := context.Background()

	svc.ListForGroup(ctx, 7)
	svc.ListForGroup(ctx, 7)
	if client.listCalls != 1 {
		t.Fatalf("listCalls = %d, want 1 before mutation", client.listCalls)
	}

	_, err := svc.Add(ctx, models.SpecialRelationshipCreate{
		ClientGroupID: 7,
		ContactName:   "Priya Nair",
		Role:          models.RoleAccountant,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	svc.ListForGroup(ctx, 7)
	if client.listCalls != 2 {
		t.Errorf("listCalls = %d, want 2 after add invalidated the cache", client.listCalls)
	}
}

func TestAdd_RequiresContactName(t *testing.T) {
	svc := newTestService(&fakeClient{})

	_, err := svc.Add(context.Background(), models.SpecialRelationshipCreate{
		ClientGroupID: 7,
		ContactName:   "   ",
		Role:          models.RoleAccountant,
	})
	if err == nil {
		t.Error("expected error for blank contact name")
	}
}

func TestAdd_RejectsUnknownRole(t *testing.T) {
	svc := newTestService(&fakeClient{})

	_, err := svc.Add(context.Background(), models.SpecialRelationshipCreate{
		ClientGroupID: 7,
		ContactName:   "Leo Marsh",
		Role:          models.RelationshipRole("barista"),
	})
	if err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestRemove_InvalidatesCache(t *testing.T) {
	client := &fakeClient{relationships: []models.SpecialRelationship{
		{ID: 4, ClientGroupID: 7, ContactName: "Leo Marsh", Role: models.RoleDoctor},
	}}
	svc := newTestService(client)
	ctx := context.Background()

	svc.ListForGroup(ctx, 7)

	if err := svc.Remove(ctx, 4); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if client.deletedID != 4 {
		t.Errorf("deletedID = %d, want 4", client.deletedID)
	}

	svc.ListForGroup(ctx, 7)
	if client.listCalls != 2 {
		t.Errorf("listCalls = %d, want 2 after remove invalidated the cache", client.listCalls)
	}
}
