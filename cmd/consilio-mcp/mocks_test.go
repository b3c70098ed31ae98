package main

import (
	"context"
	"fmt"

	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
	"github.com/bobmcallan/consilio/internal/models"
)

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

// --- mockCatalogService ---

type mockCatalogService struct {
	getFundsFn func(ctx context.Context, opts interfaces.FundListOptions) ([]models.Fund, error)
	exportFn   func(ctx context.Context, opts interfaces.FundListOptions) ([]byte, error)
}

func (m *mockCatalogService) GetFunds(ctx context.Context, opts interfaces.FundListOptions) ([]models.Fund, error) {
	if m.getFundsFn != nil {
		return m.getFundsFn(ctx, opts)
	}
	return nil, nil
}

func (m *mockCatalogService) GetFund(ctx context.Context, fundID int64) (*models.Fund, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCatalogService) ExportFundsCSV(ctx context.Context, opts interfaces.FundListOptions) ([]byte, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, opts)
	}
	return nil, nil
}

// --- mockClientGroupService ---

type mockClientGroupService struct {
	listGroupsFn  func(ctx context.Context, opts interfaces.GroupListOptions) ([]models.ClientGroup, error)
	getGroupFn    func(ctx context.Context, id int64) (*models.ClientGroup, error)
	createGroupFn func(ctx context.Context, req models.ClientGroupCreate) (*models.ClientGroup, error)
	updateGroupFn func(ctx context.Context, id int64, req models.ClientGroupUpdate) (*models.ClientGroup, error)
}

func (m *mockClientGroupService) ListGroups(ctx context.Context, opts interfaces.GroupListOptions) ([]models.ClientGroup, error) {
	if m.listGroupsFn != nil {
		return m.listGroupsFn(ctx, opts)
	}
	return nil, nil
}

func (m *mockClientGroupService) GetGroup(ctx context.Context, id int64) (*models.ClientGroup, error) {
	if m.getGroupFn != nil {
		return m.getGroupFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockClientGroupService) CreateGroup(ctx context.Context, req models.ClientGroupCreate) (*models.ClientGroup, error) {
	if m.createGroupFn != nil {
		return m.createGroupFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockClientGroupService) UpdateGroup(ctx context.Context, id int64, req models.ClientGroupUpdate) (*models.ClientGroup, error) {
	if m.updateGroupFn != nil {
		return m.updateGroupFn(ctx, id, req)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockClientGroupService) ExportGroupsCSV(ctx context.Context, opts interfaces.GroupListOptions) ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}

// --- mockRelationshipService ---

type mockRelationshipService struct {
	listFn   func(ctx context.Context, clientGroupID int64) ([]models.SpecialRelationship, error)
	addFn    func(ctx context.Context, req models.SpecialRelationshipCreate) (*models.SpecialRelationship, error)
	removeFn func(ctx context.Context, id int64) error
}

func (m *mockRelationshipService) ListForGroup(ctx context.Context, clientGroupID int64) ([]models.SpecialRelationship, error) {
	if m.listFn != nil {
		return m.listFn(ctx, clientGroupID)
	}
	return nil, nil
}

func (m *mockRelationshipService) Add(ctx context.Context, req models.SpecialRelationshipCreate) (*models.SpecialRelationship, error) {
	if m.addFn != nil {
		return m.addFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockRelationshipService) Remove(ctx context.Context, id int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return fmt.Errorf("not implemented")
}

// --- mockTemplateService ---

type mockTemplateService struct {
	newDraftFn      func(ctx context.Context, details interfaces.DraftDetails) (*models.TemplateDraft, error)
	setWeightingFn  func(ctx context.Context, draftID string, fundID int64, input string) (*models.TemplateDraft, error)
	reviewFn        func(ctx context.Context, draftID string, opts interfaces.ReviewOptions) (*models.DraftReview, error)
	submitFn        func(ctx context.Context, draftID string) (*models.PortfolioTemplate, error)
	listTemplatesFn func(ctx context.Context, forceRefresh bool) ([]models.PortfolioTemplate, error)
}

func (m *mockTemplateService) NewDraft(ctx context.Context, details interfaces.DraftDetails) (*models.TemplateDraft, error) {
	if m.newDraftFn != nil {
		return m.newDraftFn(ctx, details)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTemplateService) GetDraft(ctx context.Context, draftID string) (*models.TemplateDraft, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTemplateService) ListDrafts(ctx context.Context) ([]*models.TemplateDraft, error) {
	return nil, nil
}

func (m *mockTemplateService) UpdateDraftDetails(ctx context.Context, draftID string, details interfaces.DraftDetails) (*models.TemplateDraft, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTemplateService) DiscardDraft(ctx context.Context, draftID string) error {
	return fmt.Errorf("not implemented")
}

func (m *mockTemplateService) SetWeighting(ctx context.Context, draftID string, fundID int64, input string) (*models.TemplateDraft, error) {
	if m.setWeightingFn != nil {
		return m.setWeightingFn(ctx, draftID, fundID, input)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTemplateService) DeselectFund(ctx context.Context, draftID string, fundID int64) (*models.TemplateDraft, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTemplateService) ReviewDraft(ctx context.Context, draftID string, opts interfaces.ReviewOptions) (*models.DraftReview, error) {
	if m.reviewFn != nil {
		return m.reviewFn(ctx, draftID, opts)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTemplateService) SuggestDescription(ctx context.Context, draftID string) (string, error) {
	return "", fmt.Errorf("not implemented")
}

func (m *mockTemplateService) SubmitDraft(ctx context.Context, draftID string) (*models.PortfolioTemplate, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, draftID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockTemplateService) ListTemplates(ctx context.Context, forceRefresh bool) ([]models.PortfolioTemplate, error) {
	if m.listTemplatesFn != nil {
		return m.listTemplatesFn(ctx, forceRefresh)
	}
	return nil, nil
}
