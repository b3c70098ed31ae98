package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
	"github.com/bobmcallan/consilio/internal/models"
)

// toolLogger tags a logger with a fresh correlation id so one tool call can
// be traced through the service and client layers.
func toolLogger(logger *common.Logger, tool string) *common.Logger {
	l := logger.WithCorrelationId(uuid.NewString())
	l.Debug().Str("tool", tool).Msg("Tool call")
	return l
}

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Consilio Console\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleListFunds implements the list_funds tool
func handleListFunds(catalogService interfaces.CatalogService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "list_funds")

		status := request.GetString("status", "active")
		forceRefresh := request.GetBool("force_refresh", false)

		funds, err := catalogService.GetFunds(ctx, interfaces.FundListOptions{
			Status:       status,
			ForceRefresh: forceRefresh,
		})
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("List funds failed")
			return errorResult(fmt.Sprintf("Error listing funds: %v", err)), nil
		}

		return textResult(formatFunds(funds, status)), nil
	}
}

// handleListClientGroups implements the list_client_groups tool
func handleListClientGroups(groupService interfaces.ClientGroupService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "list_client_groups")

		status := request.GetString("status", "")
		forceRefresh := request.GetBool("force_refresh", false)

		groups, err := groupService.ListGroups(ctx, interfaces.GroupListOptions{
			Status:       status,
			ForceRefresh: forceRefresh,
		})
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("List client groups failed")
			return errorResult(fmt.Sprintf("Error listing client groups: %v", err)), nil
		}

		return textResult(formatClientGroups(groups)), nil
	}
}

// handleGetClientGroup implements the get_client_group tool
func handleGetClientGroup(groupService interfaces.ClientGroupService, relationshipService interfaces.RelationshipService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "get_client_group")

		id := int64(request.GetInt("id", 0))
		if id <= 0 {
			return errorResult("Error: id parameter is required"), nil
		}

		group, err := groupService.GetGroup(ctx, id)
		if err != nil {
			log.Error().Err(err).Int64("group", id).Msg("Get client group failed")
			return errorResult(fmt.Sprintf("Error getting client group: %v", err)), nil
		}

		// Relationships are part of the group detail view; a failed read
		// degrades the detail rather than failing it
		relationships, err := relationshipService.ListForGroup(ctx, id)
		if err != nil {
			log.Warn().Err(err).Int64("group", id).Msg("Relationship list unavailable for group detail")
			relationships = nil
		}

		return textResult(formatClientGroupDetail(group, relationships)), nil
	}
}

// handleCreateClientGroup implements the create_client_group tool
func handleCreateClientGroup(groupService interfaces.ClientGroupService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "create_client_group")

		name, err := request.RequireString("name")
		if err != nil || name == "" {
			return errorResult("Error: name parameter is required"), nil
		}

		req := models.ClientGroupCreate{
			Name:        name,
			AdviserName: request.GetString("adviser_name", ""),
			Status:      models.GroupStatus(request.GetString("status", "")),
		}

		group, err := groupService.CreateGroup(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("name", name).Msg("Create client group failed")
			return errorResult(fmt.Sprintf("Error creating client group: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Created client group **%s** (id %d, adviser %s, status %s)",
			group.Name, group.ID, group.AdviserName, group.Status)), nil
	}
}

// handleUpdateClientGroup implements the update_client_group tool
func handleUpdateClientGroup(groupService interfaces.ClientGroupService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "update_client_group")

		id := int64(request.GetInt("id", 0))
		if id <= 0 {
			return errorResult("Error: id parameter is required"), nil
		}

		var req models.ClientGroupUpdate
		if name := request.GetString("name", ""); name != "" {
			req.Name = &name
		}
		if adviser := request.GetString("adviser_name", ""); adviser != "" {
			req.AdviserName = &adviser
		}
		if status := request.GetString("status", ""); status != "" {
			groupStatus := models.GroupStatus(status)
			req.Status = &groupStatus
		}

		if req.Name == nil && req.AdviserName == nil && req.Status == nil {
			return errorResult("Error: nothing to update; give name, adviser_name, or status"), nil
		}

		group, err := groupService.UpdateGroup(ctx, id, req)
		if err != nil {
			log.Error().Err(err).Int64("group", id).Msg("Update client group failed")
			return errorResult(fmt.Sprintf("Error updating client group: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Updated client group **%s** (id %d, adviser %s, status %s)",
			group.Name, group.ID, group.AdviserName, group.Status)), nil
	}
}

// handleListRelationships implements the list_special_relationships tool
func handleListRelationships(relationshipService interfaces.RelationshipService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "list_special_relationships")

		groupID := int64(request.GetInt("client_group_id", 0))
		if groupID <= 0 {
			return errorResult("Error: client_group_id parameter is required"), nil
		}

		relationships, err := relationshipService.ListForGroup(ctx, groupID)
		if err != nil {
			log.Error().Err(err).Int64("group", groupID).Msg("List relationships failed")
			return errorResult(fmt.Sprintf("Error listing relationships: %v", err)), nil
		}

		return textResult(formatRelationships(relationships, groupID)), nil
	}
}

// handleAddRelationship implements the add_special_relationship tool
func handleAddRelationship(relationshipService interfaces.RelationshipService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "add_special_relationship")

		groupID := int64(request.GetInt("client_group_id", 0))
		if groupID <= 0 {
			return errorResult("Error: client_group_id parameter is required"), nil
		}
		contactName, err := request.RequireString("contact_name")
		if err != nil || contactName == "" {
			return errorResult("Error: contact_name parameter is required"), nil
		}
		role, err := request.RequireString("role")
		if err != nil || role == "" {
			return errorResult("Error: role parameter is required"), nil
		}

		relationship, err := relationshipService.Add(ctx, models.SpecialRelationshipCreate{
			ClientGroupID: groupID,
			ContactName:   contactName,
			Role:          models.RelationshipRole(role),
			Firm:          request.GetString("firm", ""),
			Email:         request.GetString("email", ""),
			Phone:         request.GetString("phone", ""),
			Notes:         request.GetString("notes", ""),
		})
		if err != nil {
			log.Error().Err(err).Int64("group", groupID).Msg("Add relationship failed")
			return errorResult(fmt.Sprintf("Error adding relationship: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Added %s **%s** to client group %d (relationship id %d)",
			relationship.Role.Label(), relationship.ContactName, groupID, relationship.ID)), nil
	}
}

// handleRemoveRelationship implements the remove_special_relationship tool
func handleRemoveRelationship(relationshipService interfaces.RelationshipService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "remove_special_relationship")

		id := int64(request.GetInt("id", 0))
		if id <= 0 {
			return errorResult("Error: id parameter is required"), nil
		}

		if err := relationshipService.Remove(ctx, id); err != nil {
			log.Error().Err(err).Int64("relationship", id).Msg("Remove relationship failed")
			return errorResult(fmt.Sprintf("Error removing relationship: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Removed relationship %d", id)), nil
	}
}

// draftDetailsFromRequest reads the optional draft metadata arguments.
func draftDetailsFromRequest(request mcp.CallToolRequest) interfaces.DraftDetails {
	var details interfaces.DraftDetails
	if name := request.GetString("name", ""); name != "" {
		details.Name = &name
	}
	if generation := request.GetString("generation_name", ""); generation != "" {
		details.GenerationName = &generation
	}
	if description := request.GetString("description", ""); description != "" {
		details.Description = &description
	}
	if createdAt := request.GetString("created_at", ""); createdAt != "" {
		details.CreatedAt = &createdAt
	}
	return details
}

// handleNewDraft implements the new_template_draft tool
func handleNewDraft(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "new_template_draft")

		draft, err := templateService.NewDraft(ctx, draftDetailsFromRequest(request))
		if err != nil {
			log.Error().Err(err).Msg("New draft failed")
			return errorResult(fmt.Sprintf("Error opening draft: %v", err)), nil
		}

		return textResult(formatDraft(draft)), nil
	}
}

// handleUpdateDraft implements the update_template_draft tool
func handleUpdateDraft(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "update_template_draft")

		draftID, err := request.RequireString("draft_id")
		if err != nil || draftID == "" {
			return errorResult("Error: draft_id parameter is required"), nil
		}

		draft, err := templateService.UpdateDraftDetails(ctx, draftID, draftDetailsFromRequest(request))
		if err != nil {
			log.Error().Err(err).Str("draft", draftID).Msg("Update draft failed")
			return errorResult(fmt.Sprintf("Error updating draft: %v", err)), nil
		}

		return textResult(formatDraft(draft)), nil
	}
}

// handleListDrafts implements the list_template_drafts tool
func handleListDrafts(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "list_template_drafts")

		drafts, err := templateService.ListDrafts(ctx)
		if err != nil {
			log.Error().Err(err).Msg("List drafts failed")
			return errorResult(fmt.Sprintf("Error listing drafts: %v", err)), nil
		}

		return textResult(formatDraftList(drafts)), nil
	}
}

// handleDiscardDraft implements the discard_template_draft tool
func handleDiscardDraft(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "discard_template_draft")

		draftID, err := request.RequireString("draft_id")
		if err != nil || draftID == "" {
			return errorResult("Error: draft_id parameter is required"), nil
		}

		if err := templateService.DiscardDraft(ctx, draftID); err != nil {
			log.Error().Err(err).Str("draft", draftID).Msg("Discard draft failed")
			return errorResult(fmt.Sprintf("Error discarding draft: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Discarded draft %s", draftID)), nil
	}
}

// handleSetWeighting implements the set_fund_weighting tool
func handleSetWeighting(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "set_fund_weighting")

		draftID, err := request.RequireString("draft_id")
		if err != nil || draftID == "" {
			return errorResult("Error: draft_id parameter is required"), nil
		}
		fundID := int64(request.GetInt("fund_id", 0))
		if fundID <= 0 {
			return errorResult("Error: fund_id parameter is required"), nil
		}
		weighting, err := request.RequireString("weighting")
		if err != nil {
			return errorResult("Error: weighting parameter is required"), nil
		}

		draft, err := templateService.SetWeighting(ctx, draftID, fundID, weighting)
		if err != nil {
			log.Error().Err(err).Str("draft", draftID).Int64("fund", fundID).Msg("Set weighting failed")
			return errorResult(fmt.Sprintf("Error setting weighting: %v", err)), nil
		}

		return textResult(formatDraft(draft)), nil
	}
}

// handleDeselectFund implements the deselect_fund tool
func handleDeselectFund(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "deselect_fund")

		draftID, err := request.RequireString("draft_id")
		if err != nil || draftID == "" {
			return errorResult("Error: draft_id parameter is required"), nil
		}
		fundID := int64(request.GetInt("fund_id", 0))
		if fundID <= 0 {
			return errorResult("Error: fund_id parameter is required"), nil
		}

		draft, err := templateService.DeselectFund(ctx, draftID, fundID)
		if err != nil {
			log.Error().Err(err).Str("draft", draftID).Int64("fund", fundID).Msg("Deselect fund failed")
			return errorResult(fmt.Sprintf("Error deselecting fund: %v", err)), nil
		}

		return textResult(formatDraft(draft)), nil
	}
}

// handleReviewDraft implements the review_template_draft tool
func handleReviewDraft(templateService interfaces.TemplateService, imageCache *ImageCache, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "review_template_draft")

		draftID, err := request.RequireString("draft_id")
		if err != nil || draftID == "" {
			return errorResult("Error: draft_id parameter is required"), nil
		}
		includeChart := request.GetBool("include_chart", false)

		review, err := templateService.ReviewDraft(ctx, draftID, interfaces.ReviewOptions{
			IncludeChart: includeChart,
		})
		if err != nil {
			log.Error().Err(err).Str("draft", draftID).Msg("Review draft failed")
			return errorResult(fmt.Sprintf("Error reviewing draft: %v", err)), nil
		}

		chartPath := ""
		if len(review.ChartPNG) > 0 {
			path, err := imageCache.Put(ImageName(draftID), review.ChartPNG)
			if err != nil {
				log.Warn().Err(err).Str("draft", draftID).Msg("Chart image cache write failed")
			} else {
				chartPath = path
			}
		}

		return textResult(formatDraftReview(review.Draft, chartPath)), nil
	}
}

// handleSuggestDescription implements the suggest_template_description tool
func handleSuggestDescription(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "suggest_template_description")

		draftID, err := request.RequireString("draft_id")
		if err != nil || draftID == "" {
			return errorResult("Error: draft_id parameter is required"), nil
		}

		description, err := templateService.SuggestDescription(ctx, draftID)
		if err != nil {
			log.Error().Err(err).Str("draft", draftID).Msg("Suggest description failed")
			return errorResult(fmt.Sprintf("Error drafting description: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Suggested description:\n\n%s\n\nUse update_template_draft to apply it.", description)), nil
	}
}

// handleSubmitTemplate implements the submit_template tool
func handleSubmitTemplate(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "submit_template")

		draftID, err := request.RequireString("draft_id")
		if err != nil || draftID == "" {
			return errorResult("Error: draft_id parameter is required"), nil
		}

		template, err := templateService.SubmitDraft(ctx, draftID)
		if err != nil {
			log.Error().Err(err).Str("draft", draftID).Msg("Submit template failed")
			return errorResult(fmt.Sprintf("Submission failed: %v", err)), nil
		}

		return textResult(formatTemplateCreated(template)), nil
	}
}

// handleListTemplates implements the list_templates tool
func handleListTemplates(templateService interfaces.TemplateService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "list_templates")

		forceRefresh := request.GetBool("force_refresh", false)

		templates, err := templateService.ListTemplates(ctx, forceRefresh)
		if err != nil {
			log.Error().Err(err).Msg("List templates failed")
			return errorResult(fmt.Sprintf("Error listing templates: %v", err)), nil
		}

		return textResult(formatTemplates(templates)), nil
	}
}

// handleExportFundsCSV implements the export_funds_csv tool
func handleExportFundsCSV(catalogService interfaces.CatalogService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "export_funds_csv")

		status := request.GetString("status", "active")

		data, err := catalogService.ExportFundsCSV(ctx, interfaces.FundListOptions{Status: status})
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("Fund CSV export failed")
			return errorResult(fmt.Sprintf("Error exporting funds: %v", err)), nil
		}

		return textResult(fmt.Sprintf("```csv\n%s```", string(data))), nil
	}
}

// handleExportClientGroupsCSV implements the export_client_groups_csv tool
func handleExportClientGroupsCSV(groupService interfaces.ClientGroupService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := toolLogger(logger, "export_client_groups_csv")

		status := request.GetString("status", "")

		data, err := groupService.ExportGroupsCSV(ctx, interfaces.GroupListOptions{Status: status})
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("Group CSV export failed")
			return errorResult(fmt.Sprintf("Error exporting client groups: %v", err)), nil
		}

		return textResult(fmt.Sprintf("```csv\n%s```", string(data))), nil
	}
}

// Helper functions

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
