package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Consilio console version and status. Use this to verify connectivity."),
	)
}

// createListFundsTool returns the list_funds tool definition
func createListFundsTool() mcp.Tool {
	return mcp.NewTool("list_funds",
		mcp.WithDescription("List the fund catalog with ISIN and risk factor, sorted by name. Active funds are the ones available for template allocations."),
		mcp.WithString("status",
			mcp.Description("Filter by fund status: 'active' (default), 'inactive', or 'all'"),
		),
		mcp.WithBoolean("force_refresh",
			mcp.Description("Bypass the cache and refetch from the platform (default: false)"),
		),
	)
}

// createListClientGroupsTool returns the list_client_groups tool definition
func createListClientGroupsTool() mcp.Tool {
	return mcp.NewTool("list_client_groups",
		mcp.WithDescription("List client groups sorted by status then name. Review groups are marked '!' and archived groups '~'."),
		mcp.WithString("status",
			mcp.Description("Filter by group status: prospect, onboarding, active, review, archived (default: all)"),
		),
		mcp.WithBoolean("force_refresh",
			mcp.Description("Bypass the cache and refetch from the platform (default: false)"),
		),
	)
}

// createGetClientGroupTool returns the get_client_group tool definition
func createGetClientGroupTool() mcp.Tool {
	return mcp.NewTool("get_client_group",
		mcp.WithDescription("Get a client group's detail: members and special relationships."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Client group id"),
		),
	)
}

// createCreateClientGroupTool returns the create_client_group tool definition
func createCreateClientGroupTool() mcp.Tool {
	return mcp.NewTool("create_client_group",
		mcp.WithDescription("Create a client group. The configured default adviser is stamped on when no adviser is given."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name (e.g. 'Harrison Family')"),
		),
		mcp.WithString("adviser_name",
			mcp.Description("Adviser responsible for the group (default: configured adviser)"),
		),
		mcp.WithString("status",
			mcp.Description("Initial status: prospect, onboarding, active, review, archived (default: prospect)"),
		),
	)
}

// createUpdateClientGroupTool returns the update_client_group tool definition
func createUpdateClientGroupTool() mcp.Tool {
	return mcp.NewTool("update_client_group",
		mcp.WithDescription("Apply a partial update to a client group. Only the fields given are changed."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Client group id"),
		),
		mcp.WithString("name",
			mcp.Description("New group name"),
		),
		mcp.WithString("adviser_name",
			mcp.Description("New adviser name"),
		),
		mcp.WithString("status",
			mcp.Description("New status: prospect, onboarding, active, review, archived"),
		),
	)
}

// createListRelationshipsTool returns the list_special_relationships tool definition
func createListRelationshipsTool() mcp.Tool {
	return mcp.NewTool("list_special_relationships",
		mcp.WithDescription("List a client group's special relationships (accountant, solicitor, POA and so on), authority roles first."),
		mcp.WithNumber("client_group_id",
			mcp.Required(),
			mcp.Description("Client group id"),
		),
	)
}

// createAddRelationshipTool returns the add_special_relationship tool definition
func createAddRelationshipTool() mcp.Tool {
	return mcp.NewTool("add_special_relationship",
		mcp.WithDescription("Attach a special relationship contact to a client group."),
		mcp.WithNumber("client_group_id",
			mcp.Required(),
			mcp.Description("Client group id"),
		),
		mcp.WithString("contact_name",
			mcp.Required(),
			mcp.Description("Contact's full name"),
		),
		mcp.WithString("role",
			mcp.Required(),
			mcp.Description("Role: power_of_attorney, accountant, solicitor, doctor, family, other"),
		),
		mcp.WithString("firm",
			mcp.Description("Contact's firm or practice"),
		),
		mcp.WithString("email",
			mcp.Description("Contact email"),
		),
		mcp.WithString("phone",
			mcp.Description("Contact phone"),
		),
		mcp.WithString("notes",
			mcp.Description("Free-form notes"),
		),
	)
}

// createRemoveRelationshipTool returns the remove_special_relationship tool definition
func createRemoveRelationshipTool() mcp.Tool {
	return mcp.NewTool("remove_special_relationship",
		mcp.WithDescription("Remove a special relationship by id."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Relationship id"),
		),
	)
}

// createNewDraftTool returns the new_template_draft tool definition
func createNewDraftTool() mcp.Tool {
	return mcp.NewTool("new_template_draft",
		mcp.WithDescription("Open a portfolio template draft with an empty allocation. Returns the draft id used by the weighting tools."),
		mcp.WithString("name",
			mcp.Description("Template name (required before submission)"),
		),
		mcp.WithString("generation_name",
			mcp.Description("Version label, e.g. '2026 Q3'"),
		),
		mcp.WithString("description",
			mcp.Description("Template description"),
		),
		mcp.WithString("created_at",
			mcp.Description("Optional backdate for submission, format 2006-01-02"),
		),
	)
}

// createUpdateDraftTool returns the update_template_draft tool definition
func createUpdateDraftTool() mcp.Tool {
	return mcp.NewTool("update_template_draft",
		mcp.WithDescription("Change a draft's name, generation, description, or backdate. Only the fields given are changed."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("Draft id from new_template_draft"),
		),
		mcp.WithString("name",
			mcp.Description("Template name"),
		),
		mcp.WithString("generation_name",
			mcp.Description("Version label"),
		),
		mcp.WithString("description",
			mcp.Description("Template description"),
		),
		mcp.WithString("created_at",
			mcp.Description("Optional backdate, format 2006-01-02"),
		),
	)
}

// createListDraftsTool returns the list_template_drafts tool definition
func createListDraftsTool() mcp.Tool {
	return mcp.NewTool("list_template_drafts",
		mcp.WithDescription("List the open template drafts with their allocation totals and balance status."),
	)
}

// createDiscardDraftTool returns the discard_template_draft tool definition
func createDiscardDraftTool() mcp.Tool {
	return mcp.NewTool("discard_template_draft",
		mcp.WithDescription("Close a template draft without submitting it. The draft's allocation is discarded."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("Draft id"),
		),
	)
}

// createSetWeightingTool returns the set_fund_weighting tool definition
func createSetWeightingTool() mcp.Tool {
	return mcp.NewTool("set_fund_weighting",
		mcp.WithDescription("Set a fund's target weighting on a draft, selecting the fund if needed. Input is sanitized to digits and one decimal point with 2 decimal places; a value over 100 is rejected and the field keeps its prior value."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("Draft id"),
		),
		mcp.WithNumber("fund_id",
			mcp.Required(),
			mcp.Description("Fund id from list_funds"),
		),
		mcp.WithString("weighting",
			mcp.Required(),
			mcp.Description("Target weighting percentage as typed, e.g. '40', '12.5', '10.'"),
		),
	)
}

// createDeselectFundTool returns the deselect_fund tool definition
func createDeselectFundTool() mcp.Tool {
	return mcp.NewTool("deselect_fund",
		mcp.WithDescription("Remove a fund from a draft's allocation. Its weighting no longer counts toward the total or the submission payload."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("Draft id"),
		),
		mcp.WithNumber("fund_id",
			mcp.Required(),
			mcp.Description("Fund id"),
		),
	)
}

// createReviewDraftTool returns the review_template_draft tool definition
func createReviewDraftTool() mcp.Tool {
	return mcp.NewTool("review_template_draft",
		mcp.WithDescription("Review a draft: allocation table, balance status, remaining percentage, and weighted risk when the allocation is on target. Optionally renders the allocation as a PNG donut chart."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("Draft id"),
		),
		mcp.WithBoolean("include_chart",
			mcp.Description("Render the allocation chart to the image cache (default: false)"),
		),
	)
}

// createSuggestDescriptionTool returns the suggest_template_description tool definition
func createSuggestDescriptionTool() mcp.Tool {
	return mcp.NewTool("suggest_template_description",
		mcp.WithDescription("Draft a template description with Gemini from the current allocation. Requires a configured Gemini API key."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("Draft id"),
		),
	)
}

// createSubmitTemplateTool returns the submit_template tool definition
func createSubmitTemplateTool() mcp.Tool {
	return mcp.NewTool("submit_template",
		mcp.WithDescription("Validate, assemble, and create the template on the platform. The allocation must total 100% with every selected fund weighted. Submission is never retried; platform errors are relayed verbatim."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("Draft id"),
		),
	)
}

// createListTemplatesTool returns the list_templates tool definition
func createListTemplatesTool() mcp.Tool {
	return mcp.NewTool("list_templates",
		mcp.WithDescription("List the platform's portfolio template catalog, newest first."),
		mcp.WithBoolean("force_refresh",
			mcp.Description("Bypass the cache and refetch from the platform (default: false)"),
		),
	)
}

// createExportFundsCSVTool returns the export_funds_csv tool definition
func createExportFundsCSVTool() mcp.Tool {
	return mcp.NewTool("export_funds_csv",
		mcp.WithDescription("Export the fund catalog as CSV for back-office reporting."),
		mcp.WithString("status",
			mcp.Description("Filter by fund status: 'active' (default), 'inactive', or 'all'"),
		),
	)
}

// createExportClientGroupsCSVTool returns the export_client_groups_csv tool definition
func createExportClientGroupsCSVTool() mcp.Tool {
	return mcp.NewTool("export_client_groups_csv",
		mcp.WithDescription("Export the client group list as CSV for back-office reporting."),
		mcp.WithString("status",
			mcp.Description("Filter by group status (default: all)"),
		),
	)
}
