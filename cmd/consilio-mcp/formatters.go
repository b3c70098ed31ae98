package main

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/consilio/internal/allocation"
	"github.com/bobmcallan/consilio/internal/models"
)

// formatFunds formats the fund catalog as a markdown table
func formatFunds(funds []models.Fund, status string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Fund Catalog (%s)\n\n", status))

	if len(funds) == 0 {
		sb.WriteString("No funds found.\n")
		return sb.String()
	}

	sb.WriteString("| ID | Fund | ISIN | Risk | Status |\n")
	sb.WriteString("|----|------|------|------|--------|\n")
	for _, f := range funds {
		isin := f.ISINNumber
		if isin == "" {
			isin = "-"
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			f.ID, f.FundName, isin, f.RiskDisplay(), f.Status))
	}

	sb.WriteString(fmt.Sprintf("\n%d funds.\n", len(funds)))
	return sb.String()
}

// formatClientGroups formats the client group list as a markdown table.
// Review groups are marked '!', archived groups '~'.
func formatClientGroups(groups []models.ClientGroup) string {
	var sb strings.Builder

	sb.WriteString("# Client Groups\n\n")

	if len(groups) == 0 {
		sb.WriteString("No client groups found.\n")
		return sb.String()
	}

	sb.WriteString("| ID | Group | Adviser | Status | Members | Created |\n")
	sb.WriteString("|----|-------|---------|--------|---------|--------|\n")
	for _, g := range groups {
		name := g.Name
		if marker := g.Status.Marker(); marker != "" {
			name = marker + " " + name
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %d | %s |\n",
			g.ID, name, g.AdviserName, g.Status, len(g.Clients), g.CreatedDisplay()))
	}

	sb.WriteString(fmt.Sprintf("\n%d groups.\n", len(groups)))
	return sb.String()
}

// formatClientGroupDetail formats one group with members and relationships
func formatClientGroupDetail(group *models.ClientGroup, relationships []models.SpecialRelationship) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", group.Name))
	sb.WriteString(fmt.Sprintf("**Adviser:** %s\n", group.AdviserName))
	sb.WriteString(fmt.Sprintf("**Status:** %s\n", group.Status))
	sb.WriteString(fmt.Sprintf("**Created:** %s\n\n", group.CreatedDisplay()))

	sb.WriteString("## Members\n\n")
	if len(group.Clients) == 0 {
		sb.WriteString("No members recorded.\n\n")
	} else {
		sb.WriteString("| Name | Date of Birth | Email |\n")
		sb.WriteString("|------|---------------|-------|\n")
		for _, c := range group.Clients {
			email := c.Email
			if email == "" {
				email = "-"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", c.FullName(), c.DateOfBirthDisplay(), email))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Special Relationships\n\n")
	if len(relationships) == 0 {
		sb.WriteString("None recorded.\n")
	} else {
		sb.WriteString(relationshipTable(relationships))
	}

	return sb.String()
}

// formatRelationships formats a group's relationship list
func formatRelationships(relationships []models.SpecialRelationship, groupID int64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Special Relationships — Group %d\n\n", groupID))

	if len(relationships) == 0 {
		sb.WriteString("None recorded.\n")
		return sb.String()
	}

	sb.WriteString(relationshipTable(relationships))
	return sb.String()
}

func relationshipTable(relationships []models.SpecialRelationship) string {
	var sb strings.Builder

	sb.WriteString("| ID | Contact | Role | Firm | Email | Phone |\n")
	sb.WriteString("|----|---------|------|------|-------|-------|\n")
	for _, r := range relationships {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s | %s |\n",
			r.ID, r.ContactName, r.Role.Label(), dash(r.Firm), dash(r.Email), dash(r.Phone)))
	}

	return sb.String()
}

// formatDraft formats a draft snapshot: metadata, allocation table, status
func formatDraft(draft *models.TemplateDraft) string {
	var sb strings.Builder

	name := draft.Name
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("# Draft: %s\n\n", name))
	sb.WriteString(fmt.Sprintf("**Draft ID:** %s\n", draft.ID))
	if draft.GenerationName != "" {
		sb.WriteString(fmt.Sprintf("**Generation:** %s\n", draft.GenerationName))
	}
	if draft.Description != "" {
		sb.WriteString(fmt.Sprintf("**Description:** %s\n", draft.Description))
	}
	sb.WriteString("\n")

	writeAllocation(&sb, draft)
	writeStatus(&sb, draft)

	return sb.String()
}

// formatDraftReview formats the review output, linking the rendered chart
// when one was cached.
func formatDraftReview(draft *models.TemplateDraft, chartPath string) string {
	var sb strings.Builder

	name := draft.Name
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("# Draft Review: %s\n\n", name))
	sb.WriteString(fmt.Sprintf("**Draft ID:** %s\n\n", draft.ID))

	writeAllocation(&sb, draft)
	writeStatus(&sb, draft)

	if draft.WeightedRisk != nil {
		sb.WriteString(fmt.Sprintf("\n**Weighted risk:** %.2f\n", *draft.WeightedRisk))
	} else if draft.Status == string(allocation.StatusBalanced) {
		sb.WriteString("\nNo risk-rated funds in the allocation; weighted risk unavailable.\n")
	}

	if chartPath != "" {
		sb.WriteString(fmt.Sprintf("\nAllocation chart: %s\n", chartPath))
	}

	if draft.Valid {
		sb.WriteString("\nThe draft is ready to submit with submit_template.\n")
	}

	return sb.String()
}

// formatDraftList formats the open drafts as a summary table
func formatDraftList(drafts []*models.TemplateDraft) string {
	var sb strings.Builder

	sb.WriteString("# Open Template Drafts\n\n")

	if len(drafts) == 0 {
		sb.WriteString("No open drafts. Start one with new_template_draft.\n")
		return sb.String()
	}

	sb.WriteString("| Draft ID | Name | Funds | Total | Status |\n")
	sb.WriteString("|----------|------|-------|-------|--------|\n")
	for _, d := range drafts {
		name := d.Name
		if name == "" {
			name = "(unnamed)"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.2f%% | %s |\n",
			d.ID, name, len(d.Lines), d.Total, statusLabel(d.Status)))
	}

	sb.WriteString(fmt.Sprintf("\n%d drafts open.\n", len(drafts)))
	return sb.String()
}

// formatTemplates formats the template catalog
func formatTemplates(templates []models.PortfolioTemplate) string {
	var sb strings.Builder

	sb.WriteString("# Portfolio Templates\n\n")

	if len(templates) == 0 {
		sb.WriteString("No templates found.\n")
		return sb.String()
	}

	sb.WriteString("| ID | Template | Generation | Funds | Created |\n")
	sb.WriteString("|----|----------|------------|-------|--------|\n")
	for _, t := range templates {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %d | %s |\n",
			t.ID, t.Name, dash(t.GenerationName), len(t.Funds), t.CreatedDisplay()))
	}

	sb.WriteString(fmt.Sprintf("\n%d templates.\n", len(templates)))
	return sb.String()
}

// formatTemplateCreated formats the submission confirmation
func formatTemplateCreated(template *models.PortfolioTemplate) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Created template **%s** (id %d)\n\n", template.Name, template.ID))

	sb.WriteString("| Fund | Target Weighting |\n")
	sb.WriteString("|------|------------------|\n")
	for _, f := range template.Funds {
		label := f.FundName
		if label == "" {
			label = fmt.Sprintf("Fund %d", f.FundID)
		}
		sb.WriteString(fmt.Sprintf("| %s | %.2f%% |\n", label, f.TargetWeighting))
	}
	sb.WriteString(fmt.Sprintf("| **Total** | **%.2f%%** |\n", template.TotalWeighting()))

	return sb.String()
}

func writeAllocation(sb *strings.Builder, draft *models.TemplateDraft) {
	if len(draft.Lines) == 0 {
		sb.WriteString("No funds selected yet. Use set_fund_weighting to add funds.\n\n")
		return
	}

	sb.WriteString("| Fund | Weighting | Risk |\n")
	sb.WriteString("|------|-----------|------|\n")
	for _, line := range draft.Lines {
		label := line.FundName
		if label == "" {
			label = fmt.Sprintf("Fund %d", line.FundID)
		}
		raw := line.Raw
		if raw == "" {
			raw = "-"
		} else {
			raw += "%"
		}
		risk := "-"
		if line.RiskFactor != nil {
			risk = fmt.Sprintf("%.1f", *line.RiskFactor)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", label, raw, risk))
	}
	sb.WriteString(fmt.Sprintf("| **Total** | **%.2f%%** | |\n\n", draft.Total))
}

func writeStatus(sb *strings.Builder, draft *models.TemplateDraft) {
	sb.WriteString(fmt.Sprintf("**Status:** %s", statusLabel(draft.Status)))
	if draft.Status == string(allocation.StatusUnderAllocated) {
		sb.WriteString(fmt.Sprintf(" (%.2f%% remaining)", draft.Remaining))
	} else if draft.Status == string(allocation.StatusOverAllocated) {
		sb.WriteString(fmt.Sprintf(" (%.2f%% over)", -draft.Remaining))
	}
	sb.WriteString("\n")

	for _, msg := range draft.Messages {
		sb.WriteString(fmt.Sprintf("- %s\n", msg))
	}
}

// statusLabel maps an allocation status to its display label
func statusLabel(status string) string {
	switch status {
	case string(allocation.StatusBalanced):
		return "balanced ✅"
	case string(allocation.StatusOverAllocated):
		return "over-allocated 🔴"
	case string(allocation.StatusUnderAllocated):
		return "under-allocated 🟡"
	case string(allocation.StatusEmpty):
		return "empty"
	default:
		return status
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
