package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/bobmcallan/consilio/internal/models"
)

// SuggestDescription drafts a template description with Gemini from the
// draft's name and allocation lines. The suggestion is returned to the
// adviser for editing; nothing is stored on the draft automatically.
func (s *Service) SuggestDescription(ctx context.Context, draftID string) (string, error) {
	if s.gemini == nil {
		return "", fmt.Errorf("description drafting unavailable: Gemini API key not configured")
	}

	d, err := s.find(draftID)
	if err != nil {
		return "", err
	}

	snap := s.snapshot(ctx, d)
	if len(snap.Lines) == 0 {
		return "", fmt.Errorf("draft has no funds selected yet")
	}

	description, err := s.gemini.GenerateContent(ctx, buildDescriptionPrompt(snap))
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	return strings.TrimSpace(description), nil
}

// buildDescriptionPrompt creates a prompt describing the draft allocation.
func buildDescriptionPrompt(snap *models.TemplateDraft) string {
	var sb strings.Builder

	name := snap.Name
	if name == "" {
		name = "an unnamed portfolio template"
	}

	sb.WriteString(fmt.Sprintf("Write a concise, professional description (2-3 sentences) for a model portfolio template named %q used by a financial advisory practice.\n\n", name))
	sb.WriteString("Fund allocation:\n")
	for _, line := range snap.Lines {
		label := line.FundName
		if label == "" {
			label = fmt.Sprintf("Fund %d", line.FundID)
		}
		if line.RiskFactor != nil {
			sb.WriteString(fmt.Sprintf("- %s: %.2f%% (risk factor %.1f)\n", label, line.Amount, *line.RiskFactor))
		} else {
			sb.WriteString(fmt.Sprintf("- %s: %.2f%%\n", label, line.Amount))
		}
	}

	if snap.WeightedRisk != nil {
		sb.WriteString(fmt.Sprintf("\nWeighted average risk factor: %.2f\n", *snap.WeightedRisk))
	}

	sb.WriteString("\nDescribe the investment mix and its intended risk profile. Do not invent performance figures. Return only the description text.")
	return sb.String()
}
