package models

import "time"

// PortfolioTemplate is a model portfolio: a named set of funds with target
// weightings that advisers apply to client accounts. Created through the
// allocation workflow; the platform owns the stored copy.
type PortfolioTemplate struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	GenerationName string         `json:"generation_name,omitempty"` // Version label, e.g. "2026 Q3"
	Description    string         `json:"description,omitempty"`
	Funds          []TemplateFund `json:"funds"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TemplateFund is one allocation line inside a template.
type TemplateFund struct {
	FundID          int64   `json:"fund_id"`
	TargetWeighting float64 `json:"target_weighting"` // Percent of the template, e.g. 42.5
	FundName        string  `json:"fund_name,omitempty"`
}

// TemplateCreate is the payload for creating a portfolio template.
type TemplateCreate struct {
	Name           string         `json:"name"`
	GenerationName string         `json:"generation_name,omitempty"`
	Description    string         `json:"description,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"` // Optional backdate, "2006-01-02"
	Funds          []TemplateFund `json:"funds"`
}

// CreatedDisplay renders the created date as dd/mm/yyyy.
func (t *PortfolioTemplate) CreatedDisplay() string {
	if t.CreatedAt.IsZero() {
		return "-"
	}
	return t.CreatedAt.Format("02/01/2006")
}

// TotalWeighting sums the template's target weightings.
func (t *PortfolioTemplate) TotalWeighting() float64 {
	var total float64
	for _, f := range t.Funds {
		total += f.TargetWeighting
	}
	return total
}
