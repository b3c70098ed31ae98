package models

import "time"

// TemplateDraft is a snapshot of an in-progress portfolio template: the
// allocation lines as currently typed, the balance assessment, and the
// weighted risk when the draft is on target. Drafts live only in memory;
// submitting or discarding one ends its life.
type TemplateDraft struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	GenerationName string      `json:"generation_name,omitempty"`
	Description    string      `json:"description,omitempty"`
	Lines          []DraftLine `json:"lines"`
	Total          float64     `json:"total"`
	Remaining      float64     `json:"remaining"` // Negative when over-allocated
	Status         string      `json:"status"`    // empty, balanced, over_allocated, under_allocated
	Valid          bool        `json:"valid"`
	Messages       []string    `json:"messages,omitempty"`
	WeightedRisk   *float64    `json:"weighted_risk,omitempty"` // Only set when balanced and risk-rated funds carry weight
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// DraftLine is one fund's line in a draft snapshot.
type DraftLine struct {
	FundID     int64    `json:"fund_id"`
	FundName   string   `json:"fund_name,omitempty"`
	Raw        string   `json:"raw"` // Weighting as typed, e.g. "10."
	Amount     float64  `json:"amount"`
	RiskFactor *float64 `json:"risk_factor,omitempty"`
}

// DraftReview is a draft snapshot plus the rendered allocation chart.
type DraftReview struct {
	Draft    *TemplateDraft
	ChartPNG []byte // Donut chart of the allocation; nil unless requested
}
