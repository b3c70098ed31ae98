// Package models defines data structures for Consilio
package models

import "fmt"

// FundStatus marks whether a fund is open to new template allocations
type FundStatus string

const (
	FundStatusActive   FundStatus = "active"
	FundStatusInactive FundStatus = "inactive"
)

// Fund represents an investable fund from the platform catalog.
// Funds are read-only here; their lifecycle is owned by the platform.
type Fund struct {
	ID         int64      `json:"id"`
	FundName   string     `json:"fund_name"`
	ISINNumber string     `json:"isin_number,omitempty"`
	RiskFactor *float64   `json:"risk_factor,omitempty"` // Absent when the fund has no published risk rating
	Status     FundStatus `json:"status"`
}

// HasRiskFactor reports whether the fund carries a published risk rating.
func (f *Fund) HasRiskFactor() bool {
	return f.RiskFactor != nil
}

// RiskDisplay renders the risk factor for tables, or a dash when absent.
func (f *Fund) RiskDisplay() string {
	if f.RiskFactor == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *f.RiskFactor)
}

// IsActive reports whether the fund accepts new allocations.
func (f *Fund) IsActive() bool {
	return f.Status == FundStatusActive
}
