package catalog

import (
	"context"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/bobmcallan/consilio/internal/interfaces"
)

// fundRow is the CSV layout for a catalog export.
type fundRow struct {
	ID       int64  `csv:"id"`
	FundName string `csv:"fund_name"`
	ISIN     string `csv:"isin_number"`
	Risk     string `csv:"risk_factor"`
	Status   string `csv:"status"`
}

// ExportFundsCSV renders the catalog as CSV for back-office reporting.
func (s *Service) ExportFundsCSV(ctx context.Context, opts interfaces.FundListOptions) ([]byte, error) {
	funds, err := s.GetFunds(ctx, opts)
	if err != nil {
		return nil, err
	}

	rows := make([]fundRow, 0, len(funds))
	for _, f := range funds {
		risk := ""
		if f.RiskFactor != nil {
			risk = fmt.Sprintf("%.1f", *f.RiskFactor)
		}
		rows = append(rows, fundRow{
			ID:       f.ID,
			FundName: f.FundName,
			ISIN:     f.ISINNumber,
			Risk:     risk,
			Status:   string(f.Status),
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal funds CSV: %w", err)
	}

	return data, nil
}
