package template

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/bobmcallan/consilio/internal/models"
)

// renderAllocationChart renders a draft's allocation as a PNG donut chart,
// one slice per selected fund with a positive amount. Returns raw PNG bytes.
func renderAllocationChart(snap *models.TemplateDraft) ([]byte, error) {
	values := make([]chart.Value, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		if line.Amount <= 0 {
			continue
		}
		label := line.FundName
		if label == "" {
			label = fmt.Sprintf("Fund %d", line.FundID)
		}
		values = append(values, chart.Value{
			Value: line.Amount,
			Label: fmt.Sprintf("%s %.1f%%", label, line.Amount),
		})
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no weighted funds to chart")
	}

	title := snap.Name
	if title == "" {
		title = "Template Allocation"
	}

	graph := chart.DonutChart{
		Title:  title,
		Width:  600,
		Height: 400,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
