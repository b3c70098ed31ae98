package api

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/consilio/internal/interfaces"
	"github.com/bobmcallan/consilio/internal/models"
	tcommon "github.com/bobmcallan/consilio/tests/common"
)

// TestFundCatalog exercises the catalog read path end to end: platform
// fetch, sorting, caching, and the CSV export.
func TestFundCatalog(t *testing.T) {
	platform := tcommon.NewStubPlatform(t)
	a := tcommon.NewTestApp(t, platform)
	ctx := context.Background()

	funds, err := a.CatalogService.GetFunds(ctx, interfaces.FundListOptions{})
	require.NoError(t, err)
	require.Len(t, funds, 3, "default listing should exclude the inactive fund")

	// Sorted by name
	assert.Equal(t, "Aurora Income", funds[0].FundName)
	assert.Equal(t, "Meridian Balanced", funds[1].FundName)
	assert.Equal(t, "Zenith Growth", funds[2].FundName)

	// Second read is served from cache
	_, err = a.CatalogService.GetFunds(ctx, interfaces.FundListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, platform.FundRequestCount(), "second read should not hit the platform")

	// Force refresh bypasses the cache
	_, err = a.CatalogService.GetFunds(ctx, interfaces.FundListOptions{ForceRefresh: true})
	require.NoError(t, err)
	assert.Equal(t, 2, platform.FundRequestCount())

	// "all" includes the inactive fund
	all, err := a.CatalogService.GetFunds(ctx, interfaces.FundListOptions{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestFundCatalogCSVExport(t *testing.T) {
	platform := tcommon.NewStubPlatform(t)
	a := tcommon.NewTestApp(t, platform)

	data, err := a.CatalogService.ExportFundsCSV(context.Background(), interfaces.FundListOptions{Status: "all"})
	require.NoError(t, err)

	csv := string(data)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lines, 5, "header plus four funds")
	assert.True(t, strings.HasPrefix(lines[0], "id,fund_name,isin_number,risk_factor,status"))
	assert.Contains(t, csv, "GB00B03MLX29")
	assert.Contains(t, csv, string(models.FundStatusInactive))
}
