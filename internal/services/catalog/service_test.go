package catalog

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bobmcallan/consilio/internal/cache"
	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/interfaces"
	"github.com/bobmcallan/consilio/internal/models"
)

func risk(v float64) *float64 { return &v }

// fakeClient implements interfaces.AdvisoryClient for catalog tests.
type fakeClient struct {
	funds     []models.Fund
	fundCalls int
	fundErr   error
}

func (c *fakeClient) GetFunds(_ context.Context, status string) ([]models.Fund, error) {
	c.fundCalls++
	if c.fundErr != nil {
		return nil, c.fundErr
	}
	if status == "" {
		return c.funds, nil
	}
	var out []models.Fund
	for _, f := range c.funds {
		if string(f.Status) == status {
			out = append(out, f)
		}
	}
	return out, nil
}

func (c *fakeClient) GetClientGroups(context.Context, string) ([]models.ClientGroup, error) {
	return nil, nil
}
func (c *fakeClient) GetClientGroup(context.Context, int64) (*models.ClientGroup, error) {
	return nil, nil
}
func (c *fakeClient) CreateClientGroup(context.Context, models.ClientGroupCreate) (*models.ClientGroup, error) {
	return nil, nil
}
func (c *fakeClient) UpdateClientGroup(context.Context, int64, models.ClientGroupUpdate) (*models.ClientGroup, error) {
	return nil, nil
}
func (c *fakeClient) GetRelationships(context.Context, int64) ([]models.SpecialRelationship, error) {
	return nil, nil
}
func (c *fakeClient) CreateRelationship(context.Context, models.SpecialRelationshipCreate) (*models.SpecialRelationship, error) {
	return nil, nil
}
func (c *fakeClient) DeleteRelationship(context.Context, int64) error { return nil }
func (c *fakeClient) GetTemplates(context.Context) ([]models.PortfolioTemplate, error) {
	return nil, nil
}
func (c *fakeClient) CreateTemplate(context.Context, models.TemplateCreate) (*models.PortfolioTemplate, error) {
	return nil, nil
}

func newTestService(client *fakeClient) *Service {
	return NewService(client, cache.New(16), common.NewSilentLogger())
}

func testFunds() []models.Fund {
	return []models.Fund{
		{ID: 3, FundName: "Zenith Growth", ISINNumber: "GB00B03MLX29", RiskFactor: risk(5), Status: models.FundStatusActive},
		{ID: 1, FundName: "Aurora Income", RiskFactor: risk(2), Status: models.FundStatusActive},
		{ID: 2, FundName: "meridian balanced", Status: models.FundStatusInactive},
	}
}

func TestGetFunds_SortedByName(t *testing.T) {
	svc := newTestService(&fakeClient{funds: testFunds()})

	funds, err := svc.GetFunds(context.Background(), interfaces.FundListOptions{Status: "all"})
	if err != nil {
		t.Fatalf("GetFunds: %v", err)
	}

	if len(funds) != 3 {
		t.Fatalf("got %d funds, want 3", len(funds))
	}
	want := []string{"Aurora Income", "meridian balanced", "Zenith Growth"}
	for i, name := range want {
		if funds[i].FundName != name {
			t.Errorf("funds[%d] = %q, want %q", i, funds[i].FundName, name)
		}
	}
}

func TestGetFunds_DefaultsToActive(t *testing.T) {
	client := &fakeClient{funds: testFunds()}
	svc := newTestService(client)

	funds, err := svc.GetFunds(context.Background(), interfaces.FundListOptions{})
	if err != nil {
		t.Fatalf("GetFunds: %v", err)
	}

	for _, f := range funds {
		if f.Status != models.FundStatusActive {
			t.Errorf("inactive fund %q in default listing", f.FundName)
		}
	}
	if len(funds) != 2 {
		t.Errorf("got %d active funds, want 2", len(funds))
	}
}

func TestGetFunds_ServedFromCache(t *testing.T) {
	client := &fakeClient{funds: testFunds()}
	svc := newTestService(client)

	ctx := context.Background()
	if _, err := svc.GetFunds(ctx, interfaces.FundListOptions{}); err != nil {
		t.Fatalf("first GetFunds: %v", err)
	}
	if _, err := svc.GetFunds(ctx, interfaces.FundListOptions{}); err != nil {
		t.Fatalf("second GetFunds: %v", err)
	}

	if client.fundCalls != 1 {
		t.Errorf("fundCalls = %d, want 1 (second read served from cache)", client.fundCalls)
	}
}

func TestGetFunds_ForceRefreshBypassesCache(t *testing.T) {
	client := &fakeClient{funds: testFunds()}
	svc := newTestService(client)

	ctx := context.Background()
	svc.GetFunds(ctx, interfaces.FundListOptions{})
	svc.GetFunds(ctx, interfaces.FundListOptions{ForceRefresh: true})

	if client.fundCalls != 2 {
		t.Errorf("fundCalls = %d, want 2", client.fundCalls)
	}
}

func TestGetFund_ByID(t *testing.T) {
	svc := newTestService(&fakeClient{funds: testFunds()})

	fund, err := svc.GetFund(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetFund: %v", err)
	}
	if fund.FundName != "meridian balanced" {
		t.Errorf("FundName = %q", fund.FundName)
	}

	if _, err := svc.GetFund(context.Background(), 99); err == nil {
		t.Error("expected error for unknown fund id")
	}
}

func TestGetFunds_ClientError(t *testing.T) {
	svc := newTestService(&fakeClient{fundErr: fmt.Errorf("boom")})

	if _, err := svc.GetFunds(context.Background(), interfaces.FundListOptions{}); err == nil {
		t.Error("expected error when the platform read fails")
	}
}

func TestExportFundsCSV(t *testing.T) {
	svc := newTestService(&fakeClient{funds: testFunds()})

	data, err := svc.ExportFundsCSV(context.Background(), interfaces.FundListOptions{Status: "all"})
	if err != nil {
		t.Fatalf("ExportFundsCSV: %v", err)
	}

	csv := string(data)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d CSV lines, want header + 3 records:\n%s", len(lines), csv)
	}
	if !strings.HasPrefix(lines[0], "id,fund_name,isin_number,risk_factor,status") {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
	if !strings.Contains(csv, "GB00B03MLX29") {
		t.Error("ISIN missing from CSV export")
	}
}
