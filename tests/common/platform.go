// Package common provides shared test infrastructure: an in-memory stub of
// the advisory platform API and an app factory pointed at it.
package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bobmcallan/consilio/internal/app"
	"github.com/bobmcallan/consilio/internal/common"
	"github.com/bobmcallan/consilio/internal/models"
)

// StubPlatform is an httptest-backed advisory platform with mutable
// fixtures. Handlers mimic the platform's JSON shapes, including its
// {"detail": ...} and {"field": [...]} error bodies.
type StubPlatform struct {
	mu sync.Mutex

	Funds         []models.Fund
	Groups        []models.ClientGroup
	Relationships []models.SpecialRelationship
	Templates     []models.PortfolioTemplate

	// Request counters, for cache behavior assertions
	FundRequests     int
	GroupRequests    int
	TemplateRequests int

	// When set, template creation fails with this detail at 400
	RejectTemplateDetail string

	nextID int64
	server *httptest.Server
}

// NewStubPlatform starts a stub platform preloaded with the standard
// fixture set.
func NewStubPlatform(t *testing.T) *StubPlatform {
	t.Helper()

	p := &StubPlatform{nextID: 1000}
	p.loadFixtures()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/funds", p.handleFunds)
	mux.HandleFunc("/api/client-groups", p.handleGroups)
	mux.HandleFunc("/api/client-groups/", p.handleGroupDetail)
	mux.HandleFunc("/api/special-relationships", p.handleRelationships)
	mux.HandleFunc("/api/special-relationships/", p.handleRelationshipDetail)
	mux.HandleFunc("/api/available-portfolios", p.handleTemplates)

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)

	return p
}

// URL returns the stub's API base URL.
func (p *StubPlatform) URL() string {
	return p.server.URL + "/api"
}

// SetRejectTemplateDetail makes template creation fail with the given
// detail at 400, or succeed again when detail is empty.
func (p *StubPlatform) SetRejectTemplateDetail(detail string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.RejectTemplateDetail = detail
}

// FundRequestCount returns how many fund list reads the stub has served.
func (p *StubPlatform) FundRequestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.FundRequests
}

func risk(v float64) *float64 { return &v }

func (p *StubPlatform) loadFixtures() {
	p.Funds = []models.Fund{
		{ID: 1, FundName: "Aurora Income", ISINNumber: "GB00B03MLX29", RiskFactor: risk(2), Status: models.FundStatusActive},
		{ID: 2, FundName: "Meridian Balanced", ISINNumber: "IE00B4L5Y983", RiskFactor: risk(4), Status: models.FundStatusActive},
		{ID: 3, FundName: "Zenith Growth", ISINNumber: "LU0908500753", RiskFactor: risk(6), Status: models.FundStatusActive},
		{ID: 4, FundName: "Heritage Legacy", Status: models.FundStatusInactive},
	}
	p.Groups = []models.ClientGroup{
		{
			ID: 1, Name: "Bennett Family", AdviserName: "J. Whitfield",
			Status: models.GroupStatusActive,
			Clients: []models.Client{
				{ID: 1, FirstName: "Ruth", LastName: "Bennett", DateOfBirth: "1962-07-04", Email: "ruth@example.com"},
				{ID: 2, FirstName: "Alan", LastName: "Bennett", DateOfBirth: "1960-01-19"},
			},
			CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, Name: "Calloway SMSF", AdviserName: "M. Patel",
			Status:    models.GroupStatusReview,
			CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	p.Relationships = []models.SpecialRelationship{
		{ID: 1, ClientGroupID: 1, ContactName: "Leo Marsh", Role: models.RoleAccountant, Firm: "Marsh & Co"},
		{ID: 2, ClientGroupID: 1, ContactName: "Priya Nair", Role: models.RolePowerOfAttorney},
	}
	p.Templates = []models.PortfolioTemplate{
		{
			ID: 100, Name: "Income 2025", GenerationName: "2025 Q1",
			Funds:     []models.TemplateFund{{FundID: 1, TargetWeighting: 100}},
			CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (p *StubPlatform) handleFunds(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.FundRequests++

	status := r.URL.Query().Get("status")
	out := make([]models.Fund, 0, len(p.Funds))
	for _, f := range p.Funds {
		if status == "" || string(f.Status) == status {
			out = append(out, f)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (p *StubPlatform) handleGroups(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		p.GroupRequests++
		status := r.URL.Query().Get("status")
		out := make([]models.ClientGroup, 0, len(p.Groups))
		for _, g := range p.Groups {
			if status == "" || string(g.Status) == status {
				out = append(out, g)
			}
		}
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var req models.ClientGroupCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if req.Name == "" {
			writeJSON(w, http.StatusBadRequest, map[string][]string{"name": {"This field is required."}})
			return
		}
		status := req.Status
		if status == "" {
			status = models.GroupStatusProspect
		}
		p.nextID++
		group := models.ClientGroup{
			ID: p.nextID, Name: req.Name, AdviserName: req.AdviserName,
			Status: status, Clients: req.Clients, CreatedAt: time.Now().UTC(),
		}
		p.Groups = append(p.Groups, group)
		writeJSON(w, http.StatusCreated, group)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (p *StubPlatform) handleGroupDetail(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/client-groups/"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	idx := -1
	for i := range p.Groups {
		if p.Groups[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, p.Groups[idx])

	case http.MethodPatch:
		var req models.ClientGroupUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if req.Name != nil {
			p.Groups[idx].Name = *req.Name
		}
		if req.AdviserName != nil {
			p.Groups[idx].AdviserName = *req.AdviserName
		}
		if req.Status != nil {
			p.Groups[idx].Status = *req.Status
		}
		writeJSON(w, http.StatusOK, p.Groups[idx])

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (p *StubPlatform) handleRelationships(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		groupID, _ := strconv.ParseInt(r.URL.Query().Get("client_group"), 10, 64)
		out := make([]models.SpecialRelationship, 0, len(p.Relationships))
		for _, rel := range p.Relationships {
			if rel.ClientGroupID == groupID {
				out = append(out, rel)
			}
		}
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var req models.SpecialRelationshipCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "malformed request body")
			return
		}
		p.nextID++
		rel := models.SpecialRelationship{
			ID: p.nextID, ClientGroupID: req.ClientGroupID,
			ContactName: req.ContactName, Role: req.Role,
			Firm: req.Firm, Email: req.Email, Phone: req.Phone, Notes: req.Notes,
			CreatedAt: time.Now().UTC(),
		}
		p.Relationships = append(p.Relationships, rel)
		writeJSON(w, http.StatusCreated, rel)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (p *StubPlatform) handleRelationshipDetail(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r.Method != http.MethodDelete {
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/special-relationships/"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	for i := range p.Relationships {
		if p.Relationships[i].ID == id {
			p.Relationships = append(p.Relationships[:i], p.Relationships[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (p *StubPlatform) handleTemplates(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		p.TemplateRequests++
		writeJSON(w, http.StatusOK, p.Templates)

	case http.MethodPost:
		if p.RejectTemplateDetail != "" {
			writeDetail(w, http.StatusBadRequest, p.RejectTemplateDetail)
			return
		}
		var req models.TemplateCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "malformed request body")
			return
		}
		if req.Name == "" {
			writeJSON(w, http.StatusBadRequest, map[string][]string{"name": {"This field is required."}})
			return
		}
		p.nextID++
		template := models.PortfolioTemplate{
			ID: p.nextID, Name: req.Name,
			GenerationName: req.GenerationName, Description: req.Description,
			Funds:     req.Funds,
			CreatedAt: time.Now().UTC(),
		}
		if req.CreatedAt != "" {
			if d, err := time.Parse("2006-01-02", req.CreatedAt); err == nil {
				template.CreatedAt = d
			}
		}
		p.Templates = append(p.Templates, template)
		writeJSON(w, http.StatusCreated, template)

	default:
		writeDetail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// NewTestApp wires a full application stack against the stub platform.
func NewTestApp(t *testing.T, platform *StubPlatform) *app.App {
	t.Helper()

	config := common.NewDefaultConfig()
	config.Platform.BaseURL = platform.URL()
	config.Platform.APIKey = "test-key"
	config.Platform.RateLimit = 1000
	config.DefaultAdviser = "J. Whitfield"
	config.Cache.ImageDir = t.TempDir()

	a, err := app.NewAppWithConfig(config, common.NewSilentLogger(), time.Now())
	if err != nil {
		t.Fatalf("NewAppWithConfig failed: %v", err)
	}
	t.Cleanup(a.Close)

	return a
}
