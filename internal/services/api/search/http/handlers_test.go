package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "joblens/internal/platform/net/http"
	"joblens/internal/services/api/search/domain"
	searchhttp "joblens/internal/services/api/search/http"
)

type fakeService struct {
	lastSearch domain.SearchQuery
	lastFacets domain.SearchQuery
}

func (f *fakeService) Search(_ context.Context, q domain.SearchQuery) (domain.SearchResponse, error) {
	f.lastSearch = q
	min := int64(150000)
	return domain.SearchResponse{
		Jobs: []domain.Job{
			{ID: 1, Title: "Backend Engineer", Company: "Acme", WorkMode: "remote", SalaryMax: &min},
			{ID: 3, Title: "Frontend Engineer", Company: "Acme", WorkMode: "remote"},
		},
		Pagination: domain.Pagination{Total: 2, Page: q.Page, Size: q.Size, TotalPages: 1},
	}, nil
}

func (f *fakeService) Facets(_ context.Context, q domain.SearchQuery) (domain.FacetsResponse, error) {
	f.lastFacets = q
	return domain.FacetsResponse{
		Facets: domain.FacetResult{
			domain.DimWorkMode: {{Value: "remote", Count: 2}, {Value: "onsite", Count: 1}},
		},
		Total:          2,
		AppliedFilters: q.Applied(),
	}, nil
}

func newTestServer(svc *fakeService) *httptest.Server {
	mux := chi.NewRouter()
	searchhttp.Register(phttp.AdaptChi(mux), svc)
	return httptest.NewServer(mux)
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return resp.StatusCode, body
}

func TestSearchEndpoint_EnvelopeShape(t *testing.T) {
	svc := &fakeService{}
	ts := newTestServer(svc)
	defer ts.Close()

	status, body := getJSON(t, ts.URL+"/?work_mode=remote&sort=salary")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d: %v", status, body)
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object got %v", body)
	}
	jobs, ok := data["jobs"].([]any)
	if !ok || len(jobs) != 2 {
		t.Fatalf("expected 2 jobs got %v", data["jobs"])
	}
	pg, ok := data["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested pagination got %v", data)
	}
	if pg["total"] != float64(2) || pg["totalPages"] != float64(1) {
		t.Fatalf("unexpected pagination %v", pg)
	}
	if pg["page"] != float64(1) || pg["size"] != float64(20) {
		t.Fatalf("expected defaulted paging %v", pg)
	}
	if _, present := data["facets"]; present {
		t.Fatalf("facets must be omitted when not requested")
	}

	if len(svc.lastSearch.WorkModes) != 1 || svc.lastSearch.WorkModes[0] != domain.WorkModeRemote {
		t.Fatalf("work mode filter not passed through: %+v", svc.lastSearch)
	}
	if svc.lastSearch.Sort != domain.SortSalary {
		t.Fatalf("sort not passed through: %s", svc.lastSearch.Sort)
	}
}

func TestSearchEndpoint_RejectsInvalidParamsAggregated(t *testing.T) {
	ts := newTestServer(&fakeService{})
	defer ts.Close()

	status, body := getJSON(t, ts.URL+"/?page=0&size=101&sort=sideways")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %v", status, body)
	}
	msg, _ := body["error"].(string)
	for _, frag := range []string{"page", "size", "sort"} {
		if !strings.Contains(msg, frag) {
			t.Fatalf("expected %q in aggregated error %q", frag, msg)
		}
	}
}

func TestFacetsEndpoint_Shape(t *testing.T) {
	svc := &fakeService{}
	ts := newTestServer(svc)
	defer ts.Close()

	status, body := getJSON(t, ts.URL+"/facets?work_mode=remote")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d: %v", status, body)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object got %v", body)
	}
	facets, ok := data["facets"].(map[string]any)
	if !ok {
		t.Fatalf("expected facets object got %v", data)
	}
	wm, ok := facets["work_mode"].([]any)
	if !ok || len(wm) != 2 {
		t.Fatalf("expected 2 work mode values got %v", facets)
	}
	if data["total"] != float64(2) {
		t.Fatalf("expected total 2 got %v", data["total"])
	}
	applied, ok := data["appliedFilters"].(map[string]any)
	if !ok {
		t.Fatalf("expected appliedFilters got %v", data)
	}
	modes, _ := applied["workModes"].([]any)
	if len(modes) != 1 || modes[0] != "remote" {
		t.Fatalf("expected applied work mode echo got %v", applied)
	}
}

func TestFacetsEndpoint_IgnoresPagingParams(t *testing.T) {
	svc := &fakeService{}
	ts := newTestServer(svc)
	defer ts.Close()

	// page and size are not part of the facets vocabulary and are ignored
	status, _ := getJSON(t, ts.URL+"/facets?page=0&size=101")
	if status != http.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
}
