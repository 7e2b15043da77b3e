package http_test

import (
	stdctx "context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "joblens/internal/platform/net/http"
	metahttp "joblens/internal/services/api/meta/http"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

func newMetaServer(d metahttp.Deps) *httptest.Server {
	mux := chi.NewRouter()
	metahttp.Register(phttp.AdaptChi(mux), d)
	return httptest.NewServer(mux)
}

func getBody(t *testing.T, url string) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	var env map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, _ := env["data"].(map[string]any)
	return data
}

func TestHealth(t *testing.T) {
	ts := newMetaServer(metahttp.Deps{ServiceName: "joblens-api", StartedAt: time.Now()})
	defer ts.Close()

	data := getBody(t, ts.URL+"/health")
	if data["ok"] != true || data["service"] != "joblens-api" {
		t.Fatalf("unexpected health payload %v", data)
	}
}

func TestReady_AllBackends(t *testing.T) {
	ts := newMetaServer(metahttp.Deps{
		ServiceName: "joblens-api",
		StartedAt:   time.Now(),
		PG:          pinger{},
		CH:          pinger{},
		RDS:         pinger{},
	})
	defer ts.Close()

	data := getBody(t, ts.URL+"/ready")
	if data["status"] != "ok" {
		t.Fatalf("expected ok got %v", data)
	}
	checks, _ := data["checks"].([]any)
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks got %v", checks)
	}
}

func TestReady_SkippedBackendsStayOK(t *testing.T) {
	ts := newMetaServer(metahttp.Deps{ServiceName: "joblens-api", StartedAt: time.Now(), PG: pinger{}})
	defer ts.Close()

	data := getBody(t, ts.URL+"/ready")
	if data["status"] != "ok" {
		t.Fatalf("nil optional backends must not degrade readiness, got %v", data)
	}
}

func TestReady_FailedBackendFails(t *testing.T) {
	ts := newMetaServer(metahttp.Deps{
		ServiceName: "joblens-api",
		StartedAt:   time.Now(),
		PG:          pinger{err: stdctx.DeadlineExceeded},
	})
	defer ts.Close()

	data := getBody(t, ts.URL+"/ready")
	if data["status"] != "fail" {
		t.Fatalf("expected fail got %v", data)
	}
}

func TestVersionAndService(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	ts := newMetaServer(metahttp.Deps{ServiceName: "joblens-api", StartedAt: started})
	defer ts.Close()

	v := getBody(t, ts.URL+"/version")
	if v["service"] != "joblens-api" {
		t.Fatalf("unexpected version payload %v", v)
	}

	svc := getBody(t, ts.URL+"/service")
	if svc["name"] != "joblens-api" {
		t.Fatalf("unexpected service payload %v", svc)
	}
	if up, _ := svc["uptime"].(float64); up < 89 {
		t.Fatalf("expected uptime around 90s got %v", svc["uptime"])
	}
}
