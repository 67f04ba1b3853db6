package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"bemviver/internal/memory"
	"bemviver/internal/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := memory.New()
	tracker := services.NewTracker(st)
	reporter := services.NewReporter(st, t.TempDir())
	srv := NewServer(":0", st, tracker, reporter, Options{
		SummaryCacheSize: 8,
		SummaryCacheTTL:  time.Minute,
	})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func postForm(srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func saveTestProfile(t *testing.T, srv *Server) {
	t.Helper()
	rr := postForm(srv, "/profile", url.Values{
		"name":   {"Maria da Silva"},
		"age":    {"70"},
		"weight": {"68.5"},
		"height": {"1.60"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("save profile status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(t)

	rr := get(srv, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Bem Viver") {
		t.Fatalf("index body missing heading")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := get(srv, path)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestSaveProfileValidationAndSuccess(t *testing.T) {
	srv := newTestServer(t)

	// Wrong method
	rr := get(srv, "/profile")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Missing required fields
	rr = postForm(srv, "/profile", url.Values{"name": {"Maria"}})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	// Non-numeric age
	rr = postForm(srv, "/profile", url.Values{
		"name": {"Maria"}, "age": {"setenta"}, "weight": {"68"}, "height": {"1.60"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-numeric age, got %d", rr.Code)
	}

	// Success, comma decimals accepted
	rr = postForm(srv, "/profile", url.Values{
		"name":         {"Maria da Silva"},
		"age":          {"70"},
		"weight":       {"68,5"},
		"height":       {"1,60"},
		"health_notes": {"pressão alta"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "sucesso") {
		t.Fatalf("expected success message, got %s", rr.Body.String())
	}

	// Partial now renders the saved card
	rr = get(srv, "/ui/profile")
	if rr.Code != http.StatusOK {
		t.Fatalf("profile partial status=%d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Maria da Silva") || !strings.Contains(body, "1.60") {
		t.Fatalf("profile card missing data: %s", body)
	}
}

func TestSaveProfileTwiceKeepsSingleProfile(t *testing.T) {
	srv := newTestServer(t)

	saveTestProfile(t, srv)

	rr := postForm(srv, "/profile", url.Values{
		"name": {"Maria Atualizada"}, "age": {"71"}, "weight": {"67"}, "height": {"1.60"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("second save status=%d", rr.Code)
	}

	rr = get(srv, "/ui/profile")
	body := rr.Body.String()
	if !strings.Contains(body, "Maria Atualizada") {
		t.Fatalf("expected updated name, got %s", body)
	}
	if strings.Contains(body, "Maria da Silva") {
		t.Fatalf("old profile still rendered: %s", body)
	}
}

func TestRegisterActivityRequiresProfile(t *testing.T) {
	srv := newTestServer(t)

	rr := postForm(srv, "/activities", url.Values{
		"type": {"caminhada"}, "duration": {"30"}, "intensity": {"leve"}, "date": {"2024-06-12"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Cadastre seu perfil") {
		t.Fatalf("expected profile-required message, got %s", rr.Body.String())
	}
}

func TestRegisterActivityValidation(t *testing.T) {
	srv := newTestServer(t)
	saveTestProfile(t, srv)

	// Missing type
	rr := postForm(srv, "/activities", url.Values{
		"duration": {"30"}, "intensity": {"leve"}, "date": {"2024-06-12"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing type, got %d", rr.Code)
	}

	// Zero duration
	rr = postForm(srv, "/activities", url.Values{
		"type": {"caminhada"}, "duration": {"0"}, "intensity": {"leve"}, "date": {"2024-06-12"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for zero duration, got %d", rr.Code)
	}

	// Unknown intensity
	rr = postForm(srv, "/activities", url.Values{
		"type": {"caminhada"}, "duration": {"30"}, "intensity": {"extrema"}, "date": {"2024-06-12"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown intensity, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Intensidade") {
		t.Fatalf("expected intensity message, got %s", rr.Body.String())
	}
}

func TestWeeklySummaryReflectsActivities(t *testing.T) {
	srv := newTestServer(t)
	saveTestProfile(t, srv)

	// Prime the cache with the empty week first.
	rr := get(srv, "/ui/weekly-summary?date=2024-06-12")
	if rr.Code != http.StatusOK {
		t.Fatalf("summary status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "2024-06-10") || !strings.Contains(rr.Body.String(), "2024-06-16") {
		t.Fatalf("summary missing week range: %s", rr.Body.String())
	}

	for _, form := range []url.Values{
		{"type": {"caminhada"}, "duration": {"30"}, "intensity": {"leve"}, "date": {"2024-06-12"}},
		{"type": {"alongamento"}, "duration": {"15"}, "intensity": {"leve"}, "date": {"2024-06-12"}},
		{"type": {"hidroginástica"}, "duration": {"20"}, "intensity": {"moderada"}, "date": {"2024-06-14"}},
	} {
		rr := postForm(srv, "/activities", form)
		if rr.Code != http.StatusOK {
			t.Fatalf("register activity status=%d body=%s", rr.Code, rr.Body.String())
		}
	}

	// Registration invalidated the cached week, so totals are fresh.
	rr = get(srv, "/ui/weekly-summary?date=2024-06-12")
	body := rr.Body.String()
	if !strings.Contains(body, ">65<") {
		t.Fatalf("expected total 65 minutes, got %s", body)
	}
	if !strings.Contains(body, ">2<") {
		t.Fatalf("expected 2 active days, got %s", body)
	}
}

func TestActivityListPartial(t *testing.T) {
	srv := newTestServer(t)
	saveTestProfile(t, srv)

	rr := postForm(srv, "/activities", url.Values{
		"type": {"caminhada"}, "duration": {"30"}, "intensity": {"leve"}, "date": {"2024-06-12"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("register status=%d", rr.Code)
	}

	rr = get(srv, "/ui/activities?start=2024-06-10&end=2024-06-16")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "caminhada") {
		t.Fatalf("expected activity in list: %s", rr.Body.String())
	}

	// Inverted range renders the empty placeholder.
	rr = get(srv, "/ui/activities?start=2024-06-16&end=2024-06-10")
	if !strings.Contains(rr.Body.String(), "Nenhuma atividade registrada") {
		t.Fatalf("expected empty placeholder: %s", rr.Body.String())
	}
}

func TestExportExcelWithoutActivities(t *testing.T) {
	srv := newTestServer(t)
	saveTestProfile(t, srv)

	rr := postForm(srv, "/reports/excel", url.Values{
		"start": {"2024-06-10"}, "end": {"2024-06-16"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Nenhuma atividade para exportar") {
		t.Fatalf("expected no-activities message, got %s", rr.Body.String())
	}
}

func TestExportReportsDownload(t *testing.T) {
	srv := newTestServer(t)
	saveTestProfile(t, srv)

	rr := postForm(srv, "/activities", url.Values{
		"type": {"caminhada"}, "duration": {"30"}, "intensity": {"leve"}, "date": {"2024-06-12"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("register status=%d", rr.Code)
	}

	// Invalid period
	rr = postForm(srv, "/reports/excel", url.Values{"start": {"12/06/2024"}, "end": {"2024-06-16"}})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid period, got %d", rr.Code)
	}

	rr = postForm(srv, "/reports/excel", url.Values{"start": {"2024-06-10"}, "end": {"2024-06-16"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("excel export status=%d body=%s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, "atividades_bem_viver_") {
		t.Fatalf("unexpected disposition %q", got)
	}

	// PDF renders even with an empty period.
	rr = postForm(srv, "/reports/pdf", url.Values{"start": {"2030-01-01"}, "end": {"2030-01-07"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("pdf export status=%d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.HasPrefix(rr.Body.String(), "%PDF-") {
		t.Fatalf("expected pdf payload, got %d bytes without header", rr.Body.Len())
	}
}
