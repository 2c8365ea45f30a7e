package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/model"
	"github.com/sefallone/Plan-eco/internal/sheet"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ds, err := loader.Load(loader.Embedded(), loader.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return New(zerolog.Nop(), ds, loader.Options{})
}

func get(t *testing.T, h http.Handler, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("GET %s: invalid JSON %q: %v", url, w.Body.String(), err)
	}
	return w, body
}

func TestYears_MostRecentFirst(t *testing.T) {
	r := newTestServer(t).Router()
	w, body := get(t, r, "/api/years")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	years := body["years"].([]any)
	if len(years) != 3 || years[0] != float64(2027) || years[2] != float64(2025) {
		t.Errorf("unexpected years: %v", years)
	}
}

func TestKPIs_2025(t *testing.T) {
	r := newTestServer(t).Router()
	w, body := get(t, r, "/api/kpis?year=2025")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %v", w.Code, body)
	}
	if body["months"] != float64(3) {
		t.Errorf("months = %v", body["months"])
	}
	kpis := body["kpis"].([]any)
	if len(kpis) != len(model.KPINames) {
		t.Fatalf("expected %d kpis, got %d", len(model.KPINames), len(kpis))
	}
	first := kpis[0].(map[string]any)
	if first["name"] != model.KPITotalBilling || first["value"] != float64(360000) {
		t.Errorf("unexpected first kpi: %v", first)
	}
}

func TestKPIs_EmptyYear(t *testing.T) {
	r := newTestServer(t).Router()
	w, body := get(t, r, "/api/kpis?year=1999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if body["error"] != "no data for year 1999" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestKPIs_BadYear(t *testing.T) {
	r := newTestServer(t).Router()
	w, _ := get(t, r, "/api/kpis?year=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestGrowth_FirstYearUndefined(t *testing.T) {
	r := newTestServer(t).Router()
	w, body := get(t, r, "/api/growth?year=2025")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if body["defined"] != false || body["reason"] != model.GrowthNoPriorYear {
		t.Errorf("unexpected growth: %v", body)
	}
}

func TestSeries_BillingByService(t *testing.T) {
	r := newTestServer(t).Router()
	w, body := get(t, r, "/api/series/billing_by_service?year=2025")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	rows := body["rows"].([]any)
	if len(rows) != 9 {
		t.Fatalf("expected 3 months x 3 metrics, got %d", len(rows))
	}
	first := rows[0].(map[string]any)
	if first["month"] != "2025-10" || first["metric"] != model.ColOutpatientBillingTotal || first["value"] != float64(18000) {
		t.Errorf("unexpected first row: %v", first)
	}

	w, _ = get(t, r, "/api/series/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown category: status %d, want 404", w.Code)
	}
}

func TestRecords_DerivedColumnsPresent(t *testing.T) {
	r := newTestServer(t).Router()
	_, body := get(t, r, "/api/records?year=2027")
	recs := body["records"].([]any)
	if len(recs) != 12 {
		t.Fatalf("expected 12 records, got %d", len(recs))
	}
	vals := recs[0].(map[string]any)["values"].(map[string]any)
	if vals[model.ColSurgicalBillingTotal] != float64(95) {
		t.Errorf("surgical_billing_total = %v", vals[model.ColSurgicalBillingTotal])
	}
}

func upload(t *testing.T, h http.Handler, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write(data)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/dataset", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestUpload_ReplacesDataset(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	before := s.Dataset().BatchID()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	table := &model.Table{
		Header: []string{"date", "total_billing"},
		Rows:   [][]string{{"ene-24", "10"}, {"feb-24", "20"}},
	}
	if err := sheet.WriteTable(path, "Hoja1", table); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	data := readFile(t, path)

	w := upload(t, r, "book.xlsx", data)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if s.Dataset().BatchID() == before {
		t.Fatal("dataset not replaced")
	}
	_, body := get(t, r, "/api/kpis?year=2024")
	if body["kpis"].([]any)[0].(map[string]any)["value"] != float64(30) {
		t.Errorf("unexpected kpis after upload: %v", body)
	}
}

func TestUpload_BadFileKeepsDataset(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	before := s.Dataset().BatchID()

	w := upload(t, r, "book.xlsx", []byte("not a workbook"))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", w.Code)
	}
	if s.Dataset().BatchID() != before {
		t.Error("failed upload replaced the dataset")
	}
}

func TestUpload_OversizedBodyRejected(t *testing.T) {
	s := newTestServer(t)
	s.maxUpload = 1024
	r := s.Router()
	before := s.Dataset().BatchID()

	w := upload(t, r, "book.xlsx", bytes.Repeat([]byte("x"), 8*1024))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status %d, want 413: %s", w.Code, w.Body.String())
	}
	if s.Dataset().BatchID() != before {
		t.Error("oversized upload replaced the dataset")
	}
}

func TestKPIs_ConsistentDuringSwap(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	embeddedDS := s.Dataset()
	other, err := loader.Load(loader.TableSource("other", &model.Table{
		Header: []string{"date", "total_billing"},
		Rows:   [][]string{{"ene-24", "10"}},
	}), loader.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			if i%2 == 0 {
				s.dataset.Store(other)
			} else {
				s.dataset.Store(embeddedDS)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/kpis", nil))
		if w.Code != http.StatusOK {
			t.Errorf("request %d: status %d: %s", i, w.Code, w.Body.String())
			break
		}
	}
	close(done)
	wg.Wait()
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return data
}
