package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/gin-gonic/gin"
)

type checkerFunc func() error

func (f checkerFunc) Ready() error { return f() }

func serve(t *testing.T, handler *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler.Register(router)

	req, err := http.NewRequest("GET", path, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(t, NewHandler(nil), "/health")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	expectedBody := `{"status":"ok"}`
	if w.Body.String() != expectedBody {
		t.Errorf("Expected body %s, got %s", expectedBody, w.Body.String())
	}
}

func TestReady(t *testing.T) {
	w := serve(t, NewHandler(checkerFunc(func() error { return nil })), "/ready")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	expectedBody := `{"status":"ready"}`
	if w.Body.String() != expectedBody {
		t.Errorf("Expected body %s, got %s", expectedBody, w.Body.String())
	}
}

func TestReady_DatabaseMissing(t *testing.T) {
	notInstalled := &data.NotInstalledError{Candidates: []string{"maxminddb.mmdb", "data/maxminddb.dat"}}
	w := serve(t, NewHandler(checkerFunc(func() error { return notInstalled })), "/ready")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "not ready" {
		t.Errorf("Expected status not ready, got %s", body["status"])
	}
	if body["error"] != notInstalled.Error() {
		t.Errorf("Expected error %q, got %q", notInstalled.Error(), body["error"])
	}
}
