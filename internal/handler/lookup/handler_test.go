package lookup

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/TomasB/geolookup/internal/record"
	"github.com/TomasB/geolookup/internal/value"
	"github.com/gin-gonic/gin"
)

// mockGeolocator implements data.Geolocator for testing.
type mockGeolocator struct {
	result     value.Value
	name       string
	found      bool
	err        error
	refreshErr error

	gotIP     string
	gotCode   int64
	gotLocale string
	refreshed int
}

func (m *mockGeolocator) Query(ip string, code int64) (value.Value, error) {
	m.gotIP, m.gotCode = ip, code
	return m.result, m.err
}

func (m *mockGeolocator) Country(ip, locale string) (string, bool, error) {
	m.gotIP, m.gotLocale = ip, locale
	return m.name, m.found, m.err
}

func (m *mockGeolocator) Refresh() error {
	m.refreshed++
	return m.refreshErr
}

func setupRouter(geo *mockGeolocator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(geo).Register(r.Group("/api/v1"))
	return r
}

func do(t *testing.T, router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLookup_Success(t *testing.T) {
	geo := &mockGeolocator{result: value.Map(
		value.F("country", value.Map(value.F("iso_code", value.String("US")))),
		value.F("traits", value.Null()),
	)}
	router := setupRouter(geo)

	w := do(t, router, "GET", "/api/v1/lookup?ip=8.8.8.8&type=4")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	expected := `{"result":{"country":{"iso_code":"US"},"traits":null}}`
	if w.Body.String() != expected {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
	if geo.gotIP != "8.8.8.8" || geo.gotCode != int64(record.TypeCountry) {
		t.Errorf("unexpected call: ip=%s code=%d", geo.gotIP, geo.gotCode)
	}
}

func TestLookup_TypeByName(t *testing.T) {
	geo := &mockGeolocator{result: value.Map()}
	router := setupRouter(geo)

	w := do(t, router, "GET", "/api/v1/lookup?ip=8.8.8.8&type=city")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if geo.gotCode != int64(record.TypeCity) {
		t.Errorf("expected code %d, got %d", record.TypeCity, geo.gotCode)
	}
}

func TestLookup_AnonymousIPCodeZero(t *testing.T) {
	geo := &mockGeolocator{result: value.Map()}
	router := setupRouter(geo)

	w := do(t, router, "GET", "/api/v1/lookup?ip=8.8.8.8&type=0")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if geo.gotCode != int64(record.TypeAnonymousIP) {
		t.Errorf("expected code 0, got %d", geo.gotCode)
	}
}

func TestLookup_MissingParams(t *testing.T) {
	router := setupRouter(&mockGeolocator{})

	for _, target := range []string{
		"/api/v1/lookup?type=4",
		"/api/v1/lookup?ip=8.8.8.8",
	} {
		w := do(t, router, "GET", target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, w.Code)
		}
	}
}

func TestLookup_UnknownType(t *testing.T) {
	geo := &mockGeolocator{}
	router := setupRouter(geo)

	w := do(t, router, "GET", "/api/v1/lookup?ip=8.8.8.8&type=42")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["result"] != nil {
		t.Errorf("expected null result, got %v", resp["result"])
	}
	if resp["error"] != "Unknown or invalid GeoIP record type: 42" {
		t.Errorf("unexpected error %v", resp["error"])
	}
	if geo.gotIP != "" {
		t.Error("geolocator must not be called for an unknown type")
	}
}

func TestLookup_InvalidIP(t *testing.T) {
	router := setupRouter(&mockGeolocator{err: &record.ParseError{
		Kind:   record.InvalidAddress,
		Input:  "not-an-ip",
		Detail: `ParseAddr("not-an-ip"): unable to parse IP`,
	}})

	w := do(t, router, "GET", "/api/v1/lookup?ip=not-an-ip&type=4")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp["error"] != `Invalid IP address: ParseAddr("not-an-ip"): unable to parse IP` {
		t.Errorf("unexpected error %v", resp["error"])
	}
}

func TestLookup_InvalidIPReportedBeforeType(t *testing.T) {
	geo := &mockGeolocator{}
	router := setupRouter(geo)

	w := do(t, router, "GET", "/api/v1/lookup?ip=not-an-ip&type=Weather")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != `Invalid IP address: ParseAddr("not-an-ip"): unable to parse IP` {
		t.Errorf("unexpected error %v", resp["error"])
	}
	if geo.gotIP != "" {
		t.Error("geolocator must not be called for an invalid address")
	}
}

func TestLookup_NotInstalled(t *testing.T) {
	router := setupRouter(&mockGeolocator{err: &data.NotInstalledError{Candidates: []string{"a", "b"}}})

	w := do(t, router, "GET", "/api/v1/lookup?ip=8.8.8.8&type=4")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}

func TestLookup_EngineError(t *testing.T) {
	router := setupRouter(&mockGeolocator{err: &data.LookupError{Err: errors.New("unexpected end of database")}})

	w := do(t, router, "GET", "/api/v1/lookup?ip=8.8.8.8&type=4")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var resp LookupResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "unexpected end of database" {
		t.Errorf("expected engine message, got %q", resp.Error)
	}
}

func TestCountry_Found(t *testing.T) {
	geo := &mockGeolocator{name: "Deutschland", found: true}
	router := setupRouter(geo)

	w := do(t, router, "GET", "/api/v1/country?ip=2.125.160.216&locale=de")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `{"name":"Deutschland"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
	if geo.gotLocale != "de" {
		t.Errorf("expected locale de, got %q", geo.gotLocale)
	}
}

func TestCountry_NotFound(t *testing.T) {
	router := setupRouter(&mockGeolocator{})

	w := do(t, router, "GET", "/api/v1/country?ip=10.0.0.1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `{"name":null}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestRefresh(t *testing.T) {
	geo := &mockGeolocator{}
	router := setupRouter(geo)

	w := do(t, router, "POST", "/api/v1/refresh")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != `{"success":true}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
	if geo.refreshed != 1 {
		t.Errorf("expected one refresh, got %d", geo.refreshed)
	}
}

func TestRefresh_Failure(t *testing.T) {
	notInstalled := &data.NotInstalledError{Candidates: []string{"maxminddb.mmdb", "data/maxminddb.dat"}}
	router := setupRouter(&mockGeolocator{refreshErr: notInstalled})

	w := do(t, router, "POST", "/api/v1/refresh")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}

	var resp RefreshResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Success {
		t.Error("expected success to be false")
	}
	if resp.Error != notInstalled.Error() {
		t.Errorf("unexpected error %q", resp.Error)
	}
}

func TestRecords(t *testing.T) {
	router := setupRouter(&mockGeolocator{})

	w := do(t, router, "GET", "/api/v1/records")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Records []record.Info `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Records) != 8 {
		t.Fatalf("expected 8 record types, got %d", len(resp.Records))
	}
	if resp.Records[2].Name != "City" || resp.Records[2].Code != 2 {
		t.Errorf("unexpected entry %+v", resp.Records[2])
	}
}

func TestVersion(t *testing.T) {
	router := setupRouter(&mockGeolocator{})

	w := do(t, router, "GET", "/api/v1/version")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["version"] == "" {
		t.Error("expected a version string")
	}
}
