package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"animal-shelter-api/internal/adapters/storage/memory"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/ports/docstore"
	"animal-shelter-api/internal/router"
)

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(opts)
	if err != nil {
		t.Fatalf("NewRouter error: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ShelterFlow(t *testing.T) {
	ts := newServer(t, router.Options{})

	// 1) Catálogos
	breedID := createEntity(t, ts.URL, "/breeds", map[string]any{"name": "Labrador"})
	_ = createEntity(t, ts.URL, "/rescue-types", map[string]any{"name": "Stray"})

	// 2) Alta del perro
	dogID := createEntity(t, ts.URL, "/dogs", map[string]any{
		"animal_id":   "A100",
		"name":        "Rex",
		"breed":       "Labrador",
		"rescue_type": "Stray",
	})

	// 3) GET por animal_id con defaults
	before := getDog(t, ts.URL, "A100")
	want := map[string]any{
		"id":           dogID,
		"animal_id":    "A100",
		"name":         "Rex",
		"breed":        "Labrador",
		"rescue_type":  "Stray",
		"animal_type":  "Dog",
		"outcome_type": "Adoption",
		"status":       "available",
		"color":        "",
	}
	for k, v := range want {
		if before[k] != v {
			t.Fatalf("GET /dogs/A100: %s = %v, want %v", k, before[k], v)
		}
	}

	// 4) PUT parcial
	{
		st, body := doReq(t, ts.URL, "PUT", "/dogs/A100", map[string]any{"status": "adopted"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 on PUT, got %d body=%s", st, string(body))
		}
		var out map[string]any
		_ = json.Unmarshal(body, &out)
		if out["message"] != "Dog updated" || out["id"] != dogID || out["animal_id"] != "A100" {
			t.Fatalf("unexpected update response: %s", string(body))
		}
	}

	after := getDog(t, ts.URL, "A100")
	if after["status"] != "adopted" {
		t.Fatalf("expected status adopted, got %v", after["status"])
	}
	for k, v := range before {
		if k == "status" {
			continue
		}
		if after[k] != v {
			t.Fatalf("field %s changed: %v -> %v", k, v, after[k])
		}
	}

	// 5) Borrar la raza no toca al perro
	{
		st, body := doReq(t, ts.URL, "DELETE", "/breeds/"+breedID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on breed delete, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/breeds", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing breeds, got %d", st)
		}
		if strings.Contains(string(body), "Labrador") {
			t.Fatalf("deleted breed still listed: %s", string(body))
		}
	}
	if got := getDog(t, ts.URL, "A100"); got["breed"] != "Labrador" {
		t.Fatalf("expected breed kept on dog, got %v", got["breed"])
	}
}

func TestHTTP_DuplicateNamesConflict(t *testing.T) {
	ts := newServer(t, router.Options{})

	for _, path := range []string{"/breeds", "/rescue-types"} {
		_ = createEntity(t, ts.URL, path, map[string]any{"name": "Dup"})

		st, body := doReq(t, ts.URL, "POST", path, map[string]any{"name": "Dup"})
		if st != http.StatusConflict {
			t.Fatalf("%s: expected 409, got %d body=%s", path, st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK || strings.Count(string(body), `"Dup"`) != 1 {
			t.Fatalf("%s: expected exactly one entry, body=%s", path, string(body))
		}
	}
}

func TestHTTP_DeleteMissingIsNotFound(t *testing.T) {
	ts := newServer(t, router.Options{})

	missing := docstore.NewID()
	for _, path := range []string{"/breeds/" + missing, "/rescue-types/" + missing, "/dogs/" + missing} {
		st, body := doReq(t, ts.URL, "DELETE", path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("DELETE %s: expected 404, got %d body=%s", path, st, string(body))
		}
	}
}

func TestHTTP_DogValidation(t *testing.T) {
	ts := newServer(t, router.Options{})

	_ = createEntity(t, ts.URL, "/breeds", map[string]any{"name": "Labrador"})
	_ = createEntity(t, ts.URL, "/rescue-types", map[string]any{"name": "Stray"})

	st, body := doReq(t, ts.URL, "POST", "/dogs", map[string]any{
		"animal_id":    "A200",
		"name":         "Luna",
		"breed":        "Labrador",
		"rescue_type":  "Stray",
		"location_lat": "abc",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, string(body))
	}
	var errResp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	_ = json.Unmarshal(body, &errResp)
	if _, ok := errResp.Fields["location_lat"]; !ok {
		t.Fatalf("expected location_lat error, got %s", string(body))
	}

	_ = createEntity(t, ts.URL, "/dogs", map[string]any{
		"animal_id":    "A200",
		"name":         "Luna",
		"breed":        "Labrador",
		"rescue_type":  "Stray",
		"location_lat": "30.5",
	})
	if got := getDog(t, ts.URL, "A200"); got["location_lat"] != 30.5 {
		t.Fatalf("expected location_lat 30.5, got %v", got["location_lat"])
	}

	st, _ = doReq(t, ts.URL, "POST", "/dogs", map[string]any{
		"animal_id": "A200", "name": "Otra", "breed": "Labrador", "rescue_type": "Stray",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate animal_id, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "PUT", "/dogs", map[string]any{"name": "x"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without id, got %d", st)
	}
}

func TestHTTP_UpdateWithBodyIDAndTrailingSlash(t *testing.T) {
	ts := newServer(t, router.Options{})

	id := createEntity(t, ts.URL, "/breeds/", map[string]any{"name": "Beagle"})

	st, body := doReq(t, ts.URL, "PUT", "/breeds", map[string]any{"_id": id, "name": "Beagle Harrier"})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), "Beagle Harrier") {
		t.Fatalf("unexpected body: %s", string(body))
	}
}

func TestHTTP_InvalidJSON(t *testing.T) {
	ts := newServer(t, router.Options{})

	req, _ := http.NewRequest("POST", ts.URL+"/breeds", strings.NewReader("{not json"))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

type downStore struct {
	*memory.Client
}

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t, router.Options{})
	if st, body := doReq(t, ts.URL, "GET", "/health", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %s", st, string(body))
	}

	down := newServer(t, router.Options{Store: downStore{memory.NewClient()}})
	if st, _ := doReq(t, down.URL, "GET", "/health", nil); st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with store down, got %d", st)
	}
}

func TestHTTP_SwaggerEntryPoint(t *testing.T) {
	ts := newServer(t, router.Options{})

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	for _, path := range []string{"/swagger", "/swagger/"} {
		res, err := client.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusMovedPermanently || res.Header.Get("Location") != "/swagger/index.html" {
			t.Fatalf("GET %s: expected redirect to index, got %d %q", path, res.StatusCode, res.Header.Get("Location"))
		}
	}

	if st, _ := doReq(t, ts.URL, "GET", "/swagger/index.html", nil); st != http.StatusOK {
		t.Fatalf("expected 200 on swagger index, got %d", st)
	}
	if st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil); st != http.StatusOK || !strings.Contains(string(body), "/dogs/{dogID}") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func TestHTTP_RateLimit(t *testing.T) {
	ts := newServer(t, router.Options{RateLimiter: middleware.NewRateLimiter(0.001, 1)})

	if st, _ := doReq(t, ts.URL, "GET", "/breeds", nil); st != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/breeds", nil); st != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", st)
	}
}

func createEntity(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var out struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("missing id in response: %s", string(body))
	}
	return out.ID
}

func getDog(t *testing.T, baseURL, ref string) map[string]any {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/dogs/"+ref, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 GET /dogs/%s, got %d body=%s", ref, st, string(body))
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal dog: %v", err)
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
