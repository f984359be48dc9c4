package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/opencamara/actadex/internal/domain"
	"github.com/opencamara/actadex/internal/domain/chunk"
	"github.com/opencamara/actadex/internal/usecase/answer"
	healthuc "github.com/opencamara/actadex/internal/usecase/health"
	queryuc "github.com/opencamara/actadex/internal/usecase/query"
)

// --- Mocks ---

type mockCorpus struct {
	chunks []chunk.Chunk
	err    error
}

func (m *mockCorpus) Chunks() ([]chunk.Chunk, error) { return m.chunks, m.err }

func (m *mockCorpus) Ping(_ context.Context) error { return m.err }

func testChunks() []chunk.Chunk {
	return []chunk.Chunk{
		{ID: "67-0", Session: "67", Speaker: "Félix González", Index: 0,
			Text: "Debemos proteger las rompientes y las olas del borde costero."},
		{ID: "67-1", Session: "67", Speaker: "Jorge Brito", Index: 1,
			Text: "La pesca artesanal merece una discusión seria en esta comisión."},
	}
}

func newTestServer(corpus *mockCorpus) http.Handler {
	query := queryuc.New(corpus, answer.NewBuilder())
	health := healthuc.New(corpus, nil)
	s := NewServer(query, health, zap.NewNop())

	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// --- Tests ---

func TestPostQuery_OK(t *testing.T) {
	h := newTestServer(&mockCorpus{chunks: testChunks()})

	body := `{"question": "resume sesión 67"}`
	req := httptest.NewRequest("POST", "/v1/query", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		ID       string `json:"id"`
		Question string `json:"question"`
		Intent   struct {
			Type string `json:"type"`
		} `json:"intent"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a response id")
	}
	if resp.Intent.Type != "briefing" {
		t.Errorf("intent type: got %q, want %q", resp.Intent.Type, "briefing")
	}
	if len(resp.Data) == 0 {
		t.Error("expected structured data")
	}
}

func TestPostQuery_NotFoundIsStill200(t *testing.T) {
	h := newTestServer(&mockCorpus{chunks: testChunks()})

	body := `{"question": "resume sesión 999"}`
	req := httptest.NewRequest("POST", "/v1/query", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Data struct {
			Found   bool   `json:"found"`
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Found {
		t.Error("expected found=false")
	}
	if resp.Data.Message == "" {
		t.Error("expected a not-found message")
	}
}

func TestPostQuery_EmptyQuestion_400(t *testing.T) {
	h := newTestServer(&mockCorpus{chunks: testChunks()})

	req := httptest.NewRequest("POST", "/v1/query", strings.NewReader(`{"question": ""}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != codeValidationFailed {
		t.Errorf("error code: got %s, want %s", errResp.Code, codeValidationFailed)
	}
}

func TestPostQuery_InvalidBody_400(t *testing.T) {
	h := newTestServer(&mockCorpus{chunks: testChunks()})

	req := httptest.NewRequest("POST", "/v1/query", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestPostQuery_CorpusUnavailable_503(t *testing.T) {
	corpusErr := fmt.Errorf("read corpus: %w", domain.ErrCorpusUnavailable)
	h := newTestServer(&mockCorpus{err: corpusErr})

	req := httptest.NewRequest("POST", "/v1/query", strings.NewReader(`{"question": "resume sesión 67"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != codeCorpusUnavailable {
		t.Errorf("error code: got %s, want %s", errResp.Code, codeCorpusUnavailable)
	}
}

func TestPostQuery_UnknownError_500(t *testing.T) {
	h := newTestServer(&mockCorpus{err: errors.New("disk on fire")})

	req := httptest.NewRequest("POST", "/v1/query", strings.NewReader(`{"question": "resume sesión 67"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusInternalServerError)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Message != "internal error" {
		t.Errorf("internal errors must not leak details, got %q", errResp.Message)
	}
}

func TestGetSession_OK(t *testing.T) {
	h := newTestServer(&mockCorpus{chunks: testChunks()})

	req := httptest.NewRequest("GET", "/v1/sessions/67", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}

	var list answer.ChunkList
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !list.Found || list.Total != 2 || list.Session != "67" {
		t.Errorf("unexpected list: found=%v total=%d session=%s", list.Found, list.Total, list.Session)
	}
}

func TestGetSession_Unknown_200FoundFalse(t *testing.T) {
	h := newTestServer(&mockCorpus{chunks: testChunks()})

	req := httptest.NewRequest("GET", "/v1/sessions/999", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}

	var list answer.ChunkList
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if list.Found {
		t.Error("expected found=false for unknown session")
	}
}

func TestHealthCheck_OK(t *testing.T) {
	h := newTestServer(&mockCorpus{chunks: testChunks()})

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestHealthCheck_Degraded_503(t *testing.T) {
	h := newTestServer(&mockCorpus{err: errors.New("corpus gone")})

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != string(healthuc.Degraded) {
		t.Errorf("status: got %q, want %q", resp.Status, healthuc.Degraded)
	}
	if resp.Checks["corpus"] != string(healthuc.CheckError) {
		t.Errorf("corpus check: got %q, want %q", resp.Checks["corpus"], healthuc.CheckError)
	}
}
