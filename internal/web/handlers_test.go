package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	s := NewServer("")
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestHandleSolve(t *testing.T) {
	s := NewServer("")
	reqBody, _ := json.Marshal(SolveRequest{Scramble: "R U", Algorithm: "naive", Evaluator: "uniform"})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp SolveResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Solution == "" {
		t.Error("expected a non-empty solution")
	}
}

func TestHandleSolveRejectsBadJSON(t *testing.T) {
	s := NewServer("")
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleSolveRejectsBadScramble(t *testing.T) {
	s := NewServer("")
	reqBody, _ := json.Marshal(SolveRequest{Scramble: "not a move", Algorithm: "naive", Evaluator: "uniform"})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
