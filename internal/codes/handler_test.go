package codes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/govtec-events/backend/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.NewMemStore([]string{"GOVTEC2025", "COMP001", "REG123", "EVENT2025"}, nil)
	h := NewHandler(st, nil)
	router := gin.New()
	router.POST("/api/verify-code", h.Verify)
	return router
}

func verify(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/verify-code", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func verifyResult(t *testing.T, router *gin.Engine, body string) bool {
	t.Helper()
	rec := verify(t, router, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Valid
}

func TestVerifyCodeCaseInsensitive(t *testing.T) {
	router := newTestRouter()

	if !verifyResult(t, router, `{"code": "GOVTEC2025"}`) {
		t.Error("expected GOVTEC2025 to be valid")
	}
	if !verifyResult(t, router, `{"code": "govtec2025"}`) {
		t.Error("expected govtec2025 to be valid")
	}
	if !verifyResult(t, router, `{"code": "  reg123  "}`) {
		t.Error("expected whitespace-padded code to be valid")
	}
}

func TestVerifyCodeInvalid(t *testing.T) {
	router := newTestRouter()
	if verifyResult(t, router, `{"code": "nope"}`) {
		t.Error("expected nope to be invalid")
	}
}

func TestVerifyCodeMissing(t *testing.T) {
	router := newTestRouter()
	if rec := verify(t, router, `{}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing code, got %d", rec.Code)
	}
}

func TestVerifyCodeNotAString(t *testing.T) {
	router := newTestRouter()
	if rec := verify(t, router, `{"code": 12345}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-string code, got %d", rec.Code)
	}
}
