package httpjson_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/classboard/internal/app/system/httpjson"
)

func TestWrite_SetsStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()

	httpjson.Write(rec, http.StatusOK, map[string]string{"message": "ok"})

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
}

func TestError_Body(t *testing.T) {
	rec := httptest.NewRecorder()

	httpjson.Error(rec, http.StatusUnauthorized, "Invalid teacher credentials")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse error body: %v", err)
	}
	if body.Error != "Invalid teacher credentials" {
		t.Errorf("error message: got %q", body.Error)
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"message":"hi","bogus":1}`))

	var dst struct {
		Message string `json:"message"`
	}
	if err := httpjson.Decode(req, &dst); err == nil {
		t.Fatal("expected error for unknown field, got none")
	}
}

func TestDecode_EmptyBodyIsZeroValue(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))

	var dst struct {
		Message *string `json:"message"`
	}
	if err := httpjson.Decode(req, &dst); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if dst.Message != nil {
		t.Errorf("expected nil message, got %q", *dst.Message)
	}
}

func TestDecode_TrailingGarbage(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"message":"hi"}{"again":true}`))

	var dst struct {
		Message string `json:"message"`
	}
	if err := httpjson.Decode(req, &dst); err == nil {
		t.Fatal("expected error for trailing data, got none")
	}
}
