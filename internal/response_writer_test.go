package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := wrapResponseWriter(w)

	rw.WriteHeader(http.StatusBadGateway)

	if w.Code != http.StatusBadGateway {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := wrapResponseWriter(w)

	rw.WriteHeader(http.StatusOK)
	rw.WriteHeader(http.StatusInternalServerError) // ignored

	if w.Code != http.StatusOK {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestResponseWriter_Write(t *testing.T) {
	w := httptest.NewRecorder()
	rw := wrapResponseWriter(w)

	if rw.Written() {
		t.Fatal("Written() = true before any write")
	}

	n, err := rw.Write([]byte("Queued. Thank you."))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len("Queued. Thank you.") {
		t.Errorf("Write() n = %d", n)
	}
	if w.Code != http.StatusOK {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "Queued. Thank you." {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestResponseWriter_WrapIsIdempotent(t *testing.T) {
	rw := wrapResponseWriter(httptest.NewRecorder())

	if got := wrapResponseWriter(rw); got != rw {
		t.Error("wrapping an existing responseWriter allocated a new one")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := wrapResponseWriter(w)

	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
