package images_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/images"
)

func TestLocalBackend_Handler(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	backend, err := images.NewLocalBackend(root)
	if err != nil {
		t.Fatalf("NewLocalBackend() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "projects"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "projects", "1_abcdef01.png"), []byte("png-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "projects", ".upload-123"), []byte("partial"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "stored file", method: http.MethodGet, path: "projects/1_abcdef01.png", wantStatus: http.StatusOK, wantBody: "png-bytes"},
		{name: "missing file", method: http.MethodGet, path: "projects/missing.png", wantStatus: http.StatusNotFound},
		{name: "directory", method: http.MethodGet, path: "projects", wantStatus: http.StatusNotFound},
		{name: "directory with slash", method: http.MethodGet, path: "projects/", wantStatus: http.StatusNotFound},
		{name: "temporary upload", method: http.MethodGet, path: "projects/.upload-123", wantStatus: http.StatusNotFound},
		{name: "traversal", method: http.MethodGet, path: "../../etc/passwd", wantStatus: http.StatusNotFound},
		{name: "write method", method: http.MethodPost, path: "projects/1_abcdef01.png", wantStatus: http.StatusMethodNotAllowed},
	}

	handler := backend.Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/", http.NoBody)
			req.URL.Path = tt.path
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusOK && rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("missing X-Content-Type-Options: nosniff")
			}
		})
	}
}
