package images

import (
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/resilience"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "no such key", err: minio.ErrorResponse{Code: codeNoSuchKey, StatusCode: http.StatusNotFound}, want: true},
		{name: "no such bucket", err: minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: http.StatusNotFound}, want: false},
		{name: "plain error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isNotFound(tt.err); got != tt.want {
				t.Errorf("isNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantPermanent bool
	}{
		{name: "access denied", err: minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}, wantPermanent: true},
		{name: "throttled", err: minio.ErrorResponse{Code: "SlowDown", StatusCode: http.StatusTooManyRequests}},
		{name: "server error", err: minio.ErrorResponse{Code: "InternalError", StatusCode: http.StatusInternalServerError}},
		{name: "network error", err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := classify(tt.err)
			if got := resilience.IsPermanent(err); got != tt.wantPermanent {
				t.Errorf("IsPermanent(classify(%v)) = %v, want %v", tt.err, got, tt.wantPermanent)
			}
			if err.Error() != tt.err.Error() {
				t.Errorf("classify(%v) = %v, want the original message", tt.err, err)
			}
		})
	}

	if classify(nil) != nil {
		t.Error("classify(nil) != nil")
	}
}
