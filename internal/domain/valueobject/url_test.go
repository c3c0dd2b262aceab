package valueobject_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
)

func TestParseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		wantErr    bool
		wantSecure bool
		wantHost   string
		wantGitHub bool
	}{
		{name: "github https", raw: "https://github.com/me/repo", wantSecure: true, wantHost: "github.com", wantGitHub: true},
		{name: "plain http", raw: "http://example.com/path?q=1", wantHost: "example.com"},
		{name: "uppercase host", raw: "https://Example.COM", wantSecure: true, wantHost: "example.com"},
		{name: "uppercase scheme", raw: "HTTPS://example.com", wantErr: true},
		{name: "highest port", raw: "http://example.com:65535/", wantHost: "example.com"},
		{name: "port out of range", raw: "http://x.com:99999", wantErr: true},
		{name: "port zero", raw: "http://x.com:0/", wantErr: true},
		{name: "github subdomain", raw: "https://gist.github.com/x", wantSecure: true, wantHost: "gist.github.com", wantGitHub: true},
		{name: "host with port", raw: "http://localhost:8080/", wantHost: "localhost"},
		{name: "ftp scheme", raw: "ftp://example.com", wantErr: true},
		{name: "no scheme", raw: "example.com", wantErr: true},
		{name: "empty host", raw: "https://", wantErr: true},
		{name: "not a url", raw: "not a url", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := valueobject.ParseURL(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("ParseURL(%q) error = %v, want ErrInvalidInput", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURL(%q) unexpected error: %v", tt.raw, err)
			}
			if got.String() != tt.raw {
				t.Errorf("String() = %q, want %q", got.String(), tt.raw)
			}
			if got.IsSecure() != tt.wantSecure {
				t.Errorf("IsSecure() = %v, want %v", got.IsSecure(), tt.wantSecure)
			}
			if got.Host() != tt.wantHost {
				t.Errorf("Host() = %q, want %q", got.Host(), tt.wantHost)
			}
			if got.IsGitHub() != tt.wantGitHub {
				t.Errorf("IsGitHub() = %v, want %v", got.IsGitHub(), tt.wantGitHub)
			}
		})
	}
}

func TestURL_Equal(t *testing.T) {
	t.Parallel()

	a, _ := valueobject.ParseURL("https://example.com")
	b, _ := valueobject.ParseURL("  https://example.com ")
	c, _ := valueobject.ParseURL("https://example.org")

	if !a.Equal(b) {
		t.Error("Equal() = false for same value, want true")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different values, want false")
	}
}

func TestTryParseURL(t *testing.T) {
	t.Parallel()

	if got := valueobject.TryParseURL("ftp://example.com"); got != nil {
		t.Errorf("TryParseURL(ftp) = %v, want nil", got)
	}
	if got := valueobject.TryParseURL("https://example.com"); got == nil {
		t.Error("TryParseURL(https) = nil, want URL")
	}
}

func TestStringOrNil(t *testing.T) {
	t.Parallel()

	if got := valueobject.StringOrNil(nil); got != nil {
		t.Errorf("StringOrNil(nil) = %q, want nil", *got)
	}

	u := valueobject.TryParseURL("https://example.com")
	got := valueobject.StringOrNil(u)
	if got == nil || *got != "https://example.com" {
		t.Errorf("StringOrNil(url) = %v, want %q", got, "https://example.com")
	}
}
