package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
		{in: "", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if out := buf.String(); !strings.Contains(out, tt.want) || !strings.Contains(out, "hello") {
				t.Errorf("output = %q, want it to contain %q and the message", out, tt.want)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		log   func(*slog.Logger)
		want  bool
	}{
		{name: "debug passes at debug", level: "debug", log: func(l *slog.Logger) { l.Debug("m") }, want: true},
		{name: "debug filtered at info", level: "info", log: func(l *slog.Logger) { l.Debug("m") }},
		{name: "warn filtered at error", level: "error", log: func(l *slog.Logger) { l.Warn("m") }},
		{name: "unknown level filters debug", level: "verbose", log: func(l *slog.Logger) { l.Debug("m") }},
		{name: "unknown level passes info", level: "verbose", log: func(l *slog.Logger) { l.Info("m") }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("with source")
	logging.New("info", "json", &infoBuf).Info("no source")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want a source attribute", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source attribute", infoBuf.String())
	}
}

func TestNew_BaseAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf,
		slog.String("service", "portfolio"),
		slog.String("profile", "local"),
	)

	logger.Info("server starting")

	out := buf.String()
	for _, want := range []string{`"service":"portfolio"`, `"profile":"local"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %s", out, want)
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}

	var buf bytes.Buffer
	first := logging.New("info", "json", &buf)
	second := logging.New("debug", "json", &buf)

	ctx := logging.WithLogger(context.Background(), first)
	if got := logging.FromContext(ctx); got != first {
		t.Error("FromContext returned a different logger than the one stored")
	}

	ctx = logging.WithLogger(ctx, second)
	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext returned the first logger, want the overwriting one")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization header", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "set-cookie header", attr: slog.String("set-cookie", "session=abc123xyz"), secret: "abc123xyz"},
		{name: "admin token", attr: slog.String("admin_token", "s3cr3t-admin"), secret: "s3cr3t-admin"},
		{name: "minio secret key", attr: slog.String("secret_key", "minio-secret-value"), secret: "minio-secret-value"},
		{name: "email body", attr: slog.String("body", "private visitor text"), secret: "private visitor text"},
		{name: "contact message", attr: slog.String("message", "please call me on 555-0100"), secret: "555-0100"},
		{name: "reply address", attr: slog.String("reply_to", "grace@example.com"), secret: "grace@example.com"},
		{name: "bearer in other field", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "credentials in URL", attr: slog.String("target", "postgres://portfolio:hunter2@db:5432/portfolio"), secret: "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want a [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("email not delivered",
		slog.String("subject", "New message from Grace"),
		slog.String("slug", "portfolio-site"),
		slog.String("path", "/api/v1/projects"),
	)

	out := buf.String()
	for _, want := range []string{"New message from Grace", "portfolio-site", "/api/v1/projects"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to keep %q", out, want)
		}
	}
}
