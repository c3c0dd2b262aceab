package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/logging"
)

const (
	redacted = "[REDACTED]"

	// maxHeaderValueLog caps how much of one header value reaches the log.
	maxHeaderValueLog = 256
)

// RedactHeaders converts request headers into slog attributes sorted by name.
// Credentials listed in logging.SensitiveHeaders are replaced with
// "[REDACTED]". Multi-value headers are joined with a comma and long values
// are truncated.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		value := strings.Join(headers[key], ",")
		if len(value) > maxHeaderValueLog {
			value = value[:maxHeaderValueLog] + "..."
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
