package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values are
// credentials. The HTTP middleware redacts them from header dumps and the
// masq layer below redacts any attribute carrying the same name.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// sensitiveFields are attribute names redacted wherever they appear. body and
// message hold visitor-written text and reply_to the visitor's address.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"admin_token",
	"access_key",
	"secret_key",
	"dsn",
	"body",
	"message",
	"reply_to",
}

var sensitivePrefixes = []string{"secret_", "api_key", "password_"}

var (
	// bearerPattern matches "Bearer <token>" values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern matches header.payload.signature strings. Each segment needs
	// at least 10 characters so version numbers do not match.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// apiKeyInlinePattern matches "api_key=<value>" or "apikey: <value>".
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// credentialURLPattern matches URLs with inline credentials, such as a
	// postgres DSN or a redis URL with a password.
	credentialURLPattern = regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`)
)

// newRedactAttr returns a masq-powered ReplaceAttr function for
// slog.HandlerOptions. Known field names are redacted outright; the regexes
// catch credentials that slip into other string attributes.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+4)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
		masq.WithRegex(credentialURLPattern),
	)

	return masq.New(opts...)
}
