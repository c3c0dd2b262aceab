package valueobject

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
)

const githubHost = "github.com"

// URL is an absolute http or https URL with a non-empty host.
type URL struct {
	value string
	host  string
	https bool
}

// ParseURL validates raw and returns the URL. It fails with a
// *domain.ValidationError when raw is not an absolute URL, uses a scheme
// other than lowercase http or https, has no host, or names a port outside
// 1..65535.
func ParseURL(raw string) (URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return URL{}, domain.NewValidationError("url", domain.MsgRequired)
	}

	u, err := url.ParseRequestURI(trimmed)
	if err != nil || !u.IsAbs() {
		return URL{}, domain.NewValidationError("url", "must be a valid absolute URL")
	}

	// url.Parse lowercases the scheme; it must already be lowercase in raw.
	if (u.Scheme != "http" && u.Scheme != "https") || !strings.HasPrefix(trimmed, u.Scheme+":") {
		return URL{}, domain.NewValidationError("url", "scheme must be http or https")
	}
	if u.Hostname() == "" {
		return URL{}, domain.NewValidationError("url", "host must not be empty")
	}
	if !validPort(u.Port()) {
		return URL{}, domain.NewValidationError("url", "port must be between 1 and 65535")
	}

	return URL{
		value: trimmed,
		host:  strings.ToLower(u.Hostname()),
		https: u.Scheme == "https",
	}, nil
}

// validPort accepts an absent port or a decimal in 1..65535.
func validPort(port string) bool {
	if port == "" {
		return true
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 1 && n <= 65535
}

// TryParseURL is ParseURL for optional fields: it returns nil instead of an
// error.
func TryParseURL(raw string) *URL {
	u, err := ParseURL(raw)
	if err != nil {
		return nil
	}
	return &u
}

// String returns the URL as given (trimmed).
func (u URL) String() string {
	return u.value
}

// IsSecure reports whether the scheme is https.
func (u URL) IsSecure() bool {
	return u.https
}

// Host returns the lowercase host name without port.
func (u URL) Host() string {
	return u.host
}

// IsGitHub reports whether the URL points at GitHub.
func (u URL) IsGitHub() bool {
	return strings.Contains(u.host, githubHost)
}

// Equal reports whether both URLs have the same value.
func (u URL) Equal(other URL) bool {
	return u.value == other.value
}

// StringOrNil returns the URL value for nullable fields.
func StringOrNil(u *URL) *string {
	if u == nil {
		return nil
	}
	s := u.value
	return &s
}
