package valueobject

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
)

// maxEmailLength is the longest address accepted, per RFC 5321.
const maxEmailLength = 254

// Email is a normalized (trimmed, lowercase) email address.
type Email struct {
	value string
}

// ParseEmail validates raw and returns the normalized Email. It fails with a
// *domain.ValidationError when raw is blank, too long, contains whitespace,
// is not a bare local@domain address, or has a domain that is not a dotted
// host name.
func ParseEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		return Email{}, domain.NewValidationError("email", domain.MsgRequired)
	case len(trimmed) > maxEmailLength:
		return Email{}, domain.NewValidationError("email", "must be at most 254 characters")
	case strings.IndexFunc(trimmed, unicode.IsSpace) >= 0:
		return Email{}, domain.NewValidationError("email", "must not contain whitespace")
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed || addr.Name != "" {
		return Email{}, domain.NewValidationError("email", "must be a valid email address")
	}
	if !validMailDomain(trimmed[strings.LastIndex(trimmed, "@")+1:]) {
		return Email{}, domain.NewValidationError("email", "must be a valid email address")
	}

	return Email{value: strings.ToLower(trimmed)}, nil
}

// validMailDomain accepts dotted host names only: at least two labels of
// letters, digits and hyphens, no label starting or ending with a hyphen, and
// a top-level label that is not all digits. Domain literals such as
// "[127.0.0.1]" and single-label hosts such as "localhost" are rejected.
func validMailDomain(d string) bool {
	labels := strings.Split(d, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if !isASCIILetter(c) && !isASCIIDigit(c) && c != '-' {
				return false
			}
		}
	}
	return strings.IndexFunc(labels[len(labels)-1], func(r rune) bool { return !unicode.IsDigit(r) }) >= 0
}

func isASCIILetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }

// TryParseEmail is ParseEmail for optional fields: it returns nil instead of
// an error.
func TryParseEmail(raw string) *Email {
	e, err := ParseEmail(raw)
	if err != nil {
		return nil
	}
	return &e
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e was never successfully parsed.
func (e Email) IsZero() bool {
	return e.value == ""
}

// Domain returns the part after the '@'.
func (e Email) Domain() string {
	i := strings.LastIndex(e.value, "@")
	if i < 0 {
		return ""
	}
	return e.value[i+1:]
}

// LocalPart returns the part before the '@'.
func (e Email) LocalPart() string {
	i := strings.LastIndex(e.value, "@")
	if i < 0 {
		return e.value
	}
	return e.value[:i]
}

// Equal reports whether both addresses have the same normalized value.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}
