package validate

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies a specific validation failure so callers can key
// user-facing behavior off it without parsing message text.
type Kind int

const (
	EmptyInput Kind = iota
	TooShort
	TooLong
	SuspiciousContent
)

// Error reports why an industry string was rejected. The message is safe to
// show to the user as-is.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "industry name cannot be empty"
	case TooShort:
		return "industry name too short"
	case TooLong:
		return "industry name too long (max 100 characters)"
	case SuspiciousContent:
		return "invalid characters detected"
	default:
		return "invalid industry name"
	}
}

// denylist entries are matched case-insensitively anywhere in the input.
var denylist = []string{"<script", "javascript:", "onclick=", "--"}

const (
	minLength = 2
	maxLength = 100
)

// Industry checks a raw industry string and returns its trimmed form. Case
// and internal whitespace are preserved; no characters are escaped or
// rewritten. The denylist is checked before the length cap so suspicious
// content is reported no matter how long the input is.
func Industry(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", &Error{Kind: EmptyInput}
	}
	if utf8.RuneCountInString(cleaned) < minLength {
		return "", &Error{Kind: TooShort}
	}
	lower := strings.ToLower(cleaned)
	for _, p := range denylist {
		if strings.Contains(lower, p) {
			return "", &Error{Kind: SuspiciousContent}
		}
	}
	if utf8.RuneCountInString(cleaned) > maxLength {
		return "", &Error{Kind: TooLong}
	}
	return cleaned, nil
}
