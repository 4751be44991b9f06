package schema

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
)

// Flag is a classification flag that accepts both JSON booleans and the 0/1
// integers the upstream classifier emits.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler for Flag.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*f = true
	case "false", "0", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s (expected true/false or 0/1)", data)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Flag.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool { return bool(f) }

// CategoryFor resolves the category from the two classification flags.
// The underrated flag takes precedence over the overrated flag.
func CategoryFor(underrated, overrated Flag) Category {
	switch {
	case underrated.Bool():
		return CategoryUnderrated
	case overrated.Bool():
		return CategoryOverrated
	default:
		return CategoryNormal
	}
}

// ExtractRepoName extracts the owner/name pair from a repository URL path.
// Unparseable URLs fall back to the raw input so the record stays identifiable.
func ExtractRepoName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return rawURL
	}
	return name
}

// ShortName returns the final path segment of a repo name, truncated to
// maxRunes runes for compact chart and table labels.
func ShortName(repoName string, maxRunes int) string {
	name := repoName
	if idx := strings.LastIndex(repoName, "/"); idx >= 0 {
		name = repoName[idx+1:]
	}
	runes := []rune(name)
	if len(runes) > maxRunes {
		return string(runes[:maxRunes])
	}
	return name
}
