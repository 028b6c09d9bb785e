package session

import (
	"net/url"
	"strings"
)

// CodeParam is the query parameter carrying diagram source.
const CodeParam = "code"

// CodeFromURL extracts the code parameter from a full URL, a path, or a
// bare query string. The query layer decodes once; a second URI-component
// decode is applied and dropped if it fails.
func CodeFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Only a full URL or a path is split at '?'; a bare query may carry '?'
	// inside its values.
	query := strings.TrimPrefix(raw, "?")
	if query == raw {
		if u, err := url.Parse(raw); err == nil && (u.Scheme != "" || strings.HasPrefix(raw, "/")) {
			query = u.RawQuery
		}
	}

	values, err := url.ParseQuery(query)
	if err != nil && len(values) == 0 {
		return ""
	}
	code := values.Get(CodeParam)
	if code == "" {
		return ""
	}
	if decoded, err := url.PathUnescape(code); err == nil {
		return decoded
	}
	return code
}
