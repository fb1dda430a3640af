package mood

import (
	"net/url"
	"regexp"
	"strings"
)

var httpURLPattern = regexp.MustCompile(`(?i)^https?://`)

// ResolvePlaylistID extracts a playlist ID from a raw ID or a URL.
// URLs carrying a "list" query parameter yield that parameter; anything else
// (including URLs that fail to parse) is used as a literal ID after trimming.
// The second return value is false when no usable ID remains.
func ResolvePlaylistID(ref string) (string, bool) {
	id := strings.TrimSpace(ref)
	if id == "" {
		return "", false
	}

	if httpURLPattern.MatchString(id) {
		if u, err := url.Parse(id); err == nil {
			if list := u.Query().Get("list"); list != "" {
				return list, true
			}
		}
	}

	return id, true
}
