package engine

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// RoleID derives a custom role ID from its display name: lowercase with
// every whitespace run replaced by a hyphen. "Video Editor" and
// "video  editor" both become "video-editor".
func RoleID(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
