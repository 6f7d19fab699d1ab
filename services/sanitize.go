package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Free-text fields (notes, descriptions, hearing outcomes) are rendered
// back to browsers, so any markup is stripped at the boundary.
var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeText strips all HTML from user-supplied free text and trims
// surrounding whitespace.
func SanitizeText(input string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(input))
}
