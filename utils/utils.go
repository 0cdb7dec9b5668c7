package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a URL-safe slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug appends a short random suffix to a slug, used when the plain
// slug is already taken
func UniqueSlug(title string) string {
	return Slugify(title) + "-" + uuid.NewString()[:8]
}
