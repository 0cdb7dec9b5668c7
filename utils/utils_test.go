package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "go-for-beginners", Slugify("Go for Beginners"))
	assert.Equal(t, "advanced-sql-part-2", Slugify("  Advanced SQL: Part 2! "))
	assert.Equal(t, "a-b-c", Slugify("a---b___c"))
}

func TestUniqueSlugAppendsSuffix(t *testing.T) {
	slug := UniqueSlug("Go for Beginners")
	assert.True(t, strings.HasPrefix(slug, "go-for-beginners-"))
	assert.NotEqual(t, UniqueSlug("Go for Beginners"), slug)
}
