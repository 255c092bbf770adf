package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownBasics(t *testing.T) {
	h := NewPageHandler(nil)

	html, err := h.render("# Tvättstugan\n\nBokning sker **veckovis**.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Tvättstugan")
	assert.Contains(t, html, "<strong>veckovis</strong>")
}

func TestRenderStripsScripts(t *testing.T) {
	h := NewPageHandler(nil)

	html, err := h.render("hello\n\n<script>alert('x')</script>\n\nworld")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "alert")
	assert.Contains(t, html, "hello")
	assert.Contains(t, html, "world")
}

func TestRenderGFMTable(t *testing.T) {
	h := NewPageHandler(nil)

	src := "| Vecka | Säsong |\n|---|---|\n| 27 | hög |\n"
	html, err := h.render(src)
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>27</td>")
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"styrelsen", "gast-lagenhet", "regler-2025", "a"}
	for _, s := range valid {
		assert.True(t, slugPattern.MatchString(s), "expected %q to be valid", s)
	}
	invalid := []string{"", "Styrelsen", "gäst", "two words", "-leading", "trailing-", "a--b", "a/b"}
	for _, s := range invalid {
		assert.False(t, slugPattern.MatchString(s), "expected %q to be invalid", s)
	}
}
