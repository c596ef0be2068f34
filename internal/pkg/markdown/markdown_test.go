package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBasicMarkdown(t *testing.T) {
	out := string(Render("# Title\n\nsome **bold** text"))
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderGFMTable(t *testing.T) {
	out := string(Render("| a | b |\n|---|---|\n| 1 | 2 |"))
	assert.Contains(t, out, "<table>")
}

func TestRenderEscapesRawHTML(t *testing.T) {
	out := string(Render(`<script>alert("x")</script>`))
	assert.False(t, strings.Contains(out, "<script>"))
}

func TestRenderEmptyInput(t *testing.T) {
	out := string(Render(""))
	assert.Equal(t, "", strings.TrimSpace(out))
}
