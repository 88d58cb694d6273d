package docs

import (
	"strings"
	"testing"
)

func TestListCoversAllModels(t *testing.T) {
	keys := List()
	if len(keys) != 3 {
		t.Fatalf("Expected 3 explainers, got %d", len(keys))
	}
	// Sorted order.
	if keys[0] != ModelChangingGrowth || keys[1] != ModelConstantGrowth || keys[2] != ModelNoGrowth {
		t.Errorf("Unexpected key order: %v", keys)
	}
}

func TestRenderHTML(t *testing.T) {
	for _, model := range List() {
		html, err := RenderHTML(model)
		if err != nil {
			t.Fatalf("RenderHTML(%s): %v", model, err)
		}
		if !strings.Contains(html, "<h2") {
			t.Errorf("%s: expected an <h2> heading in rendered HTML", model)
		}
	}

	if _, err := RenderHTML("three_stage"); err == nil {
		t.Error("Expected an error for an unknown model key")
	}
}

func TestCleanMarkdownStripsFences(t *testing.T) {
	in := "```markdown\n## Title\nBody\n```"
	if got := CleanMarkdown(in); got != "## Title\nBody" {
		t.Errorf("CleanMarkdown = %q", got)
	}
	// Unfenced input passes through trimmed.
	if got := CleanMarkdown("  plain  "); got != "plain" {
		t.Errorf("CleanMarkdown = %q", got)
	}
}
