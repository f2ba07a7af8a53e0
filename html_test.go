package elem

import (
	"context"
	"strings"
	"testing"
)

func renderHTML(t *testing.T, req RenderRequest) string {
	t.Helper()

	comp := HTML(req)
	var sb strings.Builder
	if err := comp.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestHTMLButton(t *testing.T) {
	var core Core
	req := core.Build("button", ElementConfig{
		Tokens:    TokenSlots{Size: "sm"},
		TokenAttr: "data-btn",
		Disabled:  DisabledFlags{Current: Bool(true)},
		ClassName: "custom",
	})

	got := renderHTML(t, req)
	want := `<button class="disabled custom" aria-disabled="true" data-btn="sm"></button>`
	if got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestHTMLChildren(t *testing.T) {
	req := RenderRequest{ElementType: "button"}

	comp := HTML(req, Text("Save & close"))
	var sb strings.Builder
	if err := comp.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := `<button>Save &amp; close</button>`
	if sb.String() != want {
		t.Errorf("HTML = %q, want %q", sb.String(), want)
	}
}

func TestHTMLVoidElement(t *testing.T) {
	var core Core
	req := core.Build("input", ElementConfig{
		Tokens:    TokenSlots{Size: "lg"},
		TokenAttr: "data-input",
		Extra:     map[string]any{"type": "text", "value": "hi"},
	})

	got := renderHTML(t, req)
	want := `<input data-input="lg" type="text" value="hi">`
	if got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestHTMLEscapesAttributeValues(t *testing.T) {
	req := RenderRequest{
		ElementType: "a",
		Attributes:  map[string]any{"href": `/q?a=1&b="2"`},
	}

	got := renderHTML(t, req)
	if strings.Contains(got, `"2"></a>`) || !strings.Contains(got, "&amp;") {
		t.Errorf("attribute value not escaped: %q", got)
	}
}

func TestHTMLBooleanAttributes(t *testing.T) {
	req := RenderRequest{
		ElementType: "button",
		Attributes: map[string]any{
			"aria-disabled": false,
			"autofocus":     true,
			"hidden":        false,
		},
	}

	got := renderHTML(t, req)
	want := `<button aria-disabled="false" autofocus></button>`
	if got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestHTMLInlineStyleSorted(t *testing.T) {
	req := RenderRequest{
		ElementType: "button",
		Style:       Style{"--btn-fs": "1rem", "--btn-bg": "red"},
	}

	got := renderHTML(t, req)
	want := `<button style="--btn-bg: red; --btn-fs: 1rem"></button>`
	if got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestHTMLDeterministicAttributeOrder(t *testing.T) {
	req := RenderRequest{
		ElementType: "button",
		Attributes:  map[string]any{"b": "2", "a": "1", "c": "3"},
	}

	first := renderHTML(t, req)
	for i := 0; i < 20; i++ {
		if got := renderHTML(t, req); got != first {
			t.Fatalf("attribute order not deterministic: %q vs %q", got, first)
		}
	}
}
