// Package elem provides an HTML host adapter for render requests.
package elem

import (
	"context"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Void elements never take children or a closing tag.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
}

// HTML renders the request as an HTML element. Attributes are written in
// sorted order so the output is byte-stable across renders with equal
// input. Function handlers have no HTML serialization and are omitted;
// hosts that wire events attach them out of band.
//
// aria-* attributes with boolean values render as "true"/"false" (the
// declarative form assistive technology reads); other boolean attributes
// render bare when true and are omitted when false.
func HTML(req RenderRequest, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<")
		sb.WriteString(req.ElementType)

		if req.ClassName != "" {
			writeAttr(&sb, "class", req.ClassName)
		}
		if len(req.Style) > 0 {
			writeAttr(&sb, "style", inlineStyle(req.Style))
		}

		names := make([]string, 0, len(req.Attributes))
		for name := range req.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			switch v := req.Attributes[name].(type) {
			case nil:
				// No contribution.
			case string:
				writeAttr(&sb, name, v)
			case bool:
				if strings.HasPrefix(name, "aria-") {
					writeAttr(&sb, name, boolString(v))
				} else if v {
					sb.WriteString(" ")
					sb.WriteString(name)
				}
			default:
				writeAttr(&sb, name, fmt.Sprint(v))
			}
		}

		sb.WriteString(">")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if voidElements[req.ElementType] {
			return nil
		}

		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</"+req.ElementType+">")
		return err
	})
}

// Text returns a templ component writing escaped text, handy as a child of HTML.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html.EscapeString(s))
		return err
	})
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`"`)
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// inlineStyle flattens a Style map into an inline style attribute value,
// sorted for deterministic output.
func inlineStyle(s Style) string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+s[k])
	}
	return strings.Join(parts, "; ")
}
