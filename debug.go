// Package elem provides debug printing for render requests.
package elem

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// SprintRequest returns a readable dump of a render request for debugging.
func SprintRequest(req RenderRequest) string {
	var sb strings.Builder
	FprintRequest(&sb, req)
	return sb.String()
}

// FprintRequest writes a readable dump of a render request to the given writer.
func FprintRequest(w io.Writer, req RenderRequest) {
	fmt.Fprintf(w, "%s class=%q\n", req.ElementType, req.ClassName)

	for _, k := range sortedKeys(req.Style) {
		fmt.Fprintf(w, "  style %s=%q\n", k, req.Style[k])
	}

	attrNames := make([]string, 0, len(req.Attributes))
	for name := range req.Attributes {
		attrNames = append(attrNames, name)
	}
	sort.Strings(attrNames)
	for _, name := range attrNames {
		fmt.Fprintf(w, "  attr %s=%v\n", name, req.Attributes[name])
	}

	handlerNames := make([]string, 0, len(req.Handlers))
	for name := range req.Handlers {
		handlerNames = append(handlerNames, string(name))
	}
	sort.Strings(handlerNames)
	for _, name := range handlerNames {
		state := "live"
		if IsNoop(req.Handlers[HandlerName(name)]) {
			state = "noop"
		}
		fmt.Fprintf(w, "  handler %s (%s)\n", name, state)
	}

	if req.Hover.OnPointerEnter != nil || req.Hover.OnPointerLeave != nil {
		fmt.Fprintln(w, "  hover attached")
	}
	if req.Ref != nil {
		fmt.Fprintf(w, "  ref %T\n", req.Ref)
	}
}

func sortedKeys(s Style) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
