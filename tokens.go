// Package elem provides attribute token composition for style-variant selection.
package elem

import "strings"

// TokenSlots holds one optional token per variant axis. Declaration order
// fixes the output order: composition walks the axes top to bottom, so the
// result is deterministic no matter how the caller assembled the value.
type TokenSlots struct {
	Size    string
	Block   string
	Variant string
	Color   string
	// Raw is a caller-supplied passthrough and may carry several
	// whitespace-separated tokens.
	Raw string
}

// Compose merges the slots into a single space-separated token string for
// attribute-based variant selection. The boolean is false when no slot
// contributed, so callers can skip emitting the attribute entirely instead
// of emitting an empty one.
//
// A token appearing on more than one axis is preserved: the styling layer's
// "contains token" matching is order- and duplicate-insensitive, so
// composition only guarantees order, not uniqueness. The output never has
// leading, trailing, or consecutive spaces.
func (s TokenSlots) Compose() (string, bool) {
	slots := [...]string{s.Size, s.Block, s.Variant, s.Color, s.Raw}

	var tokens []string
	for _, slot := range slots {
		if slot == "" {
			continue
		}
		// Fields splits multi-token slots and drops stray whitespace.
		tokens = append(tokens, strings.Fields(slot)...)
	}

	if len(tokens) == 0 {
		return "", false
	}
	return strings.Join(tokens, " "), true
}
