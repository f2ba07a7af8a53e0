// Package elem provides the render-request builder shared by all interactive components.
package elem

import "strings"

// AttrDisabled is the declarative disabled-state attribute. The resolved
// disabled value is surfaced here instead of removing the element from the
// interaction order, so assistive technology can still discover and focus
// the element.
const AttrDisabled = "aria-disabled"

// DisabledClassName is prepended to the class list of disabled elements.
// The explicit class name is appended after it, never replaced.
const DisabledClassName = "disabled"

// RenderRequest is the finalized bundle handed to a host rendering
// primitive: requested element type, merged style, class list, attribute
// map, gated handlers, ungated hover callbacks and the forwarded reference.
// It is built once per render pass, owned by the render call that produced
// it, and discarded after dispatch.
type RenderRequest struct {
	ElementType string
	Style       Style
	ClassName   string
	Attributes  map[string]any
	Handlers    Handlers
	Hover       Hover
	Ref         any
}

// ElementConfig is the bounded record of known inputs a component hands to
// Build, plus one opaque passthrough bag (Extra) forwarded verbatim to the
// host. Engine-owned attributes win when Extra collides with them.
type ElementConfig struct {
	// Tokens feeds the variant-token composition; TokenAttr names the
	// attribute the composed string is emitted under (e.g. "data-btn").
	// With an empty TokenAttr no token attribute is emitted.
	Tokens    TokenSlots
	TokenAttr string

	Disabled DisabledFlags

	Handlers Handlers
	Hover    Hover

	Label Labeling

	ClassName string
	// DefaultStyle holds component defaults; Style is the caller's explicit
	// style and wins key by key.
	DefaultStyle Style
	Style        Style

	Extra map[string]any
	Ref   any
}

// Core is the per-instance engine state every interactive component embeds.
// It owns the component's interaction gate. The zero value is ready to use.
type Core struct {
	gate Gate
}

// GatedHandlers resolves the disabled state and returns the gated handler
// set for cfg without building a full request. Components use it to route
// programmatic activation and key presses through the gate.
func (c *Core) GatedHandlers(cfg ElementConfig) Handlers {
	return c.gate.Apply(ResolveDisabled(cfg.Disabled), cfg.Handlers)
}

// Build assembles the render request for one render pass. Token composition,
// disabled resolution and handler gating run in that fixed order; the merge
// step depends on all three outputs being final. Build never fails: absent
// contributions simply produce no attribute.
func (c *Core) Build(elementType string, cfg ElementConfig) RenderRequest {
	tokens, hasTokens := cfg.Tokens.Compose()
	disabled := ResolveDisabled(cfg.Disabled)
	handlers := c.gate.Apply(disabled, cfg.Handlers)

	attrs := make(map[string]any, len(cfg.Extra)+3)
	for k, v := range cfg.Extra {
		attrs[k] = v
	}
	if hasTokens && cfg.TokenAttr != "" {
		attrs[cfg.TokenAttr] = tokens
	}
	if disabled {
		attrs[AttrDisabled] = true
	}
	if cfg.Label != nil {
		name, value := cfg.Label.labelAttribute()
		attrs[name] = value
	}

	className := cfg.ClassName
	if disabled {
		className = joinClasses(DisabledClassName, cfg.ClassName)
	}

	return RenderRequest{
		ElementType: elementType,
		Style:       cfg.DefaultStyle.Merge(cfg.Style),
		ClassName:   className,
		Attributes:  attrs,
		Handlers:    handlers,
		Hover:       cfg.Hover,
		Ref:         cfg.Ref,
	}
}

// joinClasses joins non-empty class names with single spaces.
func joinClasses(classes ...string) string {
	var parts []string
	for _, c := range classes {
		if c == "" {
			continue
		}
		parts = append(parts, strings.Fields(c)...)
	}
	return strings.Join(parts, " ")
}
