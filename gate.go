// Package elem provides the interaction gate that no-ops handlers while disabled.
package elem

import "reflect"

// HandlerName identifies a gated interaction slot.
type HandlerName string

// Handler slots managed by the gate.
const (
	// Activate is the primary activation handler (click, Enter, Space).
	Activate HandlerName = "activate"
	// PointerDown fires on pointer press.
	PointerDown HandlerName = "pointerdown"
	// KeyDown fires on key press.
	KeyDown HandlerName = "keydown"
)

// Handlers maps handler names to callbacks. Pointer-enter/leave are not part
// of this set: hover feedback stays live on disabled elements, so consumers
// carry hover callbacks through Hover instead.
type Handlers map[HandlerName]func()

// Hover carries the ungated hover callbacks. They are forwarded verbatim
// whether or not the element is disabled, so a disabled element can still
// show a hover affordance or trigger a tooltip.
type Hover struct {
	OnPointerEnter func()
	OnPointerLeave func()
}

// Noop is the shared no-op every gated handler resolves to while disabled.
// It carries no state and is never mutated, so the single reference is safe
// to share across every gate instance and every render pass.
var Noop = func() {}

var noopID = handlerID(Noop)

// IsNoop reports whether fn is the shared no-op.
func IsNoop(fn func()) bool {
	return fn != nil && handlerID(fn) == noopID
}

// handlerID returns the identity of a callback for cache comparison. nil
// maps to zero so absent handlers compare equal across renders.
func handlerID(fn func()) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

// Gate replaces an element's handlers with Noop while the element is
// disabled. It has exactly two states, enabled and disabled, and transitions
// only when the resolved disabled boolean changes.
//
// Apply memoizes on the last (disabled, per-handler identity) input and
// returns the previously built set while nothing changed, so a host
// framework re-invoking the gate on every render pass sees a referentially
// stable output and does not treat the element as changed.
//
// Each element instance owns one Gate. The zero value is ready to use.
type Gate struct {
	lastDisabled bool
	source       Handlers
	gated        Handlers
	valid        bool
}

// Apply returns the gated handler set for the given disabled state.
//
// Disabled: every handler present in the descriptor maps to the shared Noop.
// Enabled: every handler passes through unchanged, same reference.
//
// Handlers are compared by identity, not behavior; the caller is expected to
// keep handler references stable across renders. Any change to the disabled
// state or to any handler identity regenerates the entire set, never part of
// it. Exceptions raised by a handler propagate to whoever invoked it; the
// gate itself performs no I/O and cannot fail.
func (g *Gate) Apply(disabled bool, h Handlers) Handlers {
	if g.valid && disabled == g.lastDisabled && sameDescriptor(g.source, h) {
		return g.gated
	}

	gated := make(Handlers, len(h))
	for name, fn := range h {
		if fn == nil {
			continue
		}
		if disabled {
			gated[name] = Noop
		} else {
			gated[name] = fn
		}
	}

	// Keep a snapshot of the descriptor so callers mutating their map in
	// place still invalidate the cache.
	g.lastDisabled = disabled
	g.source = snapshot(h)
	g.gated = gated
	g.valid = true
	return gated
}

func snapshot(h Handlers) Handlers {
	s := make(Handlers, len(h))
	for name, fn := range h {
		s[name] = fn
	}
	return s
}

func sameDescriptor(a, b Handlers) bool {
	if len(a) != len(b) {
		return false
	}
	for name, fn := range b {
		prev, ok := a[name]
		if !ok || handlerID(prev) != handlerID(fn) {
			return false
		}
	}
	return true
}
