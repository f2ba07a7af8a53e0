// Package elem provides disabled-state resolution for interactive elements.
package elem

// DisabledFlags carries the two overlapping disabled inputs a component may
// receive. Both are optional; nil means "not specified". The flags are
// recomputed from component options every render pass and never persisted.
type DisabledFlags struct {
	// Current is the supported disabled flag.
	Current *bool
	// Legacy is the deprecated disabled flag kept for older callers.
	Legacy *bool
}

// ResolveDisabled reduces the flag pair to the canonical disabled boolean.
// Current always wins when set, even when false: a caller can explicitly
// re-enable an element that a legacy code path marked disabled. With neither
// flag set the element is enabled.
func ResolveDisabled(f DisabledFlags) bool {
	if f.Current != nil {
		return *f.Current
	}
	if f.Legacy != nil {
		return *f.Legacy
	}
	return false
}

// Bool returns a pointer to v, for filling DisabledFlags from literals.
func Bool(v bool) *bool {
	return &v
}
