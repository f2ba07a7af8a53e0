// Package elem provides an icon-only button component.
package elem

// IconButtonTokenAttr is the attribute carrying the icon button's variant tokens.
const IconButtonTokenAttr = "data-icon-btn"

// IconButtonOptions configures icon button creation.
//
// Label is required: an icon-only button has no visible text, so its
// accessible name must come from a Labeling value. The Labeling type admits
// exactly one strategy at a time; a nil Label is a caller error and yields a
// button with no accessible name.
type IconButtonOptions struct {
	// Label provides the accessible name (aria-label or aria-labelledby).
	Label Labeling

	// Variant axes composed into the data-icon-btn token string.
	Size  string
	Color string
	// Classes is a raw token passthrough appended after the variant axes.
	Classes string

	Disabled       *bool
	DisabledLegacy *bool

	OnActivate     func()
	OnPointerDown  func()
	OnKeyDown      func()
	OnPointerEnter func()
	OnPointerLeave func()

	ClassName string
	Style     Style
	Extra     map[string]any
	Ref       any
}

// IconButton is a button whose only content is an icon. It shares the
// button's interaction contract but carries its own token attribute and a
// mandatory accessible label.
type IconButton struct {
	core Core
	opts IconButtonOptions
}

// NewIconButton creates a new icon button.
func NewIconButton(opts IconButtonOptions) *IconButton {
	return &IconButton{opts: opts}
}

// SetDisabled sets the supported disabled flag.
func (b *IconButton) SetDisabled(v bool) {
	b.opts.Disabled = Bool(v)
}

// Disabled reports the canonical disabled state.
func (b *IconButton) Disabled() bool {
	return ResolveDisabled(DisabledFlags{Current: b.opts.Disabled, Legacy: b.opts.DisabledLegacy})
}

func (b *IconButton) config() ElementConfig {
	o := b.opts
	return ElementConfig{
		Tokens: TokenSlots{
			Size:  o.Size,
			Color: o.Color,
			Raw:   o.Classes,
		},
		TokenAttr: IconButtonTokenAttr,
		Disabled:  DisabledFlags{Current: o.Disabled, Legacy: o.DisabledLegacy},
		Handlers: Handlers{
			Activate:    o.OnActivate,
			PointerDown: o.OnPointerDown,
			KeyDown:     o.OnKeyDown,
		},
		Hover:     Hover{OnPointerEnter: o.OnPointerEnter, OnPointerLeave: o.OnPointerLeave},
		Label:     o.Label,
		ClassName: o.ClassName,
		Style:     o.Style,
		Extra:     o.Extra,
		Ref:       o.Ref,
	}
}

// Request builds the render request for this render pass.
func (b *IconButton) Request() RenderRequest {
	return b.core.Build("button", b.config())
}

// Render builds the request and dispatches it to the host registry.
func (b *IconButton) Render(children ...VNode) VNode {
	return RenderAs(b.Request(), children...)
}

// Click triggers activation through the gate.
func (b *IconButton) Click() {
	if fn := b.core.GatedHandlers(b.config())[Activate]; fn != nil {
		fn()
	}
}

// HandleKey processes a key press. Enter and Space activate.
// Returns true if the key was consumed.
func (b *IconButton) HandleKey(key string) bool {
	switch key {
	case Enter, EnterLF, Space:
		handlers := b.core.GatedHandlers(b.config())
		if fn := handlers[KeyDown]; fn != nil {
			fn()
		}
		if fn := handlers[Activate]; fn != nil {
			fn()
		}
		return true
	}
	return false
}
