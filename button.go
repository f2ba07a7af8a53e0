// Package elem provides a button component driven by the state engine.
package elem

// ButtonTokenAttr is the attribute carrying the button's variant tokens.
const ButtonTokenAttr = "data-btn"

// ButtonOptions configures button creation. All fields are optional.
type ButtonOptions struct {
	// Variant axes composed into the data-btn token string.
	Size    string
	Variant string
	Color   string
	// Block makes the button span its container; it contributes the
	// "block" token.
	Block bool
	// Classes is a raw token passthrough appended after the variant axes.
	// It may hold several space-separated tokens.
	Classes string

	// Disabled is the supported disabled flag.
	Disabled *bool
	// DisabledLegacy is the deprecated flag; Disabled wins when both are
	// set, even when Disabled is false.
	DisabledLegacy *bool

	// OnActivate is called on primary activation (click, Enter, Space).
	OnActivate func()
	// OnPointerDown is called on pointer press.
	OnPointerDown func()
	// OnKeyDown is called on key press, before activation.
	OnKeyDown func()
	// Hover callbacks stay live while the button is disabled.
	OnPointerEnter func()
	OnPointerLeave func()

	// ClassName is appended to the engine-derived class list.
	ClassName string
	// Style wins key by key over the component defaults.
	Style Style
	// Extra is forwarded verbatim to the host as additional attributes.
	Extra map[string]any
	// Ref is forwarded unchanged to the host rendering primitive.
	Ref any
}

// Button is a clickable element that delegates its disabled, handler and
// token state to the engine. Create one instance per rendered button and
// call Render (or Request) once per render pass.
type Button struct {
	core Core
	opts ButtonOptions
}

// NewButton creates a new button.
func NewButton(opts ButtonOptions) *Button {
	return &Button{opts: opts}
}

// SetDisabled sets the supported disabled flag.
func (b *Button) SetDisabled(v bool) {
	b.opts.Disabled = Bool(v)
}

// Disabled reports the canonical disabled state.
func (b *Button) Disabled() bool {
	return ResolveDisabled(b.flags())
}

func (b *Button) flags() DisabledFlags {
	return DisabledFlags{Current: b.opts.Disabled, Legacy: b.opts.DisabledLegacy}
}

func (b *Button) config() ElementConfig {
	o := b.opts

	block := ""
	if o.Block {
		block = "block"
	}

	return ElementConfig{
		Tokens: TokenSlots{
			Size:    o.Size,
			Block:   block,
			Variant: o.Variant,
			Color:   o.Color,
			Raw:     o.Classes,
		},
		TokenAttr: ButtonTokenAttr,
		Disabled:  b.flags(),
		Handlers: Handlers{
			Activate:    o.OnActivate,
			PointerDown: o.OnPointerDown,
			KeyDown:     o.OnKeyDown,
		},
		Hover:     Hover{OnPointerEnter: o.OnPointerEnter, OnPointerLeave: o.OnPointerLeave},
		ClassName: o.ClassName,
		Style:     o.Style,
		Extra:     o.Extra,
		Ref:       o.Ref,
	}
}

// Request builds the render request for this render pass.
func (b *Button) Request() RenderRequest {
	return b.core.Build("button", b.config())
}

// Render builds the request and dispatches it to the host registry.
func (b *Button) Render(children ...VNode) VNode {
	return RenderAs(b.Request(), children...)
}

// Click triggers the button's activation through the gate, so a disabled
// button ignores programmatic clicks too.
func (b *Button) Click() {
	if fn := b.core.GatedHandlers(b.config())[Activate]; fn != nil {
		fn()
	}
}

// HandleKey processes a key press. Enter and Space activate the button.
// Returns true if the key was consumed.
func (b *Button) HandleKey(key string) bool {
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
