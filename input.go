// Package elem provides a text input component.
package elem

// InputTokenAttr is the attribute carrying the input's variant tokens.
const InputTokenAttr = "data-input"

// InputOptions configures input creation.
type InputOptions struct {
	// Type is the input type attribute; empty means "text".
	Type string
	// Value and Placeholder map to the attributes of the same name.
	Value       string
	Placeholder string

	// Size feeds the data-input token string; Classes is a raw passthrough.
	Size    string
	Classes string

	Disabled       *bool
	DisabledLegacy *bool

	// Label names the input when no visible label element exists.
	Label Labeling

	// OnKeyDown is gated: a disabled input receives no key callbacks but
	// stays focusable and discoverable (aria-disabled, not removed from
	// the interaction order).
	OnKeyDown      func()
	OnPointerDown  func()
	OnPointerEnter func()
	OnPointerLeave func()

	ClassName string
	Style     Style
	Extra     map[string]any
	Ref       any
}

// Input is a text entry element delegating its state to the engine.
type Input struct {
	core Core
	opts InputOptions
}

// NewInput creates a new input.
func NewInput(opts InputOptions) *Input {
	return &Input{opts: opts}
}

// SetDisabled sets the supported disabled flag.
func (in *Input) SetDisabled(v bool) {
	in.opts.Disabled = Bool(v)
}

// SetValue updates the input's value for the next render pass.
func (in *Input) SetValue(v string) {
	in.opts.Value = v
}

// Value returns the current value.
func (in *Input) Value() string {
	return in.opts.Value
}

// Disabled reports the canonical disabled state.
func (in *Input) Disabled() bool {
	return ResolveDisabled(DisabledFlags{Current: in.opts.Disabled, Legacy: in.opts.DisabledLegacy})
}

func (in *Input) config() ElementConfig {
	o := in.opts

	typ := o.Type
	if typ == "" {
		typ = "text"
	}

	extra := make(map[string]any, len(o.Extra)+3)
	for k, v := range o.Extra {
		extra[k] = v
	}
	extra["type"] = typ
	if o.Value != "" {
		extra["value"] = o.Value
	}
	if o.Placeholder != "" {
		extra["placeholder"] = o.Placeholder
	}

	return ElementConfig{
		Tokens: TokenSlots{
			Size: o.Size,
			Raw:  o.Classes,
		},
		TokenAttr: InputTokenAttr,
		Disabled:  DisabledFlags{Current: o.Disabled, Legacy: o.DisabledLegacy},
		Handlers: Handlers{
			KeyDown:     o.OnKeyDown,
			PointerDown: o.OnPointerDown,
		},
		Hover:     Hover{OnPointerEnter: o.OnPointerEnter, OnPointerLeave: o.OnPointerLeave},
		Label:     o.Label,
		ClassName: o.ClassName,
		Style:     o.Style,
		Extra:     extra,
		Ref:       o.Ref,
	}
}

// Request builds the render request for this render pass.
func (in *Input) Request() RenderRequest {
	return in.core.Build("input", in.config())
}

// Render builds the request and dispatches it to the host registry.
func (in *Input) Render(children ...VNode) VNode {
	return RenderAs(in.Request(), children...)
}

// HandleKey routes a key press through the gate.
// Returns true if the key reached the key handler.
func (in *Input) HandleKey(key string) bool {
	if fn := in.core.GatedHandlers(in.config())[KeyDown]; fn != nil {
		fn()
		return true
	}
	return false
}
