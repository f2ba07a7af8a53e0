// Package elem provides a link component.
package elem

// LinkTokenAttr is the attribute carrying the link's variant tokens.
const LinkTokenAttr = "data-link"

// LinkOptions configures link creation.
type LinkOptions struct {
	// Href is the navigation target.
	Href string

	// Variant axes composed into the data-link token string.
	Size  string
	Color string
	// Classes is a raw token passthrough appended after the variant axes.
	Classes string

	Disabled       *bool
	DisabledLegacy *bool

	// OnActivate is called when the link is activated (click or Enter).
	OnActivate     func()
	OnPointerDown  func()
	OnPointerEnter func()
	OnPointerLeave func()

	ClassName string
	Style     Style
	Extra     map[string]any
	Ref       any
}

// Link is a navigation element delegating its state to the engine. A
// disabled link keeps its accessible name and hover affordance but drops
// navigation: the href attribute is withheld and activation is gated.
type Link struct {
	core Core
	opts LinkOptions
}

// NewLink creates a new link.
func NewLink(opts LinkOptions) *Link {
	return &Link{opts: opts}
}

// Href returns the link's navigation target.
func (l *Link) Href() string {
	return l.opts.Href
}

// SetHref updates the link's navigation target.
func (l *Link) SetHref(href string) {
	l.opts.Href = href
}

// SetDisabled sets the supported disabled flag.
func (l *Link) SetDisabled(v bool) {
	l.opts.Disabled = Bool(v)
}

// Disabled reports the canonical disabled state.
func (l *Link) Disabled() bool {
	return ResolveDisabled(DisabledFlags{Current: l.opts.Disabled, Legacy: l.opts.DisabledLegacy})
}

func (l *Link) config() ElementConfig {
	o := l.opts

	extra := make(map[string]any, len(o.Extra)+1)
	for k, v := range o.Extra {
		extra[k] = v
	}
	if o.Href != "" && !l.Disabled() {
		extra["href"] = o.Href
	}

	return ElementConfig{
		Tokens: TokenSlots{
			Size:  o.Size,
			Color: o.Color,
			Raw:   o.Classes,
		},
		TokenAttr: LinkTokenAttr,
		Disabled:  DisabledFlags{Current: o.Disabled, Legacy: o.DisabledLegacy},
		Handlers: Handlers{
			Activate:    o.OnActivate,
			PointerDown: o.OnPointerDown,
		},
		Hover:     Hover{OnPointerEnter: o.OnPointerEnter, OnPointerLeave: o.OnPointerLeave},
		ClassName: o.ClassName,
		Style:     o.Style,
		Extra:     extra,
		Ref:       o.Ref,
	}
}

// Request builds the render request for this render pass.
func (l *Link) Request() RenderRequest {
	return l.core.Build("a", l.config())
}

// Render builds the request and dispatches it to the host registry.
func (l *Link) Render(children ...VNode) VNode {
	return RenderAs(l.Request(), children...)
}

// Activate triggers the link's activation through the gate.
func (l *Link) Activate() {
	if fn := l.core.GatedHandlers(l.config())[Activate]; fn != nil {
		fn()
	}
}

// HandleKey processes a key press. Enter activates; links do not respond to
// Space. Returns true if the key was consumed.
func (l *Link) HandleKey(key string) bool {
	switch key {
	case Enter, EnterLF:
		l.Activate()
		return true
	}
	return false
}
