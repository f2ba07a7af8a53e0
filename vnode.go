// Package elem provides VNode construction from render requests.
package elem

import (
	"github.com/germtb/gox"
)

// VNode is an alias for gox.VNode - no wrapper needed.
type VNode = gox.VNode

// Props is an alias for gox.Props.
type Props = gox.Props

// BuildVNode spreads a render request into a VNode of the requested element
// type. Attributes (including the passthrough bag) are forwarded verbatim
// under their own names; the remaining request fields land under fixed prop
// names so host intrinsics can pick them up.
func BuildVNode(req RenderRequest, children ...VNode) VNode {
	props := Props{}
	for k, v := range req.Attributes {
		props[k] = v
	}
	if len(req.Style) > 0 {
		props["style"] = req.Style
	}
	if req.ClassName != "" {
		props["className"] = req.ClassName
	}
	if len(req.Handlers) > 0 {
		props["handlers"] = req.Handlers
	}
	if req.Hover.OnPointerEnter != nil || req.Hover.OnPointerLeave != nil {
		props["hover"] = req.Hover
	}
	if req.Ref != nil {
		props["ref"] = req.Ref
	}

	return gox.VNode{
		Type:     req.ElementType,
		Props:    props,
		Children: children,
	}
}

// CreateTextNode creates a text node, handy for element children.
func CreateTextNode(text string) VNode {
	return gox.VNode{
		Type:     gox.TextNodeType,
		Props:    gox.Props{"text": text, "content": text},
		Children: nil,
	}
}

// IsTextNode returns true if this is a text node.
func IsTextNode(v VNode) bool {
	s, ok := v.Type.(string)
	return ok && s == gox.TextNodeType
}
