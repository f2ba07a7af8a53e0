// Package elem provides the style value merged into render requests.
package elem

// Style is an open keyed style object. Hosts decide what the keys mean:
// inline style properties for the HTML adapter, style props for a VNode
// tree, CSS custom properties for a themed design system.
type Style map[string]string

// Merge creates a new Style by combining two styles. The overlay takes
// precedence key by key; neither input is modified. Merging two empty
// styles yields nil so that no style is emitted at all.
func (base Style) Merge(overlay Style) Style {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}

	result := make(Style, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overlay {
		result[k] = v
	}
	return result
}
