// Package elem provides accessible-label configuration for icon-only elements.
package elem

// Labeling is the accessible-label configuration for elements without a
// visible text label. Exactly two implementations exist, LabelText and
// LabelledBy, and the interface is sealed, so supplying both labeling
// strategies at once is unrepresentable rather than merely checked.
//
// A nil Labeling contributes no attribute. Components that require a label
// (IconButton) document nil as a caller error; the engine does not warn at
// runtime because it performs no I/O during a render pass.
type Labeling interface {
	labelAttribute() (name, value string)
}

// LabelText supplies the accessible name directly. Rendered as aria-label.
type LabelText string

func (l LabelText) labelAttribute() (string, string) {
	return "aria-label", string(l)
}

// LabelledBy references the id of an element that provides the accessible
// name. Rendered as aria-labelledby.
type LabelledBy string

func (l LabelledBy) labelAttribute() (string, string) {
	return "aria-labelledby", string(l)
}
