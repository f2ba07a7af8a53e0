// Package elem provides host element registration and dispatch.
package elem

import "sync"

// RenderFunc renders a request (plus children) for one element type.
type RenderFunc func(req RenderRequest, children ...VNode) VNode

var (
	elementRegistry = make(map[string]RenderFunc)
	registryMu      sync.RWMutex
)

// RegisterElement registers a render function for an element type,
// overriding the generic builder for that type. This should be called from
// init() functions in host packages.
func RegisterElement(name string, fn RenderFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	elementRegistry[name] = fn
}

// GetElementRenderer returns the render function for an element type.
// Returns nil if none is registered.
func GetElementRenderer(name string) RenderFunc {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return elementRegistry[name]
}

// HasElementRenderer returns true if a renderer is registered for the given type.
func HasElementRenderer(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := elementRegistry[name]
	return ok
}

// RenderAs dispatches the request to the renderer registered for its element
// type. Unregistered types fall back to the generic VNode builder, so any
// requested element type renders; whether the type is meaningful is the
// host's concern, not the engine's.
func RenderAs(req RenderRequest, children ...VNode) VNode {
	registryMu.RLock()
	fn := elementRegistry[req.ElementType]
	registryMu.RUnlock()

	if fn != nil {
		return fn(req, children...)
	}
	return BuildVNode(req, children...)
}
