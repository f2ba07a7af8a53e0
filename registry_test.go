package elem

import "testing"

func TestRenderAsGenericFallback(t *testing.T) {
	req := RenderRequest{
		ElementType: "summary", // nothing registered for it
		ClassName:   "custom",
		Attributes:  map[string]any{"data-btn": "sm"},
	}

	node := RenderAs(req, CreateTextNode("hi"))

	if node.Type != "summary" {
		t.Errorf("node type = %v, want %q", node.Type, "summary")
	}
	if node.Props["className"] != "custom" {
		t.Errorf("className prop = %v, want %q", node.Props["className"], "custom")
	}
	if node.Props["data-btn"] != "sm" {
		t.Errorf("data-btn prop = %v, want %q", node.Props["data-btn"], "sm")
	}
	if len(node.Children) != 1 || !IsTextNode(node.Children[0]) {
		t.Error("children should be forwarded to the node")
	}
}

func TestRegisterElementOverridesFallback(t *testing.T) {
	const name = "chip-test"

	var seen RenderRequest
	RegisterElement(name, func(req RenderRequest, children ...VNode) VNode {
		seen = req
		return VNode{Type: name}
	})

	if !HasElementRenderer(name) {
		t.Fatal("renderer should be registered")
	}

	req := RenderRequest{ElementType: name, ClassName: "x"}
	RenderAs(req)

	if seen.ClassName != "x" {
		t.Error("registered renderer should receive the request")
	}
	if GetElementRenderer("no-such-element") != nil {
		t.Error("unregistered type should have no renderer")
	}
}

func TestBuildVNodeSpreadsRequest(t *testing.T) {
	enter := func() {}
	handlers := Handlers{Activate: Noop}
	ref := &struct{}{}

	req := RenderRequest{
		ElementType: "button",
		Style:       Style{"--btn-fs": "1rem"},
		ClassName:   "disabled custom",
		Attributes:  map[string]any{"aria-disabled": true, "data-btn": "sm"},
		Handlers:    handlers,
		Hover:       Hover{OnPointerEnter: enter},
		Ref:         ref,
	}

	node := BuildVNode(req)

	if node.Props["aria-disabled"] != true {
		t.Error("attributes should be forwarded verbatim")
	}
	if node.Props["style"] == nil {
		t.Error("style should be present")
	}
	if node.Props["ref"] != any(ref) {
		t.Error("ref should be forwarded")
	}
	got, ok := node.Props["handlers"].(Handlers)
	if !ok || handlerID(got[Activate]) != handlerID(Noop) {
		t.Error("handlers should be forwarded as the gated set")
	}
	hover, ok := node.Props["hover"].(Hover)
	if !ok || handlerID(hover.OnPointerEnter) != handlerID(enter) {
		t.Error("hover callbacks should be forwarded ungated")
	}
}

func TestBuildVNodeOmitsEmptyFields(t *testing.T) {
	node := BuildVNode(RenderRequest{ElementType: "button"})

	for _, prop := range []string{"style", "className", "handlers", "hover", "ref"} {
		if _, ok := node.Props[prop]; ok {
			t.Errorf("empty request should not emit %q prop", prop)
		}
	}
}
