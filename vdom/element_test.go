package vdom

import "testing"

func TestElementClassAndAttr(t *testing.T) {
	e := Div().Class("flex-row", "status  bar").Attr("gap", "2")
	for _, name := range []string{"flex-row", "status", "bar"} {
		if !e.HasClass(name) {
			t.Fatalf("HasClass(%q) = false, classes %q", name, e.Attrs["class"])
		}
	}
	if e.HasClass("flex") {
		t.Fatalf("HasClass(flex) = true, want false")
	}
	if e.Attrs["gap"] != "2" {
		t.Fatalf("gap = %q, want 2", e.Attrs["gap"])
	}

	var nilEl *Element
	if nilEl.HasClass("x") {
		t.Fatalf("nil element should have no classes")
	}
}

func TestElementAppendSkipsNil(t *testing.T) {
	e := Div(Text("a")).Append(nil, Text("b"), nil)
	if len(e.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(e.Children))
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{name: "nil", el: nil, want: ""},
		{name: "text", el: Text("hello"), want: "hello"},
		{name: "single child", el: Div(Span(Text("x"))), want: "x"},
		{name: "stacked", el: Div(Text("ab"), Text("cd")), want: "ab\ncd"},
		{name: "row default gap", el: Div(Text("a"), Text("b")).Class("flex-row"), want: "a b"},
		{name: "row gap 3", el: Div(Text("a"), Text("b")).Class("flex-row").Attr("gap", "3"), want: "a   b"},
		{name: "row gap 0", el: Div(Text("a"), Text("b")).Class("flex-row").Attr("gap", "0"), want: "ab"},
		{name: "hidden", el: Div(Text("a"), Span(Text("b")).Class("hidden"), Text("c")).Class("flex-row"), want: "a c"},
		{name: "empty children", el: Div(Div(), Text("a")), want: "a"},
		{name: "formatted", el: Textf("up %ds", 5), want: "up 5s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.el); got != tt.want {
				t.Fatalf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}
