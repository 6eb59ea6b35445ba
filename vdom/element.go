package vdom

import (
	"fmt"
	"strings"
)

// TagText marks a text leaf.
const TagText = "#text"

// Element is one node of the tree a component returns.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Content  string
	Children []*Element
}

// El creates an element with the given tag and children.
func El(tag string, children ...*Element) *Element {
	return &Element{Tag: tag, Children: children}
}

// Div creates a div element.
func Div(children ...*Element) *Element {
	return El("div", children...)
}

// Span creates a span element.
func Span(children ...*Element) *Element {
	return El("span", children...)
}

// Text creates a text leaf.
func Text(s string) *Element {
	return &Element{Tag: TagText, Content: s}
}

// Textf creates a formatted text leaf.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

// Attr sets an attribute and returns the element for chaining.
func (e *Element) Attr(key, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
	return e
}

// Class appends class names to the class attribute.
func (e *Element) Class(names ...string) *Element {
	classes := strings.Fields(e.Attrs["class"])
	for _, name := range names {
		classes = append(classes, strings.Fields(name)...)
	}
	return e.Attr("class", strings.Join(classes, " "))
}

// HasClass reports whether name is one of the element's classes.
func (e *Element) HasClass(name string) bool {
	if e == nil {
		return false
	}
	for _, c := range strings.Fields(e.Attrs["class"]) {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds children and returns the element for chaining. Nil children
// are skipped so conditional rendering can pass nil.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}
