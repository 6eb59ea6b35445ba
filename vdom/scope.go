package vdom

import "context"

// Scope is the per-instance state of a component: its hooks and child scopes.
type Scope struct {
	dom    *VirtualDom
	id     ScopeID
	parent *Scope

	hooks    []any
	hookIdx  int
	children map[string]*Scope
	visited  bool

	ctx    context.Context
	cancel context.CancelFunc
}

func newScope(d *VirtualDom, parent *Scope, id ScopeID, parentCtx context.Context) *Scope {
	ctx, cancel := context.WithCancel(parentCtx)
	return &Scope{
		dom:      d,
		id:       id,
		parent:   parent,
		children: make(map[string]*Scope),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ID returns the scope's identifier.
func (s *Scope) ID() ScopeID {
	return s.id
}

// Context is cancelled when the scope is dropped or the VirtualDom closes.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// MarkDirty schedules a re-render on behalf of this scope.
func (s *Scope) MarkDirty() {
	s.dom.MarkDirty(s.id)
}

// Child renders c in a child scope identified by key. The child keeps its
// hook state across renders as long as the parent renders it with the same
// key; children not rendered in a pass are dropped.
func (s *Scope) Child(key string, c Component) *Element {
	child, ok := s.children[key]
	if !ok {
		child = newScope(s.dom, s, s.dom.allocID(), s.ctx)
		s.children[key] = child
	}
	child.visited = true
	return child.render(c)
}

func (s *Scope) render(c Component) *Element {
	s.hookIdx = 0
	for _, child := range s.children {
		child.visited = false
	}

	el := c(s)

	for key, child := range s.children {
		if !child.visited {
			child.drop()
			delete(s.children, key)
		}
	}
	return el
}

func (s *Scope) drop() {
	for _, child := range s.children {
		child.drop()
	}
	s.cancel()
}
