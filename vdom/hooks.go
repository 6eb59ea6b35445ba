package vdom

import (
	"context"
	"fmt"
	"sync"
)

func useHook[T any](s *Scope, create func() T) T {
	if s.hookIdx < len(s.hooks) {
		h, ok := s.hooks[s.hookIdx].(T)
		if !ok {
			panic(fmt.Sprintf("vdom: hook %d in scope %d changed from %T to %T between renders",
				s.hookIdx, s.id, s.hooks[s.hookIdx], *new(T)))
		}
		s.hookIdx++
		return h
	}
	h := create()
	s.hooks = append(s.hooks, h)
	s.hookIdx++
	return h
}

// Signal is a piece of component state. Writing it marks the owning scope
// dirty.
type Signal[T any] struct {
	mu    sync.RWMutex
	value T
	scope *Scope
}

// UseSignal returns the scope's signal for this call site, created from init
// on the first render.
func UseSignal[T any](s *Scope, init func() T) *Signal[T] {
	return useHook(s, func() *Signal[T] {
		return &Signal[T]{value: init(), scope: s}
	})
}

// Get returns the current value.
func (sg *Signal[T]) Get() T {
	sg.mu.RLock()
	defer sg.mu.RUnlock()
	return sg.value
}

// Set replaces the value and marks the scope dirty.
func (sg *Signal[T]) Set(v T) {
	sg.mu.Lock()
	sg.value = v
	sg.mu.Unlock()
	sg.scope.MarkDirty()
}

// Update applies fn to the value atomically and marks the scope dirty.
func (sg *Signal[T]) Update(fn func(T) T) {
	sg.mu.Lock()
	sg.value = fn(sg.value)
	sg.mu.Unlock()
	sg.scope.MarkDirty()
}

type future struct{}

// UseFuture starts task once, on the first render of the scope. The task's
// context is cancelled when the scope is dropped or the VirtualDom closes.
func UseFuture(s *Scope, task func(ctx context.Context)) {
	useHook(s, func() *future {
		s.dom.spawn(s.ctx, task)
		return &future{}
	})
}
