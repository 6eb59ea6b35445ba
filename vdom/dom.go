package vdom

import (
	"context"
	"sync"
)

// ScopeID identifies a component instance.
type ScopeID uint64

// RootScope is the scope of the application's root component.
const RootScope ScopeID = 0

// Component renders an element tree for its scope.
type Component func(*Scope) *Element

// VirtualDom hosts an application's component tree.
type VirtualDom struct {
	app  Component
	root *Scope

	mu     sync.Mutex
	nextID ScopeID
	dirty  map[ScopeID]struct{}
	tree   *Element
	epoch  uint64
	closed bool

	ready  chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a VirtualDom for app. Nothing is rendered until the root is
// marked dirty and RenderImmediate is called.
func New(app Component) *VirtualDom {
	ctx, cancel := context.WithCancel(context.Background())
	d := &VirtualDom{
		app:    app,
		nextID: RootScope + 1,
		dirty:  make(map[ScopeID]struct{}),
		ready:  make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
	}
	d.root = newScope(d, nil, RootScope, ctx)
	return d
}

// MarkDirty records that scope id needs to be rendered again and wakes the
// owner. It is safe to call from any goroutine.
func (d *VirtualDom) MarkDirty(id ScopeID) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.dirty[id] = struct{}{}
	d.mu.Unlock()

	select {
	case d.ready <- struct{}{}:
	default:
	}
}

// HasWork reports whether any scope is dirty.
func (d *VirtualDom) HasWork() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.dirty) > 0
}

// Ready returns a channel that receives after new work has been recorded.
// A receive is a hint; check HasWork before relying on it.
func (d *VirtualDom) Ready() <-chan struct{} {
	return d.ready
}

// WaitForWork blocks until there is pending work or ctx is done.
func (d *VirtualDom) WaitForWork(ctx context.Context) error {
	for {
		if d.HasWork() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.ready:
		}
	}
}

// RenderImmediate applies all pending work by re-rendering the root
// component, and returns the resulting tree. Without pending work it returns
// the current tree untouched.
func (d *VirtualDom) RenderImmediate() *Element {
	d.mu.Lock()
	if d.closed || len(d.dirty) == 0 {
		tree := d.tree
		d.mu.Unlock()
		return tree
	}
	clear(d.dirty)
	d.epoch++
	d.mu.Unlock()

	select {
	case <-d.ready:
	default:
	}

	// Signals written during the render mark the scope dirty again and are
	// picked up by the next pass.
	tree := d.root.render(d.app)

	d.mu.Lock()
	d.tree = tree
	d.mu.Unlock()
	return tree
}

// Tree returns the most recently rendered tree.
func (d *VirtualDom) Tree() *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tree
}

// Text returns the current tree laid out as plain text.
func (d *VirtualDom) Text() string {
	return Flatten(d.Tree())
}

// Epoch counts how many times pending work has been applied.
func (d *VirtualDom) Epoch() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.epoch
}

// Close cancels every future and waits for them to return. The VirtualDom
// accepts no further work afterwards.
func (d *VirtualDom) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	clear(d.dirty)
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}

func (d *VirtualDom) allocID() ScopeID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	return id
}

func (d *VirtualDom) spawn(ctx context.Context, task func(context.Context)) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		task(ctx)
	}()
}
