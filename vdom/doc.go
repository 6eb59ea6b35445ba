// Package vdom is the small reactive engine domterm drives.
//
// An application is a Component: a function from a Scope to an Element tree.
// Components keep state between renders through hooks (UseSignal, UseFuture)
// and compose through Scope.Child. Hooks are matched by call order, so a
// component must call the same hooks in the same order on every render.
//
// A VirtualDom never renders on its own. Writing a signal, or calling
// MarkDirty, records pending work and wakes whoever is selecting on Ready.
// The owner then calls RenderImmediate, which re-runs the root component and
// replaces the tree. There is no diffing: the whole tree is rebuilt each time
// any scope is dirty.
//
// Rendering happens on the caller's goroutine. Futures run on their own
// goroutines and must only talk to the tree through signals. Close cancels
// every future and waits for them to return.
package vdom
