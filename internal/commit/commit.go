// Package commit defers work until the request transaction has committed.
package commit

import (
	"context"
	"sync"
)

type hooksKey struct{}

// Hooks collects functions to run once the transaction commits.
type Hooks struct {
	mu  sync.Mutex
	fns []func(ctx context.Context)
}

// WithHooks returns a copy of ctx that collects after-commit hooks.
func WithHooks(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, hooksKey{}, h), h
}

// Run calls the collected hooks in registration order and clears them.
func (h *Hooks) Run(ctx context.Context) {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// Defer registers fn on the hooks carried by ctx. It reports false, and
// does nothing, when ctx carries no hooks.
func Defer(ctx context.Context, fn func(ctx context.Context)) bool {
	h, ok := ctx.Value(hooksKey{}).(*Hooks)
	if !ok {
		return false
	}
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
	return true
}

// AfterCommit runs fn after the transaction of ctx commits, or right away
// when ctx has no transaction hooks.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if !Defer(ctx, fn) {
		fn(ctx)
	}
}
