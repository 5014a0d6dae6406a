package command

import (
	"iter"
	"slices"
	"sync"
)

// MacroParameter is the redo parameter of a macro context: the root input
// and one nested context per nested command, in declaration order. Its
// shape is fixed once created; the nested contexts progress in place.
type MacroParameter struct {
	Root   Input
	Nested []*Context

	mu        sync.Mutex
	completed []*Context
}

// NewMacroParameter bundles root and nested.
func NewMacroParameter(root Input, nested []*Context) *MacroParameter {
	return &MacroParameter{
		Root:   root,
		Nested: nested,
	}
}

// Forward iterates nested contexts front to back.
func (p *MacroParameter) Forward() iter.Seq2[int, *Context] {
	return slices.All(p.Nested)
}

// Backward iterates nested contexts back to front.
func (p *MacroParameter) Backward() iter.Seq2[int, *Context] {
	return slices.Backward(p.Nested)
}

// NestedFor returns the first nested context produced by the command with id.
func (p *MacroParameter) NestedFor(id string) (*Context, bool) {
	for _, c := range p.Nested {
		if c.Command() != nil && c.Command().ID() == id {
			return c, true
		}
	}
	return nil, false
}

// Completed returns the nested contexts that reached Done, in completion order.
func (p *MacroParameter) Completed() []*Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.completed)
}

func (p *MacroParameter) markCompleted(c *Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = append(p.completed, c)
}
