package chain

import (
	"context"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/patterns/builder"
)

var _ builder.Builder[*Link[any, any]] = (*Builder[any, any])(nil)

// Builder collects rules and assembles them into a chain.
// Unlike New it reports a nil rule as an error.
type Builder[Req any, Resp any] struct {
	rules []Rule[Req, Resp]
	opts  []Option
	err   error
}

func NewBuilder[Req any, Resp any](opts ...Option) *Builder[Req, Resp] {
	return &Builder[Req, Resp]{opts: opts}
}

// Append adds rule to the end of the chain.
func (b *Builder[Req, Resp]) Append(rule Rule[Req, Resp]) *Builder[Req, Resp] {
	if rule == nil {
		b.err = ErrRuleNil
		return b
	}
	b.rules = append(b.rules, rule)
	return b
}

// Prepend adds rule to the front of the chain.
func (b *Builder[Req, Resp]) Prepend(rule Rule[Req, Resp]) *Builder[Req, Resp] {
	if rule == nil {
		b.err = ErrRuleNil
		return b
	}
	b.rules = slicex.Insert(b.rules, 0, rule)
	return b
}

// Build returns the chain. The builder can be reused; chains already built are not affected.
func (b *Builder[Req, Resp]) Build(ctx context.Context) (*Link[Req, Resp], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.err != nil {
		return nil, b.err
	}
	if len(b.rules) == 0 {
		return nil, ErrChainEmpty
	}
	return New(b.rules...).With(b.opts...), nil
}
