package chain

// Handler handles a request by either resolving it or delegating it further down a chain.
// ok reports whether a result was produced; a chain whose last link forwards has no result.
type Handler[Req any, Resp any] interface {
	Handle(req Req) (resp Resp, ok bool)
}

// The HandlerFunc type is an adapter to allow the use of ordinary functions as Handler.
// If f is a function with the appropriate signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc[Req any, Resp any] func(req Req) (Resp, bool)

// Handle calls f(req).
func (f HandlerFunc[Req, Resp]) Handle(req Req) (Resp, bool) {
	return f(req)
}

var _ Handler[any, any] = (*Link[any, any])(nil)

// Link is one node of a chain of responsibility. The successor is fixed when the link is
// created, so a chain is a singly linked list that cannot contain cycles.
//
// A nil *Link is an empty chain: it handles nothing.
//
// Links are immutable and hold no per-request state, but nothing is synchronized:
// the rules decide whether the chain can be shared.
type Link[Req any, Resp any] struct {
	rule    Rule[Req, Resp]
	next    *Link[Req, Resp]
	options *option
}

// New assembles rules into a chain evaluated front to back.
// New panics if a rule is nil, use Builder to get an error instead.
func New[Req any, Resp any](rules ...Rule[Req, Resp]) *Link[Req, Resp] {
	var head *Link[Req, Resp]
	for i := len(rules) - 1; i >= 0; i-- {
		head = NewLink(rules[i], head)
	}
	return head
}

// NewLink creates a link that applies rule and forwards to next. next may be nil.
func NewLink[Req any, Resp any](rule Rule[Req, Resp], next *Link[Req, Resp]) *Link[Req, Resp] {
	if rule == nil {
		panic(ErrRuleNil)
	}
	return &Link[Req, Resp]{rule: rule, next: next, options: newOption()}
}

// With returns a copy of the head link configured with opts.
// Options of the link a request enters through apply to the whole evaluation.
func (l *Link[Req, Resp]) With(opts ...Option) *Link[Req, Resp] {
	if l == nil {
		return nil
	}
	copied := new(Link[Req, Resp])
	*copied = *l
	copied.options = newOption(opts...)
	return copied
}

// Handle evaluates the chain for req. Each link visited decides on its own; the first terminal
// decision is returned. Forwarding past the last link yields the zero Resp and false.
func (l *Link[Req, Resp]) Handle(req Req) (Resp, bool) {
	if l == nil {
		var resp Resp
		return resp, false
	}
	return l.handle(req, 0, l.options)
}

func (l *Link[Req, Resp]) handle(req Req, index int, o *option) (Resp, bool) {
	if l == nil {
		var resp Resp
		return resp, false
	}
	decision := l.rule.Decide(req)
	o.observe(Visit{Chain: o.Name, Index: index, Terminal: decision.terminal, Result: decision.resp})
	if decision.terminal {
		return decision.resp, true
	}
	return l.next.handle(req, index+1, o)
}

// Next returns the successor, nil for the last link.
func (l *Link[Req, Resp]) Next() *Link[Req, Resp] {
	if l == nil {
		return nil
	}
	return l.next
}

// Len returns the number of links from l to the end of the chain.
func (l *Link[Req, Resp]) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Name returns the name set by WithName.
func (l *Link[Req, Resp]) Name() string {
	if l == nil {
		return ""
	}
	return l.options.Name
}
