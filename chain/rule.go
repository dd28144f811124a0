package chain

import "github.com/go-leo/patterns/specification"

// Rule is the decision a single link takes about a request.
type Rule[Req any, Resp any] interface {
	Decide(req Req) Decision[Resp]
}

// The RuleFunc type is an adapter to allow the use of ordinary functions as Rule.
type RuleFunc[Req any, Resp any] func(req Req) Decision[Resp]

// Decide calls f(req).
func (f RuleFunc[Req, Resp]) Decide(req Req) Decision[Resp] {
	return f(req)
}

// Decision is either terminal, carrying the result of the chain, or a request to forward.
type Decision[Resp any] struct {
	resp     Resp
	terminal bool
}

// Resolve stops the chain with resp.
func Resolve[Resp any](resp Resp) Decision[Resp] {
	return Decision[Resp]{resp: resp, terminal: true}
}

// Reject stops the chain with a failure result. Failures are ordinary results.
func Reject[Resp any](resp Resp) Decision[Resp] {
	return Resolve(resp)
}

// Forward passes the request to the next link.
func Forward[Resp any]() Decision[Resp] {
	return Decision[Resp]{}
}

// Terminal reports whether the decision stops the chain.
func (d Decision[Resp]) Terminal() bool {
	return d.terminal
}

// Result returns the terminal result, the zero Resp for Forward.
func (d Decision[Resp]) Result() Resp {
	return d.resp
}

// Require forwards requests satisfying spec and rejects the others with failure.
func Require[Req any, Resp any](spec specification.Specification[Req], failure Resp) Rule[Req, Resp] {
	return RuleFunc[Req, Resp](func(req Req) Decision[Resp] {
		if !spec.IsSatisfiedBy(req) {
			return Reject(failure)
		}
		return Forward[Resp]()
	})
}

// Grant resolves every request with resp.
func Grant[Req any, Resp any](resp Resp) Rule[Req, Resp] {
	return RuleFunc[Req, Resp](func(Req) Decision[Resp] {
		return Resolve(resp)
	})
}

// Delegate hands the request to h, resolving with its result when h handles it
// and forwarding otherwise. It lets a whole chain act as a single link of another.
func Delegate[Req any, Resp any](h Handler[Req, Resp]) Rule[Req, Resp] {
	return RuleFunc[Req, Resp](func(req Req) Decision[Resp] {
		if resp, ok := h.Handle(req); ok {
			return Resolve(resp)
		}
		return Forward[Resp]()
	})
}
