package chain

import (
	"time"

	"github.com/go-leo/patterns/decorator"
	"github.com/go-leo/patterns/internal/logging"
)

// Decorate wraps h with decorators, the first one is the outermost.
func Decorate[Req any, Resp any](h Handler[Req, Resp], decorators ...decorator.Decorator[Handler[Req, Resp]]) Handler[Req, Resp] {
	return decorator.Chain(h, decorators...)
}

// Logging logs every request going through the handler with its result and latency.
func Logging[Req any, Resp any](logger logging.LeveledLogger) decorator.Decorator[Handler[Req, Resp]] {
	return decorator.DecoratorFunc[Handler[Req, Resp]](func(next Handler[Req, Resp]) Handler[Req, Resp] {
		return HandlerFunc[Req, Resp](func(req Req) (Resp, bool) {
			start := time.Now()
			resp, ok := next.Handle(req)
			if !ok {
				logger.Warnf("request %v: no result, took %v", req, time.Since(start))
				return resp, ok
			}
			logger.Infof("request %v: %v, took %v", req, resp, time.Since(start))
			return resp, ok
		})
	})
}
