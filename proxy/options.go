package proxy

import "github.com/go-leo/patterns/internal/logging"

type option struct {
	Logger logging.LeveledLogger
	New    func() Service
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = logging.Discard{}
	}
	if o.New == nil {
		o.New = func() Service { return RealService{} }
	}
	return o
}

type Option func(*option)

func Logger(logger logging.LeveledLogger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// Factory replaces the function creating the real service.
func Factory(f func() Service) Option {
	return func(o *option) {
		o.New = f
	}
}
