package chain

// Visit describes one link evaluated while handling a request.
type Visit struct {
	// Chain is the name given by WithName.
	Chain string
	// Index is the position of the link, the entry link is 0.
	Index int
	// Terminal reports whether the link stopped the chain.
	Terminal bool
	// Result is the link's result, only meaningful when Terminal.
	Result any
}

type option struct {
	Name     string
	Observer func(Visit)
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *option) observe(v Visit) {
	if o.Observer == nil {
		return
	}
	o.Observer(v)
}

type Option func(*option)

// WithName names the chain, the name is reported in every Visit.
func WithName(name string) Option {
	return func(o *option) {
		o.Name = name
	}
}

// WithObserver registers fn to be called for every link visited.
func WithObserver(fn func(Visit)) Option {
	return func(o *option) {
		o.Observer = fn
	}
}
