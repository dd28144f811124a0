package proxy

import "time"

var _ Service = (*Proxy)(nil)

// Proxy provides the Service interface and creates the real service on the first request.
// Every call is logged with its latency.
type Proxy struct {
	service Service
	options *option
}

func NewProxy(opts ...Option) *Proxy {
	return &Proxy{options: newOption(opts...)}
}

func (p *Proxy) Request() string {
	if p.service == nil {
		p.options.Logger.Debugf("creating real service")
		p.service = p.options.New()
	}
	startTime := time.Now()
	result := p.service.Request()
	p.options.Logger.Infof("time taken: %v", time.Since(startTime))
	return result
}

// Initialized reports whether the real service has been created.
func (p *Proxy) Initialized() bool {
	return p.service != nil
}
