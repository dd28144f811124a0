package proxy

// Service shared by RealService and Proxy.
type Service interface {
	Request() string
}

// RealService is the expensive service the Proxy stands in for.
type RealService struct{}

func (RealService) Request() string {
	return "Real response"
}
