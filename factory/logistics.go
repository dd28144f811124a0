package factory

import (
	"context"
	"errors"
)

// ErrTransportUnsupported the transport kind has no Logistics.
var ErrTransportUnsupported = errors.New("transport not supported")

// Transport delivers cargo.
type Transport interface {
	Deliver() string
}

type Truck struct{}

func (Truck) Deliver() string {
	return "Deliver by road"
}

type Ship struct{}

func (Ship) Deliver() string {
	return "Deliver by sea"
}

// Logistics is the creator of the factory method: PlanDelivery works on any Transport
// and leaves the choice of it to CreateTransport.
type Logistics interface {
	CreateTransport() Transport
}

// PlanDelivery delivers with the transport made by l.
func PlanDelivery(l Logistics) string {
	return l.CreateTransport().Deliver()
}

type RoadLogistics struct{}

func (RoadLogistics) CreateTransport() Transport {
	return Truck{}
}

type SeaLogistics struct{}

func (SeaLogistics) CreateTransport() Transport {
	return Ship{}
}

type TransportKind int

const (
	RoadTransport TransportKind = iota
	SeaTransport
)

var _ Factory[Logistics, TransportKind] = LogisticsFactory

// LogisticsFactory creates the Logistics for a transport kind.
var LogisticsFactory = FactoryFunc[Logistics, TransportKind](func(_ context.Context, kind TransportKind) (Logistics, error) {
	switch kind {
	case RoadTransport:
		return RoadLogistics{}, nil
	case SeaTransport:
		return SeaLogistics{}, nil
	default:
		return nil, ErrTransportUnsupported
	}
})
