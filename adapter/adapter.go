package adapter

// Requester is the interface clients are written against.
type Requester interface {
	Request() string
}

// OldAPI is the legacy service with an incompatible method name.
type OldAPI struct{}

func (OldAPI) SpecificRequest() string {
	return "Old API response"
}

var _ Requester = Adapter{}

// Adapter makes OldAPI usable as a Requester.
type Adapter struct {
	Adaptee OldAPI
}

func (receiver Adapter) Request() string {
	return receiver.Adaptee.SpecificRequest()
}

// ClientCode only knows about Requester.
func ClientCode(api Requester) string {
	return api.Request()
}
