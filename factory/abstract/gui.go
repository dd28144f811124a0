package abstract

import "errors"

// ErrKindUnsupported the platform has no GUIFactory.
var ErrKindUnsupported = errors.New("gui kind not supported")

// Window Helper struct holding widgets made by one GUIFactory.
type Window struct {
	Button   Button
	Checkbox Checkbox
}

// NewWindow creates all widgets of the window with f.
func NewWindow(f GUIFactory) Window {
	return Window{
		Button:   f.CreateButton(),
		Checkbox: f.CreateCheckbox(),
	}
}

type Kind int

const (
	WindowsKind Kind = iota
	MacKind
)

// FactoryMaker The factory of gui factories.
type FactoryMaker struct{}

func (FactoryMaker) MakeFactory(k Kind) (GUIFactory, error) {
	switch k {
	case WindowsKind:
		return WindowsFactory{}, nil
	case MacKind:
		return MacFactory{}, nil
	default:
		return nil, ErrKindUnsupported
	}
}
