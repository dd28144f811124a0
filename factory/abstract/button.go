package abstract

// Button interface.
type Button interface {
	Render() string
}

// WindowsButton This is the windows button.
type WindowsButton struct{}

func (WindowsButton) Render() string {
	return "Windows Button"
}

// MacButton This is the mac button.
type MacButton struct{}

func (MacButton) Render() string {
	return "Mac Button"
}
