package abstract

// Checkbox interface.
type Checkbox interface {
	Render() string
}

// WindowsCheckbox This is the windows checkbox.
type WindowsCheckbox struct{}

func (WindowsCheckbox) Render() string {
	return "Windows Checkbox"
}

// MacCheckbox This is the mac checkbox.
type MacCheckbox struct{}

func (MacCheckbox) Render() string {
	return "Mac Checkbox"
}
