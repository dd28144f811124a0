package abstract

// GUIFactory factory interface, every factory creates widgets of one family.
type GUIFactory interface {
	CreateButton() Button

	CreateCheckbox() Checkbox
}

type WindowsFactory struct{}

func (WindowsFactory) CreateButton() Button {
	return WindowsButton{}
}

func (WindowsFactory) CreateCheckbox() Checkbox {
	return WindowsCheckbox{}
}

type MacFactory struct{}

func (MacFactory) CreateButton() Button {
	return MacButton{}
}

func (MacFactory) CreateCheckbox() Checkbox {
	return MacCheckbox{}
}
