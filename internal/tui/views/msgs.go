package views

// GoToHomeMsg requests a switch back to the home menu.
type GoToHomeMsg struct{}

// GoToWeekMsg requests a switch to the week view.
type GoToWeekMsg struct{}

// GoToCapacityMsg requests a switch to the capacity view.
type GoToCapacityMsg struct{}
