package action

// Command is the closed set of operations a hotkey can be bound to.
type Command int

const (
	Launch Command = iota
	Show
	Hide
	Activate
	Toggle
)

func (c Command) String() string {
	switch c {
	case Launch:
		return "launch"
	case Show:
		return "show"
	case Hide:
		return "hide"
	case Activate:
		return "activate"
	case Toggle:
		return "toggle"
	default:
		return "unknown"
	}
}
