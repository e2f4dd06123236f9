package model

// ActionKind discriminates the three shapes a chat update can take.
type ActionKind int

const (
	ActionCommand ActionKind = iota
	ActionText
	ActionSelection
)

func (k ActionKind) String() string {
	switch k {
	case ActionCommand:
		return "command"
	case ActionText:
		return "text"
	case ActionSelection:
		return "selection"
	}
	return "unknown"
}

// UserAction is the normalized incoming chat event. The transport adapter
// builds one per update; it is never persisted.
type UserAction struct {
	ChatID    int64
	MessageID int
	Kind      ActionKind
	Command   string // set when Kind == ActionCommand, e.g. "/start"
	Text      string // set when Kind == ActionText
	Payload   string // opaque button payload when Kind == ActionSelection
}

// IsStartCommand reports whether this action is the universal reset path.
func (a UserAction) IsStartCommand() bool {
	return a.Kind == ActionCommand && a.Command == "/start"
}
