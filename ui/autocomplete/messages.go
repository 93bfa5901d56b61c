package autocomplete

// ChangeMsg is sent after a keystroke changes the text field.
// The parent answers with SetProps carrying fresh Data.
type ChangeMsg struct {
	Value string
}

// SelectMsg is sent when the highlighted row is accepted.
type SelectMsg[T comparable] struct {
	Item T
}
