package editor

type DialogKind int

const (
	DialogError DialogKind = iota
	DialogConfirmDelete
	DialogSave
	DialogNewFolder
	DialogProperty
)

func (k DialogKind) String() string {
	switch k {
	case DialogError:
		return "error"
	case DialogConfirmDelete:
		return "confirm-delete"
	case DialogSave:
		return "save"
	case DialogNewFolder:
		return "new-folder"
	case DialogProperty:
		return "property"
	}
	return "unknown"
}

// Dialog is one modal on top of the current screen. Target names what the
// dialog acts on: a tool id for deletes, a property name for edits.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
	Target  string
}

func ErrorDialog(err error) Dialog {
	return Dialog{Kind: DialogError, Title: "Error", Message: err.Error()}
}

// DialogStack is a plain LIFO of open dialogs
type DialogStack struct {
	items []Dialog
}

func (s *DialogStack) Push(d Dialog) {
	s.items = append(s.items, d)
}

// Pop removes the top dialog. ok is false on an empty stack.
func (s *DialogStack) Pop() (d Dialog, ok bool) {
	if len(s.items) == 0 {
		return Dialog{}, false
	}
	d = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return d, true
}

func (s *DialogStack) Top() (Dialog, bool) {
	if len(s.items) == 0 {
		return Dialog{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *DialogStack) Len() int {
	return len(s.items)
}

func (s *DialogStack) Clear() {
	s.items = nil
}
