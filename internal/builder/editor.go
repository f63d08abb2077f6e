package builder

// Editor owns the live template document. It is the single mutation
// entry point: the canvas controller and the property editor both commit
// edits through UpdateComponent, and every logical mutation records
// exactly one history snapshot. The editor is not safe for concurrent
// use; callers drive it from a single event loop.
type Editor struct {
	layout   *Layout
	history  *History
	selected string
}

// NewEditor starts editing the given layout. The initial state is
// recorded so the first edit can be undone back to it.
func NewEditor(l Layout) *Editor {
	e := &Editor{history: NewHistory()}
	clone := l.Clone()
	e.layout = &clone
	e.history.Record(clone)
	return e
}

// Layout returns a deep copy of the current document.
func (e *Editor) Layout() Layout {
	if e.layout == nil {
		return Layout{}
	}
	return e.layout.Clone()
}

// History exposes undo/redo reachability for UI affordances.
func (e *Editor) History() *History { return e.history }

// SelectedID returns the id of the selected component, or "".
func (e *Editor) SelectedID() string { return e.selected }

// Selected returns a copy of the selected component.
func (e *Editor) Selected() (Component, bool) {
	if e.layout == nil || e.selected == "" {
		return Component{}, false
	}
	c := e.layout.Component(e.selected)
	if c == nil {
		return Component{}, false
	}
	return c.Clone(), true
}

// Select marks a component as selected. Locked components are selectable;
// lock state only suppresses drag and resize.
func (e *Editor) Select(id string) {
	if e.layout != nil && e.layout.Component(id) != nil {
		e.selected = id
	}
}

// ClearSelection deselects whatever is selected.
func (e *Editor) ClearSelection() { e.selected = "" }

// CreateComponent instantiates a catalog component at the given position
// and appends it to the document.
func (e *Editor) CreateComponent(t ComponentType, pos Position) (Component, error) {
	c, err := NewComponent(t, pos)
	if err != nil {
		return Component{}, err
	}
	if err := e.AddComponent(c); err != nil {
		return Component{}, err
	}
	return c, nil
}

// AddComponent appends a component to the paint order and records history.
func (e *Editor) AddComponent(c Component) error {
	if e.layout == nil {
		return ErrNoLayout
	}
	e.layout.Components = append(e.layout.Components, c.Clone())
	e.history.Record(*e.layout)
	return nil
}

// UpdateComponent merges a partial update into the addressed component
// and records history. Style/position/size merge key-wise.
func (e *Editor) UpdateComponent(id string, u ComponentUpdate) error {
	if e.layout == nil {
		return ErrNoLayout
	}
	c := e.layout.Component(id)
	if c == nil {
		return ErrComponentNotFound
	}
	c.apply(u)
	e.history.Record(*e.layout)
	return nil
}

// DeleteComponent removes a component, clearing the selection when it
// was the selected one, and records history.
func (e *Editor) DeleteComponent(id string) error {
	if e.layout == nil {
		return ErrNoLayout
	}
	if !e.layout.RemoveComponent(id) {
		return ErrComponentNotFound
	}
	if e.selected == id {
		e.selected = ""
	}
	e.history.Record(*e.layout)
	return nil
}

// Replace swaps in a whole new document (template load) and records
// history.
func (e *Editor) Replace(l Layout) {
	clone := l.Clone()
	e.layout = &clone
	e.selected = ""
	e.history.Record(clone)
}

// Undo restores the previous snapshot. Selection is dropped if the
// selected component does not exist in the restored document.
func (e *Editor) Undo() bool {
	snapshot, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.restore(snapshot)
	return true
}

// Redo restores the next snapshot.
func (e *Editor) Redo() bool {
	snapshot, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.restore(snapshot)
	return true
}

func (e *Editor) restore(snapshot Layout) {
	e.layout = &snapshot
	if e.selected != "" && snapshot.Component(e.selected) == nil {
		e.selected = ""
	}
}
