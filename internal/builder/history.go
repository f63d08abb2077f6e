package builder

// History is a linear undo/redo stack over deep-copied layout snapshots.
// Every recorded mutation truncates the redo branch; there is no redo
// tree. Snapshots are full copies, so memory grows with edit count.
type History struct {
	snapshots []Layout
	index     int
}

// NewHistory returns an empty history with the cursor before the first
// snapshot.
func NewHistory() *History {
	return &History{index: -1}
}

// Record deep-copies the layout and pushes it past the cursor,
// discarding any forward history.
func (h *History) Record(l Layout) {
	h.snapshots = append(h.snapshots[:h.index+1], l.Clone())
	h.index = len(h.snapshots) - 1
}

// Undo moves the cursor back one snapshot and returns a copy of it.
// No-op when already at the oldest snapshot.
func (h *History) Undo() (Layout, bool) {
	if !h.CanUndo() {
		return Layout{}, false
	}
	h.index--
	return h.snapshots[h.index].Clone(), true
}

// Redo moves the cursor forward one snapshot and returns a copy of it.
// No-op when there is no forward history.
func (h *History) Redo() (Layout, bool) {
	if !h.CanRedo() {
		return Layout{}, false
	}
	h.index++
	return h.snapshots[h.index].Clone(), true
}

func (h *History) CanUndo() bool { return h.index > 0 }

func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Len reports the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Index reports the cursor position; -1 means nothing recorded yet.
func (h *History) Index() int { return h.index }
