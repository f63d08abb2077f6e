package builder

import "math"

// Resize floors enforced during canvas resize gestures.
const (
	MinComponentWidth  = 50
	MinComponentHeight = 30
)

// GestureState is the canvas pointer state machine. One gesture is
// active at a time.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDragging
	StateResizing
)

// Canvas translates pointer input into editor operations. Screen
// coordinates are divided by the zoom factor into layout space before
// snapping; drag keeps the pointer's grab offset so components do not
// jump under the cursor.
type Canvas struct {
	editor *Editor
	grid   Grid
	zoom   float64

	state       GestureState
	activeID    string
	dragOffset  Position
	resizeOrig  Position
	resizeStart Size
}

// NewCanvas wires a canvas controller to an editor. Zoom starts at 1.0
// and snapping at the default grid size.
func NewCanvas(e *Editor) *Canvas {
	return &Canvas{
		editor: e,
		grid:   Grid{Size: DefaultGridSize, Enabled: true},
		zoom:   1.0,
	}
}

// State reports the active gesture.
func (cv *Canvas) State() GestureState { return cv.state }

// SetZoom updates the zoom factor (1.0 = 100%). Non-positive values are
// ignored.
func (cv *Canvas) SetZoom(zoom float64) {
	if zoom > 0 {
		cv.zoom = zoom
	}
}

// SetGridSnap toggles snap-to-grid.
func (cv *Canvas) SetGridSnap(enabled bool) { cv.grid.Enabled = enabled }

// SetGridSize changes the snap step.
func (cv *Canvas) SetGridSize(size float64) {
	if size > 0 {
		cv.grid.Size = size
	}
}

// PointerDownComponent begins a drag on the addressed component. The
// component is always selected; locked components refuse the drag.
func (cv *Canvas) PointerDownComponent(id string, screen Position) {
	c := cv.component(id)
	if c == nil {
		return
	}
	cv.editor.Select(id)
	if c.Locked {
		return
	}

	p := cv.toLayout(screen)
	cv.state = StateDragging
	cv.activeID = id
	cv.dragOffset = Position{X: p.X - c.Position.X, Y: p.Y - c.Position.Y}
}

// PointerDownHandle begins a resize from the selected component's
// resize handle. Locked components refuse the resize.
func (cv *Canvas) PointerDownHandle(id string, screen Position) {
	c := cv.component(id)
	if c == nil || c.Locked {
		return
	}
	cv.state = StateResizing
	cv.activeID = id
	cv.resizeOrig = cv.toLayout(screen)
	cv.resizeStart = c.Size
}

// PointerMove advances the active gesture, emitting one editor update
// per movement. Idle pointers are ignored.
func (cv *Canvas) PointerMove(screen Position) {
	if cv.state == StateIdle {
		return
	}
	p := cv.toLayout(screen)

	switch cv.state {
	case StateDragging:
		x := math.Max(0, cv.grid.Snap(p.X-cv.dragOffset.X))
		y := math.Max(0, cv.grid.Snap(p.Y-cv.dragOffset.Y))
		_ = cv.editor.UpdateComponent(cv.activeID, ComponentUpdate{Position: PositionAt(x, y)})
	case StateResizing:
		w := cv.grid.Snap(math.Max(MinComponentWidth, cv.resizeStart.Width+(p.X-cv.resizeOrig.X)))
		h := cv.grid.Snap(math.Max(MinComponentHeight, cv.resizeStart.Height+(p.Y-cv.resizeOrig.Y)))
		_ = cv.editor.UpdateComponent(cv.activeID, ComponentUpdate{Size: SizeOf(w, h)})
	}
}

// PointerUp ends the active gesture.
func (cv *Canvas) PointerUp() {
	cv.state = StateIdle
	cv.activeID = ""
}

// PointerLeave is treated like pointer-up: the gesture ends when the
// pointer leaves the canvas.
func (cv *Canvas) PointerLeave() { cv.PointerUp() }

// ClickEmpty clears the selection (click on empty canvas).
func (cv *Canvas) ClickEmpty() { cv.editor.ClearSelection() }

// ClickComponent selects without starting a gesture. Works on locked
// components too.
func (cv *Canvas) ClickComponent(id string) { cv.editor.Select(id) }

// Drop places a new component of the given palette type at the snapped
// drop position. Creation is delegated to the editor so the canvas never
// mutates the document directly.
func (cv *Canvas) Drop(t ComponentType, screen Position) (Component, error) {
	p := cv.toLayout(screen)
	pos := Position{X: cv.grid.Snap(p.X), Y: cv.grid.Snap(p.Y)}
	return cv.editor.CreateComponent(t, pos)
}

func (cv *Canvas) toLayout(screen Position) Position {
	return Position{X: screen.X / cv.zoom, Y: screen.Y / cv.zoom}
}

func (cv *Canvas) component(id string) *Component {
	if cv.editor == nil || cv.editor.layout == nil {
		return nil
	}
	return cv.editor.layout.Component(id)
}
