package inkbutton

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maxPointers is the number of tracked pointers: 0 is the mouse, 1..9 are
// touches.
const maxPointers = 10

// TouchContext carries the data of one touch lifecycle event.
type TouchContext struct {
	PointerID int
	// GlobalX and GlobalY are in scene coordinates; LocalX and LocalY are
	// relative to the observer's hit rectangle.
	GlobalX, GlobalY float64
	LocalX, LocalY   float64
	// HasLocation is false when the event has no position (cancellation).
	HasLocation bool
}

// TouchObserver receives the touch lifecycle of a control. A press that
// starts inside the observer's hit rectangle is followed by exactly one of
// OnUpInside, OnUpOutside or OnCancelled.
type TouchObserver interface {
	OnDown(TouchContext)
	OnUpInside(TouchContext)
	OnUpOutside(TouchContext)
	OnCancelled(TouchContext)
}

// interactable is implemented by observers that can be switched off.
type interactable interface {
	Interactable() bool
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	target *observerEntry // observer that received OnDown, if any
}

// --- Observer registry ---

type observerEntry struct {
	id       uint32
	obs      TouchObserver
	hit      func() Rect
	tracking bool // a pointer is down on this observer
	removed  bool
}

type observerRegistry struct {
	entries []*observerEntry
	nextID  uint32
}

// CallbackHandle allows removing a registered observer.
type CallbackHandle struct {
	id  uint32
	reg *observerRegistry
}

// Remove unregisters the observer so it no longer receives events. A touch
// in progress on it ends silently.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.entries
	for i := range s {
		if s[i].id == h.id {
			s[i].removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			h.reg.entries = s[:len(s)-1]
			return
		}
	}
}

// Observe registers obs to receive touches that start inside the rectangle
// returned by hit, evaluated in scene coordinates at event time. Observers
// registered later sit on top for hit testing.
func (s *Scene) Observe(obs TouchObserver, hit func() Rect) CallbackHandle {
	s.observers.nextID++
	e := &observerEntry{id: s.observers.nextID, obs: obs, hit: hit}
	s.observers.entries = append(s.observers.entries, e)
	return CallbackHandle{id: e.id, reg: &s.observers}
}

// hitTest returns the topmost interactable observer containing (x, y).
func (s *Scene) hitTest(x, y float64) *observerEntry {
	entries := s.observers.entries
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if it, ok := e.obs.(interactable); ok && !it.Interactable() {
			continue
		}
		if e.hit().Contains(x, y) {
			return e
		}
	}
	return nil
}

// processInput is called from Scene.Update to handle mouse and touch input.
// Injected events take priority over real input for the frame they are
// consumed in.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles the left mouse button as pointer 0.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// A touch that disappeared was lifted at its last known position.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		ps.target = nil

		e := s.hitTest(x, y)
		if e == nil || e.tracking {
			// Controls follow one touch at a time.
			return
		}
		e.tracking = true
		ps.target = e
		s.fire(EventDown, e, pointerID, x, y, true)

	case !pressed && ps.down:
		ps.down = false
		e := ps.target
		ps.target = nil
		if e == nil || e.removed {
			return
		}
		e.tracking = false
		if e.hit().Contains(x, y) {
			s.fire(EventUpInside, e, pointerID, x, y, true)
		} else {
			s.fire(EventUpOutside, e, pointerID, x, y, true)
		}

	case pressed && ps.down:
		ps.lastX, ps.lastY = x, y
	}
}

// CancelTouches ends every touch in progress, sending OnCancelled to the
// observers tracking them. Pointers stay logically down until released so
// that the release does not start a new interaction.
func (s *Scene) CancelTouches() {
	for i := range s.pointers {
		ps := &s.pointers[i]
		e := ps.target
		ps.target = nil
		if e == nil || e.removed {
			continue
		}
		e.tracking = false
		s.fire(EventCancelled, e, i, 0, 0, false)
	}
}

// tracking reports whether any pointer is currently driving an observer.
func (s *Scene) tracking() bool {
	for i := range s.pointers {
		if s.pointers[i].target != nil {
			return true
		}
	}
	return false
}

// fire builds the context for e and dispatches the event.
func (s *Scene) fire(evt EventType, e *observerEntry, pointerID int, x, y float64, hasLocation bool) {
	ctx := TouchContext{PointerID: pointerID, HasLocation: hasLocation}
	if hasLocation {
		r := e.hit()
		ctx.GlobalX, ctx.GlobalY = x, y
		ctx.LocalX, ctx.LocalY = x-r.X, y-r.Y
	}
	s.debugf("%s pointer=%d global=(%.1f,%.1f) local=(%.1f,%.1f)",
		evt, pointerID, ctx.GlobalX, ctx.GlobalY, ctx.LocalX, ctx.LocalY)

	switch evt {
	case EventDown:
		e.obs.OnDown(ctx)
	case EventUpInside:
		e.obs.OnUpInside(ctx)
	case EventUpOutside:
		e.obs.OnUpOutside(ctx)
	case EventCancelled:
		e.obs.OnCancelled(ctx)
	}
}
