package inkbutton

// syntheticKind distinguishes injected pointer events.
type syntheticKind uint8

const (
	syntheticPress syntheticKind = iota
	syntheticMove
	syntheticRelease
	syntheticCancel
)

// syntheticPointerEvent represents a single injected pointer event in scene
// coordinates. Injected events always drive pointer 0.
type syntheticPointerEvent struct {
	x, y float64
	kind syntheticKind
}

// InjectPress queues a pointer press at the given coordinates. The event is
// consumed on the next frame's input pass.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: syntheticPress})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to slide a touch off a control.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: syntheticMove})
}

// InjectRelease queues a pointer release at the given coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: syntheticRelease})
}

// InjectCancel queues a cancellation of every touch in progress.
func (s *Scene) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: syntheticCancel})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectHold queues a press, frames-2 stationary moves and a release, so the
// ink has time to animate before the touch ends. Minimum frames is 2.
func (s *Scene) InjectHold(x, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(x, y)
	for i := 0; i < frames-2; i++ {
		s.InjectMove(x, y)
	}
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY). Minimum
// frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer state machine. Returns true if an event was consumed
// (real input is skipped that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticCancel:
		s.CancelTouches()
	case syntheticRelease:
		s.processPointer(0, evt.x, evt.y, false)
	default:
		s.processPointer(0, evt.x, evt.y, true)
	}
	return true
}
