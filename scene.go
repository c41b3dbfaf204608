package inkbutton

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Scene is the top-level object that owns the buttons, input state and
// per-frame bookkeeping. It is single-threaded: call every method from the
// Ebitengine Update/Draw goroutine.
type Scene struct {
	// ClearColor fills the screen before drawing when its alpha is positive.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// ShowFPS draws the current FPS/TPS in the top-left corner.
	ShowFPS bool

	buttons []*Button
	handles map[*Button]CallbackHandle

	// Input state
	observers    observerRegistry
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	updateFunc      func() error
	testRunner      *TestRunner
	screenshotQueue []string
	debug           bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		ScreenshotDir: "screenshots",
		handles:       make(map[*Button]CallbackHandle),
	}
}

// AddButton adds b to the scene and registers it for touches. Buttons added
// later are drawn above and hit tested before earlier ones. Adding a button
// twice does nothing.
func (s *Scene) AddButton(b *Button) CallbackHandle {
	if h, ok := s.handles[b]; ok {
		return h
	}
	s.buttons = append(s.buttons, b)
	h := s.Observe(b, b.Frame)
	s.handles[b] = h
	if s.debug {
		b.trace = s.debugf
	}
	return h
}

// RemoveButton removes b from the scene, unregisters it from touch routing
// and cancels its ink.
func (s *Scene) RemoveButton(b *Button) {
	h, ok := s.handles[b]
	if !ok {
		return
	}
	h.Remove()
	delete(s.handles, b)
	for i, x := range s.buttons {
		if x == b {
			copy(s.buttons[i:], s.buttons[i+1:])
			s.buttons[len(s.buttons)-1] = nil
			s.buttons = s.buttons[:len(s.buttons)-1]
			break
		}
	}
	b.CancelInk()
	b.trace = nil
}

// Buttons returns the buttons in draw order. The slice must not be modified.
func (s *Scene) Buttons() []*Button {
	return s.buttons
}

// Button returns the first button with the given name, or nil.
func (s *Scene) Button(name string) *Button {
	for _, b := range s.buttons {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// SetUpdateFunc sets a function called once per frame after input and
// animation have been processed. A returned error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables stderr tracing of touch dispatch and ink animations.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	for _, b := range s.buttons {
		if enabled {
			b.trace = s.debugf
		} else {
			b.trace = nil
		}
	}
}

// Update processes input and advances ink animations by one tick.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.update(dt, ebiten.IsFocused())
}

// update is the clock-independent body of Update.
func (s *Scene) update(dt float32, focused bool) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if !focused && s.tracking() {
		s.CancelTouches()
	}
	for _, b := range s.buttons {
		b.Update(dt)
	}
}

// Draw renders every button onto screen and flushes queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	for _, b := range s.buttons {
		b.Draw(screen)
	}
	if s.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	s.flushScreenshots(screen)
}

// --- Run loop ---

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ExitWhenScriptDone stops Run once an attached TestRunner finishes.
	ExitWhenScriptDone bool
}

// errScriptDone ends the game loop once the test script has finished.
var errScriptDone = errors.New("inkbutton: test script done")

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
}

func (g *gameShell) Update() error {
	g.scene.Update()
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	if g.cfg.ExitWhenScriptDone && g.scene.testRunner != nil && g.scene.testRunner.Done() &&
		len(g.scene.screenshotQueue) == 0 {
		return errScriptDone
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window closes or the update
// function returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	scene.ShowFPS = scene.ShowFPS || cfg.ShowFPS

	err := ebiten.RunGame(&gameShell{scene: scene, cfg: cfg})
	if errors.Is(err, errScriptDone) {
		return nil
	}
	return err
}
