// Package inkbutton is a touch-feedback button for [Ebitengine] with rounded
// corners, an optional border and an animated "ink" fill.
//
// On touch-down the button computes a start and an end geometry for its ink
// layer from the selected [AnimationMode] and morphs between them with an
// ease-out tween (via [gween]). Touch-up and cancellation remove the
// animation at once.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := inkbutton.NewScene()
//	b := inkbutton.NewButton("save", 200, 48, inkbutton.DefaultStyle())
//	b.Title = "Save"
//	b.SetPosition(40, 40)
//	b.SetCornerRadius(24)
//	scene.AddButton(b)
//	inkbutton.Run(scene, inkbutton.RunConfig{
//		Title: "Ink", Width: 480, Height: 320,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Animation modes
//
// Every mode is a pair of pure functions, [StartShape] and [EndShape], of the
// touch location and the button bounds:
//
//   - touchCenterCircleFill: a circle grows from the touch point.
//   - touchCenterFill: a pill grows from the touch point to the full bounds.
//   - verticalCenterFill, horizontalCenterFill: a band opens from the center.
//   - bottomToTopFill, topToBottomFill: the fill enters from an edge.
//   - none: nothing is drawn.
//
// # Touches
//
// A [Scene] polls mouse and touch input each frame and routes it to
// registered [TouchObserver] values. [Button] implements TouchObserver; any
// other type can be registered with [Scene.Observe].
//
// # Configuration
//
// Screens of buttons can be described in YAML and loaded with
// [LoadConfigFile]; see [Config] for the format.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package inkbutton
