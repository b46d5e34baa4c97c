// Package willowgui is a retained-mode GUI layer for [Ebitengine].
//
// willowgui provides the element tree, the transform and bounds engine,
// hit testing, and a multi-touch dispatch state machine that turns raw mouse
// and touch input into bubbling TouchStart, TouchMove, TouchEnd, TouchCancel
// and Click events. A small set of widgets (buttons, checkboxes, radio
// buttons, sliders, clips, scroll views and lists) is built on top.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	sys := willowgui.NewSystem(willowgui.Options{Width: 640, Height: 360})
//	ui, _ := sys.CreateLayer("ui", willowgui.LayerOptions{BaseWidth: 640})
//	// ... add roots ...
//	willowgui.Run(sys, willowgui.RunConfig{Title: "My App"})
//
// For full control, implement [ebiten.Game] yourself and call
// [System.Update] and [System.Draw] directly. Layout must return the
// viewport multiplied by the pixel ratio.
//
// # Element tree
//
// Every element is a [Node] with a [NodeKind] and a [Props] record. Roots are
// attached to a [Layer]; layers are drawn in ascending priority and hit
// tested in descending priority.
//
//	btn := willowgui.NewButton("ok", willowgui.Props{
//		Shape:      willowgui.Vec2{X: 120, Y: 40},
//		Background: willowgui.ColorBackground(willowgui.Color{R: 0.3, G: 0.6, B: 0.9, A: 1}),
//		Text:       "OK",
//		OnTouchEnd: func(*willowgui.Event) { fmt.Println("ok") },
//	})
//	ui.AddRoot(btn)
//
// X and Y place a node's top-left corner relative to its parent's top-left
// corner, with Y growing downward. Positions, shapes and font sizes are
// authored units scaled by the layer's screen ratio (viewport width over
// base width). The world
// transform of every node is recomputed eagerly whenever a transform
// property changes, and nodes entirely outside their parent or the viewport
// are marked invisible and skipped by drawing and hit testing.
//
// # Updates
//
// Props are immutable from the outside. Call [Node.CheckUpdate] to diff two
// records and [Node.Update] to apply one, or [Node.SetProps] for both.
//
// # Events
//
// A press opens a session for its touch identifier. Moves expand the
// session's bounding box; a release whose box stays within 10 page units
// in both axes also produces a Click. Leaving the canvas cancels every
// session and broadcasts TouchCancel to the whole tree.
//
// # Configuration and logging
//
// A [System] can be built from TOML with [LoadConfig] and
// [NewSystemFromConfig]. Diagnostics go through [log/slog]; the default
// logger discards everything until [SetLogger] is called.
//
// [Ebitengine]: https://ebitengine.org
package willowgui
