// Package bouncy is a small interactive geometry demo for [Ebitengine]: the
// user draws a boundary polygon and an object polygon, and the object
// translates and spins inside the boundary, bouncing off its edges.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	sim := bouncy.NewSimulation(bouncy.DefaultSimConfig(), nil)
//	bouncy.Run(sim, bouncy.RunConfig{
//		Title: "Bouncy", Width: 640, Height: 640,
//	})
//
// Right-click opens the menu: "Define Boundary" clears everything and lets
// left clicks place boundary vertices, "Define Object" does the same for the
// object, and "Start Movement" sets it moving. Keys: t toggles translation,
// r toggles rotation, the arrow keys scale velocity (up/down) and spin
// (left/right) by 10%, p saves a screenshot, h hides the HUD, q quits.
//
// # Simulation and events
//
// All state lives in a [Simulation]. Front ends never mutate it directly;
// they post typed [Event] values to a [Loop], which applies them in order on
// a single goroutine and hands a [Frame] to the [Renderer] on redraw. This
// keeps the whole demo deterministic and testable without a display:
//
//	loop := bouncy.NewLoop(sim, nil, nil)
//	loop.InjectMenu(bouncy.MenuDefineBoundary)
//	loop.InjectPolygon(square)
//	loop.InjectMenu(bouncy.MenuStartMovement)
//	loop.InjectTicks(100)
//	err := loop.Drain()
//
// # Collisions
//
// Each tick the object's position (a single point) advances by its velocity.
// Boundary edges are tested in order; the first edge whose bounding box,
// grown by one tick of travel per axis, contains the candidate position
// reflects the velocity about the edge normal. This is deliberately the simple first-match rule, not a nearest
// contact solver.
//
// The terminal front end lives in package term and the bounce tone in
// package audio.
//
// [Ebitengine]: https://ebitengine.org
package bouncy
