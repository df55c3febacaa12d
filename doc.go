/*
Package sticker provides an interactive sticker widget: a content view
decorated with an editing outline and three corner handles for closing,
rotating/resizing, and flipping, designed as idiomatic Go around a
Canvas type driven by a per-frame loop.

# Overview

A Sticker wraps any ContentView (an image, a flat color, or a custom
implementation) and manages its spatial state: a center point, bounds
prior to rotation, and a rotation angle about the center. Gestures are
derived from per-frame pointer state rather than event callbacks: a
press inside the body begins a move drag, a press on the bottom-right
handle begins a combined rotate/resize drag, and taps on the top-left
and top-right handles close and flip the sticker. Lifecycle and gesture
phases are reported through an optional Delegate.

Stickers live on a Canvas, which owns the z-order, routes each frame's
pointer state to exactly one sticker, advances flip animations, and
renders through a Renderer (an OpenGL implementation lives in
backend/opengl).

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	canvas := sticker.New(renderer)

	content := sticker.NewImageContent(img)
	s := sticker.NewSticker(content, sticker.WithDelegate(myDelegate))
	s.SetCenter(sticker.Vec2{X: 300, Y: 250})
	canvas.Add(s)

	// Frame loop
	for !window.ShouldClose() {
	    in := pointer.Update()
	    canvas.Frame(in, displaySize, deltaTime)
	    window.SwapBuffers()
	}

# Geometry

The widget bounds are the content size plus a margin of half the handle
size on every side, so the corner handles (centered on the content
frame's corners) stay inside the widget. Resizing scales the bounds
uniformly and is floored at a minimum size derived from the handle
inset; SetMinimumSize can only raise that floor.

# Threading

A Canvas and its Stickers are exclusively owned by the goroutine
driving the frame loop and carry no synchronization of their own.
*/
package sticker
