/*
Package gl2d provides an immediate-mode 2D drawing layer for debug overlays
and HUDs. Lines, rectangles and bitmap-font text are accumulated into a
single vertex buffer during the frame and submitted in as few draw calls as
possible.

# Overview

Every drawing call appends vertices to the frame's buffer and records them
in a draw-call ledger. Consecutive calls of the same topology (triangles
for text and filled rectangles, lines for lines and outlines) extend the
same run, so a frame that draws text, then text, then a filled rectangle is
submitted as one draw call. Render replays the ledger against the single
uploaded buffer and resets the frame.

Colors are baked into each vertex when it is emitted. Changing the color
later does not affect shapes already drawn.

# Quick Start

	// Setup, with an OpenGL 4.1 context current on this thread
	dev, _ := opengl.NewDevice()
	ctx := gl2d.New(dev)
	if err := ctx.Init(); err != nil {
	    return err
	}
	defer ctx.Done()

	// Game loop
	for !window.ShouldClose() {
	    ctx.SetColorARGB(0xA0000000)
	    ctx.RectangleI(8, 8, 200, 40, true)
	    ctx.SetColor(gl2d.White)
	    ctx.TextI(12, 12, "^eFPS^f %.1f", fps)

	    w, h := window.GetFramebufferSize()
	    ctx.RenderSize(w, h)
	    window.SwapBuffers()
	}

# Coordinates

Positions are in pixels with the origin at the top-left of the viewport and
y growing downwards. Viewport and scissor rectangles use framebuffer
coordinates as passed to the device.

# Text

Text uses a built-in 9x14 bitmap font covering the printable ASCII range,
with a one-pixel drop shadow baked into the atlas. Characters advance the
cursor by 8 pixels. Characters without a glyph, including spaces, emit no
geometry but still advance the cursor. A few common Unicode symbols
(arrows, bullets, dashes, check marks) are drawn with ASCII look-alikes.

Inline color markup switches the color for the rest of the string:

	^0 black      ^4 maroon     ^8 gray       ^c orange
	^1 navy       ^5 purple     ^9 sky blue   ^d pink
	^2 green      ^6 olive      ^a lime       ^e yellow
	^3 teal       ^7 dark gray  ^b aqua       ^f white

Hex digits are case-insensitive. A caret followed by anything else is drawn
as a literal caret, so "2^^10" prints "2^" and then switches to palette
entry 1. Markup never changes the context's current color.

# Devices

Context2D draws through the Device interface. The opengl subpackage
implements it for OpenGL 4.1 core profile; tests use an in-memory device.
GPU objects are wrapped in reference-counted Resources and released through
the device when the context is done.

# Logging

Lifecycle events and per-frame statistics are logged with log/slog at debug
level. Use WithLogger to route them, or SetVerbose to enable them on the
default stderr logger.
*/
package gl2d
