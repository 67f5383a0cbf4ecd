package gl2d

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotInitialized is returned by Render when Init has not succeeded.
var ErrNotInitialized = errors.New("gl2d: context not initialized")

// State is the per-frame style state.
type State struct {
	Viewport IRect
	Scissor  IRect // Empty disables scissoring
	Color    RGBA  // Fill color for subsequent primitives
}

// Context2D accumulates the shapes and text drawn during a frame and
// submits them in as few draw calls as possible on Render.
//
// A Context2D is owned by a single rendering thread; it is not safe for
// concurrent use.
type Context2D struct {
	dev    Device
	logger *slog.Logger
	atlas  *Atlas

	program  *Resource
	texture  *Resource
	geometry *Resource
	shared   *Resource // caller-owned atlas texture, see WithTexture

	vertices *VertexBuffer
	calls    *DrawList
	state    State

	initialized bool
	lastStats   Stats
}

// Option configures a Context2D.
type Option func(*Context2D)

// WithLogger sets the logger used for lifecycle and per-frame messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context2D) { c.logger = l }
}

// WithAtlas replaces the built-in font atlas.
func WithAtlas(a *Atlas) Option {
	return func(c *Context2D) { c.atlas = a }
}

// WithTexture makes Init reference tex instead of uploading the atlas.
// tex must hold the pixels of the atlas the context uses, typically the
// result of UploadAtlas. The caller keeps its own reference.
func WithTexture(tex *Resource) Option {
	return func(c *Context2D) { c.shared = tex }
}

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) Option {
	return func(c *Context2D) { c.vertices = NewVertexBuffer(n) }
}

// New creates a controller drawing through dev. Call Init before drawing.
func New(dev Device, opts ...Option) *Context2D {
	c := &Context2D{
		dev:    dev,
		logger: defaultLogger,
		calls:  NewDrawList(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.vertices == nil {
		c.vertices = NewVertexBuffer(minVertexCapacity)
	}
	c.Clear()
	return c
}

// Initialized reports whether Init has succeeded and Done has not been
// called since.
func (c *Context2D) Initialized() bool { return c.initialized }

// Init compiles the 2D program, uploads the font atlas (or references the
// WithTexture one) and creates the vertex buffer. It is a no-op if the context is already initialized. On
// failure every resource created so far is released.
func (c *Context2D) Init() (err error) {
	if c.initialized {
		return nil
	}

	defer func() {
		if err != nil {
			c.releaseResources()
			c.logger.Error("gl2d init failed", slog.Any("error", err))
		}
	}()

	if c.atlas == nil {
		if c.atlas, err = DefaultAtlas(); err != nil {
			return err
		}
	}

	prog, err := c.dev.CompileProgram(VertexShaderSource, FragmentShaderSource)
	if err != nil {
		return fmt.Errorf("compile 2d program: %w", err)
	}
	c.program = NewResource(prog, c.dev)

	if c.shared != nil {
		c.texture = c.shared.Ref()
	} else if c.texture, err = UploadAtlas(c.dev, c.atlas); err != nil {
		return err
	}

	geom, err := c.dev.CreateVertexBuffer(VertexLayout2D)
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	c.geometry = NewResource(geom, c.dev)

	c.initialized = true
	c.Clear()
	c.logger.Debug("gl2d initialized",
		slog.String("program", prog.String()),
		slog.String("texture", c.texture.Handle().String()),
		slog.Int("texture_refs", c.texture.Refs()),
		slog.String("geometry", geom.String()))
	return nil
}

// Done releases the GPU resources held by the context. The context can be
// initialized again afterwards.
func (c *Context2D) Done() {
	if !c.initialized {
		return
	}
	c.initialized = false
	c.releaseResources()
	c.Clear()
	c.logger.Debug("gl2d released")
}

// UploadAtlas uploads the pixels of a to dev as a texture with a single
// reference. Pass it to several contexts with WithTexture to share it.
func UploadAtlas(dev Device, a *Atlas) (*Resource, error) {
	tex, err := dev.UploadTexture(a.Width, a.Height, PixelRGBA8, a.Pix, WrapClampToEdge)
	if err != nil {
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}
	return NewResource(tex, dev), nil
}

func (c *Context2D) releaseResources() {
	for _, r := range []**Resource{&c.geometry, &c.texture, &c.program} {
		(*r).Unref()
		*r = nil
	}
}

// Atlas returns the font atlas used for text.
func (c *Context2D) Atlas() *Atlas { return c.atlas }

// Clear discards everything drawn since the last Clear or Render and
// resets the color to opaque white and disables scissoring. Buffer
// capacity is kept.
func (c *Context2D) Clear() {
	c.vertices.Clear()
	c.calls.Reset()
	c.state.Color = White
	c.state.Scissor = IRect{}
}

// SetColor sets the color used by subsequent shapes and text.
func (c *Context2D) SetColor(col RGBA) { c.state.Color = col }

// SetColorRGBA sets the color from float components (0.0-1.0).
func (c *Context2D) SetColorRGBA(r, g, b, a float32) { c.state.Color = RGBA{r, g, b, a} }

// SetColorARGB sets the color from a packed 0xAARRGGBB value.
func (c *Context2D) SetColorARGB(argb uint32) { c.state.Color = ARGB(argb) }

// Color returns the current color.
func (c *Context2D) Color() RGBA { return c.state.Color }

// SetScissor restricts the next Render to r. The rectangle is discarded by
// Clear and Render like the rest of the frame. An empty rectangle disables
// scissoring.
func (c *Context2D) SetScissor(r IRect) { c.state.Scissor = r }

// State returns a copy of the style state.
func (c *Context2D) State() State { return c.state }

// VertexCount returns the number of vertices accumulated this frame.
func (c *Context2D) VertexCount() int { return c.vertices.Len() }

// Vertices returns the vertices accumulated this frame. The slice is only
// valid until the next drawing call.
func (c *Context2D) Vertices() []Vertex { return c.vertices.Vertices() }

// DrawCalls returns the draw-call runs accumulated this frame, including
// empty ones. The slice is only valid until the next drawing call.
func (c *Context2D) DrawCalls() []DrawCall { return c.calls.Calls() }

// LastStats returns what the previous Render submitted.
func (c *Context2D) LastStats() Stats { return c.lastStats }

// Render submits everything drawn since the last Clear or Render to the
// (x, y, width, height) viewport, then resets the frame state.
func (c *Context2D) Render(x, y, width, height int) error {
	defer c.Clear()

	if !c.initialized {
		return ErrNotInitialized
	}

	c.state.Viewport = IRect{X: x, Y: y, W: width, H: height}

	dev := c.dev
	dev.Begin2D(c.state.Viewport, c.state.Scissor)
	dev.BindVertexBuffer(c.geometry.Handle(), c.vertices.Vertices())
	dev.BindProgram(c.program.Handle())
	dev.SetUniformVec2(UniformScreenSize, Vec2{X: float32(width), Y: float32(height)})
	dev.BindTexture(0, c.texture.Handle())
	dev.SetUniformInt(UniformFontTexture, 0)

	var stats Stats
	c.calls.Replay(func(t Topology, start, count int) {
		dev.DrawArrays(t, start, count)
		stats.add(t, count)
	})
	c.lastStats = stats

	c.logger.Debug("gl2d frame", slog.Any("stats", stats))
	return nil
}

// RenderSize is Render with the viewport origin at (0, 0).
func (c *Context2D) RenderSize(width, height int) error {
	return c.Render(0, 0, width, height)
}
