// Package opengl implements gl2d.Device on OpenGL 4.1 core profile.
package opengl

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/gl2d"
)

// ErrNoContext is returned by NewDevice when no OpenGL context is current
// on the calling thread.
var ErrNoContext = errors.New("opengl: no current GL context")

// Device is a gl2d.Device backed by the OpenGL context current on the
// rendering thread. It tracks every object it creates so that Close can
// free whatever is still alive.
type Device struct {
	logger *slog.Logger

	// release maps each resource kind to the GL call that frees it.
	release map[gl2d.ResourceKind]func(id uint32)
	live    map[gl2d.Handle]struct{}

	buffers  map[uint32]uint32 // vao -> vbo
	uniforms map[uint32]map[string]int32
	program  uint32
}

// DeviceOption configures a Device.
type DeviceOption func(*Device)

// WithDeviceLogger sets the logger used for resource lifetimes.
func WithDeviceLogger(l *slog.Logger) DeviceOption {
	return func(d *Device) { d.logger = l }
}

// NewDevice loads the OpenGL function pointers for the current context.
// It must be called after a context has been made current and before any
// other method.
func NewDevice(opts ...DeviceOption) (*Device, error) {
	d := &Device{
		logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
		live:     make(map[gl2d.Handle]struct{}),
		buffers:  make(map[uint32]uint32),
		uniforms: make(map[uint32]map[string]int32),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "init OpenGL")
	}
	if gl.GetString(gl.VERSION) == nil {
		return nil, ErrNoContext
	}

	d.release = map[gl2d.ResourceKind]func(uint32){
		gl2d.KindTexture: func(id uint32) { gl.DeleteTextures(1, &id) },
		gl2d.KindProgram: d.deleteProgram,
		gl2d.KindVertexArray: func(id uint32) {
			if vbo, ok := d.buffers[id]; ok {
				gl.DeleteBuffers(1, &vbo)
				delete(d.buffers, id)
			}
			gl.DeleteVertexArrays(1, &id)
		},
	}

	d.logger.Debug("opengl device ready",
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))
	return d, nil
}

func (d *Device) track(h gl2d.Handle) gl2d.Handle {
	d.live[h] = struct{}{}
	d.logger.Debug("gl object created", slog.String("handle", h.String()))
	return h
}

func (d *Device) deleteProgram(id uint32) {
	delete(d.uniforms, id)
	if d.program == id {
		d.program = 0
	}
	gl.DeleteProgram(id)
}

// Release frees the GL object behind h. Unknown or already released
// handles are ignored.
func (d *Device) Release(h gl2d.Handle) {
	if _, ok := d.live[h]; !ok {
		return
	}
	delete(d.live, h)
	if fn, ok := d.release[h.Kind]; ok {
		fn(h.ID)
	}
	d.logger.Debug("gl object released", slog.String("handle", h.String()))
}

// Live returns the number of objects created and not yet released.
func (d *Device) Live() int { return len(d.live) }

// Close releases every object still alive.
func (d *Device) Close() {
	if n := len(d.live); n > 0 {
		d.logger.Warn("releasing leaked gl objects", slog.Int("count", n))
	}
	for h := range d.live {
		d.Release(h)
	}
}

// CompileProgram compiles and links a vertex+fragment program.
func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (gl2d.Handle, error) {
	prog, err := createShaderProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return gl2d.Handle{}, err
	}
	return d.track(gl2d.Handle{Kind: gl2d.KindProgram, ID: prog}), nil
}

// UploadTexture creates a nearest-filtered 2D texture from pix.
func (d *Device) UploadTexture(width, height int, format gl2d.PixelFormat, pix []byte, wrap gl2d.WrapMode) (gl2d.Handle, error) {
	if format != gl2d.PixelRGBA8 {
		return gl2d.Handle{}, errors.Errorf("unsupported pixel format %d", format)
	}
	if wrap != gl2d.WrapClampToEdge {
		return gl2d.Handle{}, errors.Errorf("unsupported wrap mode %d", wrap)
	}
	if len(pix) < width*height*4 {
		return gl2d.Handle{}, errors.Errorf("texture data too short: %d bytes for %dx%d", len(pix), width, height)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return gl2d.Handle{}, errors.Errorf("glTexImage2D failed: 0x%x", e)
	}
	return d.track(gl2d.Handle{Kind: gl2d.KindTexture, ID: tex}), nil
}

// CreateVertexBuffer creates a vertex array with a streaming buffer laid
// out as described. The returned handle names the vertex array; its
// buffer is freed along with it.
func (d *Device) CreateVertexBuffer(layout gl2d.VertexLayout) (gl2d.Handle, error) {
	if layout.Stride <= 0 {
		return gl2d.Handle{}, errors.Errorf("invalid vertex stride %d", layout.Stride)
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	for _, a := range layout.Attribs {
		if a.Type != gl2d.AttribFloat32 {
			gl.BindVertexArray(0)
			gl.DeleteBuffers(1, &vbo)
			gl.DeleteVertexArrays(1, &vao)
			return gl2d.Handle{}, errors.Errorf("attribute %d: unsupported type %d", a.Location, a.Type)
		}
		gl.VertexAttribPointerWithOffset(a.Location, int32(a.Components), gl.FLOAT, false, int32(layout.Stride), a.Offset)
		gl.EnableVertexAttribArray(a.Location)
	}
	gl.BindVertexArray(0)

	d.buffers[vao] = vbo
	return d.track(gl2d.Handle{Kind: gl2d.KindVertexArray, ID: vao}), nil
}

// Begin2D sets up the fixed-function state for 2D overlay drawing.
func (d *Device) Begin2D(viewport, scissor gl2d.IRect) {
	gl.Viewport(int32(viewport.X), int32(viewport.Y), int32(viewport.W), int32(viewport.H))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	if scissor.Empty() {
		gl.Disable(gl.SCISSOR_TEST)
		return
	}
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(scissor.X), int32(scissor.Y), int32(scissor.W), int32(scissor.H))
}

// BindVertexBuffer uploads vertices and binds the vertex array.
func (d *Device) BindVertexBuffer(h gl2d.Handle, vertices []gl2d.Vertex) {
	gl.BindVertexArray(h.ID)
	vbo := d.buffers[h.ID]
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(vertices) == 0 {
		return
	}
	size := len(vertices) * int(unsafe.Sizeof(gl2d.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vertices), gl.STREAM_DRAW)
}

func (d *Device) BindProgram(h gl2d.Handle) {
	gl.UseProgram(h.ID)
	d.program = h.ID
}

func (d *Device) BindTexture(slot int, h gl2d.Handle) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, h.ID)
}

// uniform returns the location of name in the bound program, caching
// lookups per program.
func (d *Device) uniform(name string) int32 {
	locs, ok := d.uniforms[d.program]
	if !ok {
		locs = make(map[string]int32)
		d.uniforms[d.program] = locs
	}
	loc, ok := locs[name]
	if !ok {
		loc = gl.GetUniformLocation(d.program, gl.Str(name+"\x00"))
		if loc < 0 {
			d.logger.Warn("uniform not found", slog.String("name", name))
		}
		locs[name] = loc
	}
	return loc
}

func (d *Device) SetUniformVec2(name string, v gl2d.Vec2) {
	gl.Uniform2f(d.uniform(name), v.X, v.Y)
}

func (d *Device) SetUniformInt(name string, v int32) {
	gl.Uniform1i(d.uniform(name), v)
}

// DrawArrays draws count vertices of the bound vertex array.
func (d *Device) DrawArrays(t gl2d.Topology, start, count int) {
	mode := uint32(gl.TRIANGLES)
	if t == gl2d.Lines {
		mode = gl.LINES
	}
	gl.DrawArrays(mode, int32(start), int32(count))
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, errors.Errorf("shader program linking failed: %s", gl.GoStr(&log[0]))
	}

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compilation failed: %s", gl.GoStr(&log[0]))
	}
	return shader, nil
}

var _ gl2d.Device = (*Device)(nil)
