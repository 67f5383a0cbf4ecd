package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// WindowConfig describes the window created by NewWindow.
type WindowConfig struct {
	Width, Height int
	Title         string
	VSync         bool
	Hidden        bool // Offscreen rendering, e.g. for screenshots
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	*glfw.Window

	keys map[glfw.Key]func()
}

// NewWindow initializes GLFW and opens a window with an OpenGL 4.1 core
// context made current on the calling thread, which must be the main
// thread. Terminate must be called when done.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{Window: win, keys: make(map[glfw.Key]func())}
	win.SetKeyCallback(w.keyCallback)
	w.OnKey(glfw.KeyEscape, func() { win.SetShouldClose(true) })
	return w, nil
}

// OnKey calls fn whenever key is pressed. Escape closes the window unless
// overridden.
func (w *Window) OnKey(key glfw.Key, fn func()) {
	w.keys[key] = fn
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if fn, ok := w.keys[key]; ok {
		fn()
	}
}

// Terminate destroys the window and shuts GLFW down.
func (w *Window) Terminate() {
	w.Destroy()
	glfw.Terminate()
}
