// Example draws a system-statistics overlay with gl2d.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The overlay shows frame timing, a frame-time graph and host CPU and memory
// usage. F3 toggles it, Escape quits. Settings are read from hud.yml in the
// working directory if present.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gl2d"
	"github.com/go-theft-auto/gl2d/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "hud.yml", "configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger, logFile := newLogger(cfg)
	defer logFile.Close()

	window, err := opengl.NewWindow(opengl.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Terminate()

	dev, err := opengl.NewDevice(opengl.WithDeviceLogger(logger))
	if err != nil {
		return fmt.Errorf("opengl device: %w", err)
	}
	defer dev.Close()

	ctx := gl2d.New(dev, gl2d.WithLogger(logger))
	if err := ctx.Init(); err != nil {
		return fmt.Errorf("gl2d init: %w", err)
	}
	defer ctx.Done()

	showHUD := true
	window.OnKey(glfw.KeyF3, func() { showHUD = !showHUD })

	hud := newHUD(gl2d.ARGB(cfg.Color), newSysStats(cfg.StatsInterval, logger))
	nextLog := time.Now()

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		hud.frame(now, now.Sub(last))
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if showHUD {
			hud.draw(ctx)
		}
		if err := ctx.RenderSize(w, h); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		if now.After(nextLog) {
			nextLog = now.Add(10 * cfg.StatsInterval)
			logger.Info("frame",
				slog.Any("gl2d", ctx.LastStats()),
				slog.Any("system", hud.sys))
		}

		window.SwapBuffers()
	}

	return nil
}
