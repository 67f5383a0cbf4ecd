// Command gen renders sample gl2d drawings, captures framebuffer pixels and
// saves JPEG screenshots to doc/imgs/. It also writes the built-in font
// atlas, magnified, as a BMP.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/ [-v]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/go-theft-auto/gl2d"
	"github.com/go-theft-auto/gl2d/backend/opengl"
)

const atlasScale = 4

func init() {
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "log resource lifetimes and frame statistics")
	flag.Parse()
	gl2d.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string                    // filename without extension
	width  int                       // viewport width
	height int                       // viewport height
	draw   func(ctx *gl2d.Context2D) // drawing function
}

func run() error {
	window, err := opengl.NewWindow(opengl.WindowConfig{
		Width: 800, Height: 600, Title: "screenshot-gen", Hidden: true,
	})
	if err != nil {
		return err
	}
	defer window.Terminate()

	dev, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("opengl device: %w", err)
	}
	defer dev.Close()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	atlas, err := gl2d.DefaultAtlas()
	if err != nil {
		return err
	}
	tex, err := gl2d.UploadAtlas(dev, atlas)
	if err != nil {
		return err
	}
	defer tex.Unref()

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(dev, tex, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	if err := dumpAtlas(filepath.Join(outDir, "font_atlas.bmp")); err != nil {
		return fmt.Errorf("atlas: %w", err)
	}
	fmt.Printf("  font_atlas.bmp (%dx)\n", atlasScale)

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(dev gl2d.Device, tex *gl2d.Resource, s screenshot, outDir string) error {
	// Fresh controller per screenshot to avoid state leaking between
	// captures. The atlas texture is uploaded once and shared.
	ctx := gl2d.New(dev, gl2d.WithTexture(tex))
	if err := ctx.Init(); err != nil {
		return err
	}
	defer ctx.Done()

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.draw(ctx)
	if err := ctx.RenderSize(s.width, s.height); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// dumpAtlas writes the built-in atlas scaled up with nearest-neighbor
// sampling so individual texels stay visible.
func dumpAtlas(path string) error {
	a, err := gl2d.DefaultAtlas()
	if err != nil {
		return err
	}
	src := a.Image()
	dst := image.NewRGBA(image.Rect(0, 0, a.Width*atlasScale, a.Height*atlasScale))
	// Gray backdrop so the black shadows are distinguishable from empty texels.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: 0x60}), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bmp.Encode(f, dst)
}

// buildScreenshots returns the list of all screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "text", width: 400, height: 120,
			draw: func(ctx *gl2d.Context2D) {
				ctx.TextI(12, 12, "Plain text")
				ctx.SetColorARGB(0xFFFFFF40)
				ctx.TextI(12, 24, "Colored text (yellow)")
				ctx.SetColor(gl2d.White)
				ctx.TextI(12, 36, "Unicode fallback: %s", "→ • ✓ °")
				ctx.TextI(12, 48, "Measured: %v", ctx.MeasureText("Measured"))
			},
		},
		{
			name: "markup", width: 400, height: 80,
			draw: func(ctx *gl2d.Context2D) {
				ctx.TextI(12, 12, "^0^^0 ^1^^1 ^2^^2 ^3^^3 ^4^^4 ^5^^5 ^6^^6 ^7^^7")
				ctx.TextI(12, 24, "^8^^8 ^9^^9 ^a^^a ^b^^b ^c^^c ^d^^d ^e^^e ^f^^f")
				ctx.TextI(12, 40, "Literal caret: 2^^10 = 1024, x^y")
			},
		},
		{
			name: "shapes", width: 300, height: 160,
			draw: func(ctx *gl2d.Context2D) {
				ctx.SetColorARGB(0xFF4080FF)
				ctx.RectangleI(12, 12, 92, 72, true)
				ctx.SetColorARGB(0xFFFF8040)
				ctx.RectangleI(104, 12, 184, 72, false)
				ctx.SetColorARGB(0x8040FF40)
				ctx.RectangleI(60, 40, 140, 100, true)
				ctx.SetColorARGB(0xFFFFFFFF)
				for i := 0; i < 8; i++ {
					ctx.LineI(200, 12+i*8, 288, 72-i*8)
				}
				ctx.LineI(12, 140, 288, 140)
			},
		},
		{
			name: "overlay", width: 320, height: 120,
			draw: func(ctx *gl2d.Context2D) {
				ctx.SetColorARGB(0xA0000000)
				ctx.RectangleI(8, 8, 200, 72, true)
				ctx.SetColorARGB(0xFF808080)
				ctx.RectangleI(8, 8, 200, 72, false)
				ctx.SetColor(gl2d.White)
				ctx.TextI(14, 12, "^eFPS^f %.1f", 59.9)
				ctx.TextI(14, 24, "^ecpu^f %5.1f%%", 12.5)
				ctx.TextI(14, 36, "^emem^f %d / %d MiB", 5120, 16384)
				ctx.TextI(14, 52, "^8%d verts, %d calls", 1234, 3)
			},
		},
	}
}
