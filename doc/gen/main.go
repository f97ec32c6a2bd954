// Gen renders reference screenshots of scroll view layouts into doc/imgs.
//
// Usage:
//
//	go run ./doc/gen/
//
// Each screenshot builds a view, scrolls it by a fixed amount, lets it
// settle for a few frames and reads the framebuffer back as a JPEG.
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

type screenshot struct {
	name          string
	width, height int
	frames        int
	scroll        float32
	build         func(vp scrollview.Viewport) (scrollview.View, error)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "scrollview screenshots", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// scrollable is implemented by both view kinds.
type scrollable interface {
	scrollview.View
	Scroller() *scrollview.Scroller
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)

	vp := scrollview.Viewport{
		Size:      scrollview.Vec2{X: float32(s.width) - 20, Y: float32(s.height) - 20},
		Transform: scrollview.Translate(10, 10),
	}
	view, err := s.build(vp)
	if err != nil {
		return err
	}
	if d, ok := view.(interface{ Destroy() int }); ok {
		defer d.Destroy()
	}
	if sv, ok := view.(scrollable); ok && s.scroll != 0 {
		sv.Scroller().ScrollBy(s.scroll)
	}

	frames := 4
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		view.Tick(1.0 / 60.0)
		if err := scrollview.RenderFrame(renderer, view); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom-up
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

var palette = []uint32{
	scrollview.RGBA(66, 135, 245, 255),
	scrollview.RGBA(245, 166, 35, 255),
	scrollview.RGBA(80, 200, 120, 255),
	scrollview.RGBA(220, 80, 90, 255),
}

func blocks(size scrollview.Vec2, count int) scrollview.ProviderFuncs {
	bind := func(b *scrollview.Block, i int) {
		b.Bind(i, fmt.Sprintf("item %d", i))
		b.Fill = palette[i%len(palette)]
		b.Border = scrollview.ColorWhite
	}
	return scrollview.ProviderFuncs{
		Valid: func(i int) bool { return i >= 0 && i < count },
		Get: func(i int) scrollview.Item {
			b := scrollview.NewBlock(size, 0)
			bind(b, i)
			return b
		},
		Refresh: func(it scrollview.Item, i int) {
			bind(it.(*scrollview.Block), i)
		},
	}
}

func recycled(provider scrollview.ItemProvider, start int, opts ...scrollview.Option) func(scrollview.Viewport) (scrollview.View, error) {
	return func(vp scrollview.Viewport) (scrollview.View, error) {
		v, err := scrollview.NewRecycleView(vp, provider, opts...)
		if err != nil {
			return nil, err
		}
		if err := v.Initialize(start); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "vertical_list", width: 300, height: 400,
			build: recycled(blocks(scrollview.Vec2{X: 280, Y: 48}, 1000), 0, scrollview.Spacing(6)),
		},
		{
			name: "vertical_list_scrolled", width: 300, height: 400, scroll: 130,
			build: recycled(blocks(scrollview.Vec2{X: 280, Y: 48}, 1000), 40,
				scrollview.Spacing(6), scrollview.Inertia(false)),
		},
		{
			name: "horizontal_list", width: 500, height: 140,
			build: recycled(blocks(scrollview.Vec2{X: 90, Y: 120}, 1000), 0,
				scrollview.Horizontal(), scrollview.Spacing(8)),
		},
		{
			name: "grid", width: 500, height: 400,
			build: recycled(blocks(scrollview.Vec2{X: 150, Y: 100}, 1000), 0,
				scrollview.LineCount(3), scrollview.Spacing(8), scrollview.CrossSpacing(8)),
		},
		{
			name: "padded_grid_end", width: 500, height: 400,
			build: recycled(blocks(scrollview.Vec2{X: 150, Y: 100}, 100), 96,
				scrollview.LineCount(3), scrollview.Spacing(8), scrollview.CrossSpacing(8),
				scrollview.Pad(12, 12)),
		},
		{
			name: "default_view", width: 300, height: 400,
			build: func(vp scrollview.Viewport) (scrollview.View, error) {
				v, err := scrollview.NewDefaultView(vp, scrollview.Spacing(4))
				if err != nil {
					return nil, err
				}
				err = v.Refresh(6, func(i int) scrollview.Item {
					b := scrollview.NewBlock(scrollview.Vec2{X: 280, Y: 40}, palette[i%len(palette)])
					b.Bind(i, fmt.Sprintf("fixed %d", i))
					return b
				})
				if err != nil {
					return nil, err
				}
				v.FitContent()
				return v, nil
			},
		},
	}
}
