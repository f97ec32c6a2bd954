// Example runs three recycle views and a default view side by side in a
// GLFW window: a vertical list, a horizontal list, a three-column grid and
// a short non-recycling list. Drag, use the wheel, or hover a view and
// press the arrow and Page keys.
//
// Prerequisites:
//
//	devbox shell              # provides Go + OpenGL/X11 headers
//	go run ./example/ -v      # -v logs every window mutation
//
// View settings for the vertical list can be overridden with a TOML file
// (see -config).
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/opengl"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	windowTitle  = "scrollview example"
	itemCount    = 10000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "scrollview.toml", "view config file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := scrollview.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyLogging()
	if verbose {
		scrollview.SetVerbose(true)
	}
	listOpts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("config options: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)

	views, err := buildViews(listOpts)
	if err != nil {
		return err
	}
	defer func() {
		for _, v := range views {
			if d, ok := v.(interface{ Destroy() int }); ok {
				d.Destroy()
			}
		}
	}()
	host := scrollview.NewHost(renderer, views...)

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		w, h := window.GetFramebufferSize()
		host.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := host.Frame(input.Update(dt), dt); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		input.EndFrame()

		window.SwapBuffers()
	}
	return nil
}

// buildViews creates the demo views laid out left to right.
func buildViews(listOpts []scrollview.Option) ([]scrollview.View, error) {
	list, err := scrollview.NewRecycleView(
		viewportAt(20, 20, 220, 560),
		blockProvider(scrollview.Vec2{X: 220, Y: 48}),
		listOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("list view: %w", err)
	}

	strip, err := scrollview.NewRecycleView(
		viewportAt(260, 20, 460, 120),
		blockProvider(scrollview.Vec2{X: 90, Y: 120}),
		scrollview.Horizontal(),
		scrollview.Spacing(8),
	)
	if err != nil {
		return nil, fmt.Errorf("strip view: %w", err)
	}

	grid, err := scrollview.NewRecycleView(
		viewportAt(260, 160, 460, 420),
		blockProvider(scrollview.Vec2{X: 148, Y: 100}),
		scrollview.LineCount(3),
		scrollview.Spacing(8),
		scrollview.CrossSpacing(8),
		scrollview.Movement(scrollview.MovementClamped),
	)
	if err != nil {
		return nil, fmt.Errorf("grid view: %w", err)
	}

	short, err := scrollview.NewDefaultView(viewportAt(740, 20, 240, 560), scrollview.Spacing(4))
	if err != nil {
		return nil, fmt.Errorf("default view: %w", err)
	}

	for _, v := range []*scrollview.RecycleView{list, strip, grid} {
		if err := v.Initialize(0); err != nil {
			return nil, err
		}
	}
	if err := short.Refresh(8, func(i int) scrollview.Item {
		b := scrollview.NewBlock(scrollview.Vec2{X: 240, Y: 40}, palette[i%len(palette)])
		b.Bind(i, fmt.Sprintf("fixed %d", i))
		return b
	}); err != nil {
		return nil, err
	}
	short.FitContent()

	return []scrollview.View{list, strip, grid, short}, nil
}

func viewportAt(x, y, w, h float32) scrollview.Viewport {
	return scrollview.Viewport{
		Size:      scrollview.Vec2{X: w, Y: h},
		Transform: scrollview.Translate(x, y),
	}
}

var palette = []uint32{
	scrollview.RGBA(66, 135, 245, 255),
	scrollview.RGBA(245, 166, 35, 255),
	scrollview.RGBA(80, 200, 120, 255),
	scrollview.RGBA(220, 80, 90, 255),
}

// blockProvider serves itemCount colored blocks of one size.
func blockProvider(size scrollview.Vec2) scrollview.ProviderFuncs {
	bind := func(b *scrollview.Block, i int) {
		b.Bind(i, fmt.Sprintf("item %d", i))
		b.Fill = palette[i%len(palette)]
		b.Border = scrollview.ColorWhite
	}
	return scrollview.ProviderFuncs{
		Valid: func(i int) bool { return i >= 0 && i < itemCount },
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
