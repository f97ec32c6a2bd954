package scrollview

import "fmt"

// Renderer is the interface for rendering draw data. Backends implement it.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// View is a scroll container a Host can drive each frame.
// RecycleView and DefaultView implement it.
type View interface {
	HandleInput(in *InputState)
	Tick(dt float32)
	Render(dl *DrawList)
}

// Host drives a set of views against one renderer.
//
// Usage:
//
//	host := scrollview.NewHost(renderer, list, grid)
//	for !window.ShouldClose() {
//	    glfw.PollEvents()
//	    if err := host.Frame(adapter.Update(dt), dt); err != nil {
//	        return err
//	    }
//	    adapter.EndFrame()
//	}
type Host struct {
	renderer Renderer
	views    []View
}

// NewHost creates a host rendering views in order.
func NewHost(renderer Renderer, views ...View) *Host {
	return &Host{renderer: renderer, views: views}
}

// Add appends a view.
func (h *Host) Add(v View) {
	h.views = append(h.views, v)
}

// Resize notifies the renderer of a display size change.
func (h *Host) Resize(width, height int) {
	h.renderer.Resize(width, height)
}

// Frame routes input to every view, advances them by dt seconds and renders
// them.
func (h *Host) Frame(in *InputState, dt float32) error {
	for _, v := range h.views {
		if in != nil {
			v.HandleInput(in)
		}
		v.Tick(dt)
	}
	return RenderFrame(h.renderer, h.views...)
}

// RenderFrame draws views into a pooled DrawList and hands it to r.
func RenderFrame(r Renderer, views ...View) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	for _, v := range views {
		v.Render(dl)
	}
	dl.Finalize()
	if len(dl.CmdBuffer) == 0 {
		return nil
	}
	if err := r.Render(dl); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}
