package mapview

import (
	"sync"

	"github.com/google/uuid"

	"github.com/alexanderramin/londonapp/internal/geo"
)

// Instance is one live map. It owns its model, the current viewport and the
// selected marker until disposed.
type Instance struct {
	ID string

	mu        sync.Mutex
	model     Model
	viewport  geo.Viewport
	selected  int
	live      bool
	listeners []func()
}

func newInstance(model Model) *Instance {
	return &Instance{
		ID:       uuid.New().String(),
		model:    model,
		viewport: model.Viewport,
		live:     true,
	}
}

// Live reports whether the instance has not been disposed.
func (in *Instance) Live() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.live
}

// Model returns the instance's model. A disposed instance has no markers.
func (in *Instance) Model() Model {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.model
}

// Viewport returns the current viewport.
func (in *Instance) Viewport() geo.Viewport {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.viewport
}

// OnDispose registers fn to run once when the instance is disposed.
func (in *Instance) OnDispose(fn func()) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.live {
		in.listeners = append(in.listeners, fn)
	}
}

// Dispose clears markers, route and listeners. Calling it again is a no-op.
func (in *Instance) Dispose() {
	in.mu.Lock()
	if !in.live {
		in.mu.Unlock()
		return
	}
	listeners := in.listeners
	in.live = false
	in.listeners = nil
	in.model.Markers = nil
	in.model.Route = nil
	in.selected = 0
	in.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Selected returns the 1-based selected marker, or 0.
func (in *Instance) Selected() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.selected
}

// Selection returns the selected marker.
func (in *Instance) Selection() (Marker, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.selected < 1 || in.selected > len(in.model.Markers) {
		return Marker{}, false
	}
	return in.model.Markers[in.selected-1], true
}

// Cycle moves the selection by delta, wrapping around the markers.
func (in *Instance) Cycle(delta int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	n := len(in.model.Markers)
	if n == 0 {
		return
	}
	cur := in.selected - 1
	if cur < 0 && delta < 0 {
		cur = 0
	}
	next := ((cur+delta)%n + n) % n
	in.selected = next + 1
}

// Zoom steps the zoom level, clamped to [0, maxZoom].
func (in *Instance) Zoom(delta, maxZoom int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.viewport.Empty {
		return
	}
	in.viewport = in.viewport.WithZoom(in.viewport.Zoom+delta, maxZoom)
}

// Render draws the instance on a cols × rows canvas.
func (in *Instance) Render(cols, rows int) string {
	in.mu.Lock()
	model, vp, sel := in.model, in.viewport, in.selected
	in.mu.Unlock()
	return Draw(model, vp, cols, rows, sel).String()
}

// Holder keeps at most one live Instance.
type Holder struct {
	mu      sync.Mutex
	current *Instance
}

// Open disposes the current instance, if any, then makes a new one for model.
func (h *Holder) Open(model Model) *Instance {
	h.Close()

	in := newInstance(model)
	h.mu.Lock()
	h.current = in
	h.mu.Unlock()
	return in
}

// Close disposes the current instance, if any.
func (h *Holder) Close() {
	h.mu.Lock()
	prev := h.current
	h.current = nil
	h.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}
}

// Current returns the live instance, or nil.
func (h *Holder) Current() *Instance {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}
