// Package ui holds the Gio plumbing shared by the application windows.
package ui

import (
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
)

// closeTimeout bounds how long Close waits for the event loop to exit.
const closeTimeout = time.Second

// Host owns one Gio window that can be opened and closed repeatedly.
// Every Open creates a fresh app.Window running its own event loop.
type Host struct {
	// RunLoop replaces the Gio event loop. Tests set it to run headless;
	// it must return once stop is closed.
	RunLoop func(stop <-chan struct{})

	mu      sync.Mutex
	running bool
	window  *app.Window
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// Open shows the window. It returns false if the window is already open.
// frame is called for every FrameEvent from the window goroutine.
func (h *Host) Open(opts []app.Option, frame func(gtx layout.Context)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return false
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	h.running = true
	h.stopCh = stop
	h.doneCh = done

	run := h.RunLoop
	if run == nil {
		run = func(stop <-chan struct{}) { h.loop(opts, frame, stop) }
	}

	go func() {
		defer close(done)
		run(stop)

		// The user may close the window without Close being called.
		h.mu.Lock()
		if h.stopCh == stop {
			h.running = false
			h.stopCh = nil
			h.doneCh = nil
		}
		h.mu.Unlock()
	}()
	return true
}

// Close closes the window and waits for its event loop to finish.
// It must not be called from inside frame; use `go host.Close()` there.
func (h *Host) Close() {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()
		return
	}
	h.running = false
	stop := h.stopCh
	done := h.doneCh
	h.stopCh = nil
	h.doneCh = nil
	h.mu.Unlock()

	close(stop)

	select {
	case <-done:
	case <-time.After(closeTimeout):
	}
}

// IsOpen reports whether the window is currently shown.
func (h *Host) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// Invalidate schedules a redraw.
func (h *Host) Invalidate() {
	h.mu.Lock()
	w := h.window
	h.mu.Unlock()
	if w != nil {
		w.Invalidate()
	}
}

// Raise brings an open window to the front.
func (h *Host) Raise() {
	h.mu.Lock()
	w := h.window
	h.mu.Unlock()
	if w != nil {
		w.Perform(system.ActionRaise)
	}
}

func (h *Host) loop(opts []app.Option, frame func(gtx layout.Context), stop <-chan struct{}) {
	w := new(app.Window)
	w.Option(opts...)

	h.mu.Lock()
	h.window = w
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		if h.window == w {
			h.window = nil
		}
		h.mu.Unlock()
	}()

	destroyed := make(chan struct{})
	defer close(destroyed)

	go func() {
		select {
		case <-stop:
			w.Perform(system.ActionClose)
		case <-destroyed:
		}
	}()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			frame(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
