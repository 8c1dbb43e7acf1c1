// Package overlay provides the cheat-sheet window toggled by the global hotkey.
package overlay

import (
	"sync"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"

	"keysheet/internal/config"
	"keysheet/internal/i18n"
	"keysheet/internal/ui"
)

// Source provides the entries to display.
type Source interface {
	Entries() []config.ShortcutEntry
}

// Window is the read-only shortcut list.
type Window struct {
	host   ui.Host
	source Source
	post   func(fn func()) bool

	mu   sync.Mutex
	rows []config.ShortcutEntry

	table   ui.Table
	hideBtn widget.Clickable
}

// New creates the overlay window. It starts hidden.
// Hide requests from the window itself (Esc, Hide button) go through post,
// typically the UI queue; nil runs them on a new goroutine.
func New(source Source, post func(fn func()) bool) *Window {
	if post == nil {
		post = func(fn func()) bool {
			go fn()
			return true
		}
	}
	return &Window{source: source, post: post}
}

// SetRunLoop replaces the Gio event loop. Tests use it to run without a display.
func (w *Window) SetRunLoop(run func(stop <-chan struct{})) {
	w.host.RunLoop = run
}

// Show refreshes the rows and displays the window.
// If the window is already visible it is refreshed and raised.
func (w *Window) Show() {
	w.refresh()
	if w.host.IsOpen() {
		w.host.Invalidate()
		w.host.Raise()
		return
	}
	w.host.Open([]app.Option{
		app.Title("Keysheet - " + i18n.T("overlay_window")),
		app.Size(unit.Dp(420), unit.Dp(360)),
		app.MinSize(unit.Dp(320), unit.Dp(240)),
	}, w.frame)
}

// Refresh reloads the rows if the window is visible.
func (w *Window) Refresh() {
	if !w.host.IsOpen() {
		return
	}
	w.refresh()
	w.host.Invalidate()
}

// Hide closes the window.
func (w *Window) Hide() {
	w.host.Close()
}

// Toggle shows the window when hidden and hides it when shown.
func (w *Window) Toggle() {
	if w.IsVisible() {
		w.Hide()
		return
	}
	w.Show()
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	return w.host.IsOpen()
}

// Rows returns the entries shown since the last Show.
func (w *Window) Rows() []config.ShortcutEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]config.ShortcutEntry, len(w.rows))
	copy(out, w.rows)
	return out
}

func (w *Window) refresh() {
	entries := w.source.Entries()
	w.mu.Lock()
	w.rows = entries
	w.mu.Unlock()
}

// requestHide is called on the window goroutine, which Hide would block on.
func (w *Window) requestHide() {
	w.post(w.Hide)
}

func (w *Window) frame(gtx layout.Context) {
	// ESC hides the window
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			w.requestHide()
		}
	}
	if w.hideBtn.Clicked(gtx) {
		w.requestHide()
	}

	ui.FillBackground(gtx)
	w.draw(gtx, w.Rows())
}

func (w *Window) draw(gtx layout.Context, rows []config.ShortcutEntry) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return ui.Title(gtx, i18n.T("overlay_title"))
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				if len(rows) == 0 {
					return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return ui.Label(gtx, i18n.T("overlay_empty"), unit.Sp(13), ui.ColorTextDim, font.Normal)
					})
				}
				headers := [2]string{i18n.T("column_shortcut"), i18n.T("column_description")}
				dims, _ := w.table.Layout(gtx, headers, rows, -1)
				return dims
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return ui.Button(gtx, &w.hideBtn, i18n.T("overlay_hide"), ui.ColorPanel)
				})
			}),
		)
	})
}
