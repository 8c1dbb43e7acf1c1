// Package launcher provides the main window shown at startup.
package launcher

import (
	"image/color"
	"sync"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"keysheet/internal/i18n"
	"keysheet/internal/ui"
)

// Window represents the launcher window.
type Window struct {
	host ui.Host

	mu         sync.Mutex
	hotkey     string
	onSettings func()
	onShow     func()

	settingsBtn widget.Clickable
	showBtn     widget.Clickable
}

// New creates a new launcher window.
func New() *Window {
	return &Window{}
}

// OnSettings sets the callback for the Settings button.
func (w *Window) OnSettings(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onSettings = fn
}

// OnShowShortcuts sets the callback for the Show Shortcuts button.
func (w *Window) OnShowShortcuts(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onShow = fn
}

// SetHotkey updates the hotkey shown in the status line.
func (w *Window) SetHotkey(hk string) {
	w.mu.Lock()
	w.hotkey = hk
	w.mu.Unlock()
	w.host.Invalidate()
}

func (w *Window) status() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.hotkey == "" {
		return i18n.T("tray_status_none")
	}
	return i18n.Tf("tray_status", w.hotkey)
}

// Show displays the launcher, raising it if already open.
func (w *Window) Show() {
	if w.host.IsOpen() {
		w.host.Raise()
		return
	}
	w.host.Open([]app.Option{
		app.Title("Keysheet"),
		app.Size(unit.Dp(400), unit.Dp(260)),
		app.MinSize(unit.Dp(340), unit.Dp(240)),
	}, w.frame)
}

// Hide closes the launcher.
func (w *Window) Hide() {
	w.host.Close()
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	return w.host.IsOpen()
}

// RefreshUI redraws the window after a language change.
func (w *Window) RefreshUI() {
	w.host.Invalidate()
}

func (w *Window) frame(gtx layout.Context) {
	w.mu.Lock()
	onSettings, onShow := w.onSettings, w.onShow
	w.mu.Unlock()

	if w.settingsBtn.Clicked(gtx) && onSettings != nil {
		onSettings()
	}
	if w.showBtn.Clicked(gtx) && onShow != nil {
		onShow()
	}

	ui.FillBackground(gtx)
	w.draw(gtx)
}

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	centered := func(size unit.Sp, s string, col color.NRGBA, weight font.Weight) layout.Widget {
		return func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			lbl := material.Label(ui.Theme(), size, s)
			lbl.Color = col
			lbl.Font.Weight = weight
			lbl.Alignment = text.Middle
			return lbl.Layout(gtx)
		}
	}

	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(centered(unit.Sp(20), i18n.T("launcher_title"), ui.ColorText, font.Bold)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(centered(unit.Sp(13), i18n.T("launcher_hint"), ui.ColorTextDim, font.Normal)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(centered(unit.Sp(13), i18n.T("launcher_hint2"), ui.ColorTextDim, font.Normal)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(ui.Divider),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(centered(unit.Sp(12), w.status(), ui.ColorAccent, font.Medium)),

			layout.Flexed(1, layout.Spacer{}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return ui.ButtonRow(gtx, false,
						func(gtx layout.Context) layout.Dimensions {
							return ui.Button(gtx, &w.settingsBtn, i18n.T("launcher_settings"), ui.ColorPanel)
						},
						func(gtx layout.Context) layout.Dimensions {
							return ui.Button(gtx, &w.showBtn, i18n.T("launcher_show"), ui.ColorAccent)
						},
					)
				})
			}),
		)
	})
}
