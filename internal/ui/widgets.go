package ui

import (
	"image"
	"image/color"
	"sync"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// Color palette - modern dark theme
var (
	ColorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	ColorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	ColorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	ColorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	ColorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	ColorAccent     = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
	ColorSelected   = color.NRGBA{R: 60, G: 100, B: 160, A: 255}
)

var (
	themeOnce sync.Once
	theme     *material.Theme
)

// Theme returns the shared material theme.
func Theme() *material.Theme {
	themeOnce.Do(func() {
		theme = material.NewTheme()
		theme.Palette.Fg = ColorText
		theme.Palette.Bg = ColorBG
		theme.Palette.ContrastBg = ColorAccent
		theme.Palette.ContrastFg = ColorText
	})
	return theme
}

// FillBackground paints the whole window.
func FillBackground(gtx layout.Context) {
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, ColorBG, rect.Op())
}

// Label draws a single text label.
func Label(gtx layout.Context, text string, size unit.Sp, col color.NRGBA, weight font.Weight) layout.Dimensions {
	lbl := material.Label(Theme(), size, text)
	lbl.Color = col
	lbl.Font.Weight = weight
	return lbl.Layout(gtx)
}

// Title draws a window title.
func Title(gtx layout.Context, text string) layout.Dimensions {
	return Label(gtx, text, unit.Sp(20), ColorText, font.Bold)
}

// SectionHeader draws a dim section caption.
func SectionHeader(gtx layout.Context, text string) layout.Dimensions {
	return Label(gtx, text, unit.Sp(12), ColorTextDim, font.Medium)
}

// Rounded lays out content and paints a rounded background behind it.
func Rounded(gtx layout.Context, bg color.NRGBA, radius unit.Dp, content layout.Widget) layout.Dimensions {
	// Record content to measure size
	macro := op.Record(gtx.Ops)
	dims := content(gtx)
	call := macro.Stop()

	rr := gtx.Dp(radius)
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bg, rect.Op(gtx.Ops))

	// Replay content
	call.Add(gtx.Ops)
	return dims
}

// Panel draws content inside a padded rounded panel.
func Panel(gtx layout.Context, content layout.Widget) layout.Dimensions {
	return Rounded(gtx, ColorPanel, unit.Dp(12), func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
	})
}

// Button draws a flat clickable button.
func Button(gtx layout.Context, btn *widget.Clickable, label string, bg color.NRGBA) layout.Dimensions {
	return Rounded(gtx, bg, unit.Dp(8), func(gtx layout.Context) layout.Dimensions {
		return material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{
				Top: unit.Dp(10), Bottom: unit.Dp(10),
				Left: unit.Dp(20), Right: unit.Dp(20),
			}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return Label(gtx, label, unit.Sp(14), ColorText, font.Medium)
			})
		})
	})
}

// ButtonRow lays buttons out horizontally with a gap between them.
func ButtonRow(gtx layout.Context, alignEnd bool, buttons ...layout.Widget) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(buttons)*2+1)
	if alignEnd {
		children = append(children, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}))
	}
	for i, b := range buttons {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
		}
		children = append(children, layout.Rigid(b))
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}
