package ui

import (
	"image"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"keysheet/internal/config"
)

// titleColumn is the share of the row width given to the shortcut column.
const titleColumn = 0.32

// Table is a two-column shortcut table: Shortcut | Description.
// With Selectable set, rows are clickable and Layout reports the clicked row.
type Table struct {
	Selectable bool

	list layout.List
	rows []*widget.Clickable
}

// Layout draws the header and the rows. selected highlights one row (-1 for none).
// It returns the index of a row clicked during this frame, or -1.
func (t *Table) Layout(gtx layout.Context, headers [2]string, entries []config.ShortcutEntry, selected int) (layout.Dimensions, int) {
	t.list.Axis = layout.Vertical
	for len(t.rows) < len(entries) {
		t.rows = append(t.rows, new(widget.Clickable))
	}

	clicked := -1
	if t.Selectable {
		for i := range entries {
			if t.rows[i].Clicked(gtx) {
				clicked = i
			}
		}
	}

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return columns(gtx,
					func(gtx layout.Context) layout.Dimensions {
						return Label(gtx, headers[0], unit.Sp(12), ColorTextDim, font.Bold)
					},
					func(gtx layout.Context) layout.Dimensions {
						return Label(gtx, headers[1], unit.Sp(12), ColorTextDim, font.Bold)
					},
				)
			})
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return t.list.Layout(gtx, len(entries), func(gtx layout.Context, i int) layout.Dimensions {
				return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return t.layoutRow(gtx, i, entries[i], i == selected)
				})
			})
		}),
	)
	return dims, clicked
}

func (t *Table) layoutRow(gtx layout.Context, i int, e config.ShortcutEntry, selected bool) layout.Dimensions {
	bg := ColorPanelLight
	if selected {
		bg = ColorSelected
	}

	content := func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(10), Right: unit.Dp(10),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return columns(gtx,
				func(gtx layout.Context) layout.Dimensions {
					return Label(gtx, e.Title, unit.Sp(14), ColorAccent, font.Medium)
				},
				func(gtx layout.Context) layout.Dimensions {
					return Label(gtx, e.Description, unit.Sp(14), ColorText, font.Normal)
				},
			)
		})
	}

	// Full-width rows
	gtx.Constraints.Min.X = gtx.Constraints.Max.X

	return Rounded(gtx, bg, unit.Dp(6), func(gtx layout.Context) layout.Dimensions {
		if !t.Selectable {
			return content(gtx)
		}
		return material.Clickable(gtx, t.rows[i], content)
	})
}

func columns(gtx layout.Context, left, right layout.Widget) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Start}.Layout(gtx,
		layout.Flexed(titleColumn, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return left(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
		layout.Flexed(1-titleColumn, right),
	)
}

// Divider draws a thin horizontal line.
func Divider(gtx layout.Context) layout.Dimensions {
	height := gtx.Dp(unit.Dp(1))
	size := image.Pt(gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, ColorPanelLight, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}
