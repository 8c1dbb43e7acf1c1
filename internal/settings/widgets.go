package settings

import (
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"keysheet/internal/config"
	"keysheet/internal/i18n"
	"keysheet/internal/ui"
)

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Title (fixed)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.Title(gtx, i18n.T("settings_title"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			// Hotkey section
			layout.Rigid(w.drawHotkeySection),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Shortcut list
			layout.Flexed(1, w.drawListSection),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// UI Language section
			layout.Rigid(w.drawUILanguageSection),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Save button (fixed at bottom)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.ButtonRow(gtx, true, func(gtx layout.Context) layout.Dimensions {
					return ui.Button(gtx, &w.saveBtn, i18n.T("settings_save"), ui.ColorAccent)
				})
			}),
		)
	})
}

func (w *Window) drawHotkeySection(gtx layout.Context) layout.Dimensions {
	return ui.Panel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.SectionHeader(gtx, i18n.T("settings_hotkey"))
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return ui.Rounded(gtx, ui.ColorPanelLight, unit.Dp(8), func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						ed := material.Editor(ui.Theme(), &w.hotkeyEditor, config.DefaultHotkey)
						ed.Color = ui.ColorAccent
						ed.HintColor = ui.ColorTextDim
						ed.TextSize = unit.Sp(16)
						ed.Font.Weight = font.Medium
						return ed.Layout(gtx)
					})
				})
			}),
		)
	})
}

func (w *Window) drawListSection(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.SectionHeader(gtx, i18n.T("settings_list"))
		}),

		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			headers := [2]string{i18n.T("column_shortcut"), i18n.T("column_description")}
			dims, clicked := w.table.Layout(gtx, headers, w.config.Entries(), w.Selected())
			if clicked >= 0 {
				w.Select(clicked)
			}
			return dims
		}),

		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.ButtonRow(gtx, false,
				func(gtx layout.Context) layout.Dimensions {
					return ui.Button(gtx, &w.addBtn, i18n.T("settings_add"), ui.ColorPanel)
				},
				func(gtx layout.Context) layout.Dimensions {
					return ui.Button(gtx, &w.editBtn, i18n.T("settings_edit"), ui.ColorPanel)
				},
				func(gtx layout.Context) layout.Dimensions {
					return ui.Button(gtx, &w.removeBtn, i18n.T("settings_remove"), ui.ColorPanel)
				},
			)
		}),
	)
}

func (w *Window) drawUILanguageSection(gtx layout.Context) layout.Dimensions {
	selectedLang := i18n.GetLanguage()

	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.SectionHeader(gtx, i18n.T("settings_ui_language"))
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			var buttons []layout.Widget
			for _, lang := range i18n.AvailableLanguages() {
				lang := lang // capture
				buttons = append(buttons, func(gtx layout.Context) layout.Dimensions {
					bg := ui.ColorPanel
					if lang == selectedLang {
						bg = ui.ColorAccent
					}
					return ui.Button(gtx, w.langButtons[lang], i18n.LanguageName(lang), bg)
				})
			}
			return ui.ButtonRow(gtx, false, buttons...)
		}),
	)
}
