// Package settings provides Gio-based settings UI.
package settings

import (
	"errors"
	"log"
	"strings"
	"sync"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"

	"keysheet/internal/config"
	"keysheet/internal/dialog"
	"keysheet/internal/i18n"
	"keysheet/internal/ui"
)

// ErrHotkeyNotRegistered is returned by the save callback when the
// configuration was written but the new hotkey could not be bound.
var ErrHotkeyNotRegistered = errors.New("hotkey not registered")

// Prompter asks the user for input and shows messages.
type Prompter interface {
	Prompt(title, text, initial string) (string, error)
	Info(title, message string)
	Error(title, message string)
}

type zenityPrompter struct{}

func (zenityPrompter) Prompt(title, text, initial string) (string, error) {
	return dialog.Prompt(title, text, initial)
}

func (zenityPrompter) Info(title, message string)  { dialog.ShowInfo(title, message) }
func (zenityPrompter) Error(title, message string) { dialog.ShowError(title, message) }

// Window represents the settings dialog window.
type Window struct {
	host     ui.Host
	config   *config.Config
	prompter Prompter

	mu       sync.Mutex
	selected int
	busy     bool // a prompt is open

	// Callbacks
	onSave         func() error
	onUILangChange func(lang i18n.Language)

	// Widgets
	hotkeyEditor widget.Editor
	table        ui.Table
	addBtn       widget.Clickable
	editBtn      widget.Clickable
	removeBtn    widget.Clickable
	saveBtn      widget.Clickable
	langButtons  map[i18n.Language]*widget.Clickable
}

// New creates a new settings window.
func New(cfg *config.Config) *Window {
	w := &Window{
		config:      cfg,
		prompter:    zenityPrompter{},
		selected:    -1,
		langButtons: make(map[i18n.Language]*widget.Clickable),
	}
	w.hotkeyEditor.SingleLine = true
	w.hotkeyEditor.SetText(cfg.Hotkey())
	w.table.Selectable = true
	for _, lang := range i18n.AvailableLanguages() {
		w.langButtons[lang] = new(widget.Clickable)
	}
	return w
}

// OnSave sets the callback that persists the configuration and re-registers the hotkey.
func (w *Window) OnSave(fn func() error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onSave = fn
}

// OnUILangChange sets the callback for when user changes UI language.
func (w *Window) OnUILangChange(fn func(lang i18n.Language)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUILangChange = fn
}

// Show displays the settings window (non-blocking).
func (w *Window) Show() {
	if w.host.IsOpen() {
		w.host.Raise()
		return
	}

	// Reload current settings
	w.mu.Lock()
	w.selected = -1
	w.mu.Unlock()
	w.hotkeyEditor.SetText(w.config.Hotkey())

	w.host.Open([]app.Option{
		app.Title("Keysheet - " + i18n.T("settings_title")),
		app.Size(unit.Dp(520), unit.Dp(520)),
		app.MinSize(unit.Dp(420), unit.Dp(420)),
	}, w.frame)
}

// Hide closes the settings window.
func (w *Window) Hide() {
	w.host.Close()
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	return w.host.IsOpen()
}

// Select marks row i as selected; -1 clears the selection.
func (w *Window) Select(i int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selected = i
}

// Selected returns the selected row or -1.
func (w *Window) Selected() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selected
}

// AddEntry prompts for a new entry and appends it.
// Cancelling either prompt or leaving the shortcut empty adds nothing.
func (w *Window) AddEntry() bool {
	title, ok := w.ask(i18n.T("prompt_shortcut"), i18n.T("prompt_shortcut_new"), "")
	if !ok || title == "" {
		return false
	}
	description, ok := w.ask(i18n.T("prompt_description"), i18n.T("prompt_description_new"), "")
	if !ok {
		return false
	}

	w.config.Add(config.ShortcutEntry{Title: title, Description: description})
	w.host.Invalidate()
	return true
}

// EditSelected prompts for new values of the selected entry.
func (w *Window) EditSelected() bool {
	index := w.Selected()
	entries := w.config.Entries()
	if index < 0 || index >= len(entries) {
		w.prompter.Info(i18n.T("prompt_select"), i18n.T("prompt_select_edit"))
		return false
	}
	current := entries[index]

	title, ok := w.ask(i18n.T("prompt_shortcut"), i18n.T("prompt_shortcut_edit"), current.Title)
	if !ok || title == "" {
		return false
	}
	description, ok := w.ask(i18n.T("prompt_description"), i18n.T("prompt_description_edit"), current.Description)
	if !ok {
		return false
	}

	if err := w.config.Update(index, config.ShortcutEntry{Title: title, Description: description}); err != nil {
		log.Printf("Settings: update entry %d: %v", index, err)
		return false
	}
	w.host.Invalidate()
	return true
}

// RemoveSelected removes the selected entry.
func (w *Window) RemoveSelected() bool {
	index := w.Selected()
	if index < 0 {
		w.prompter.Info(i18n.T("prompt_select"), i18n.T("prompt_select_remove"))
		return false
	}
	if err := w.config.Remove(index); err != nil {
		w.prompter.Info(i18n.T("prompt_select"), i18n.T("prompt_select_remove"))
		return false
	}
	w.Select(-1)
	w.host.Invalidate()
	return true
}

// HotkeyText returns the hotkey field contents.
func (w *Window) HotkeyText() string {
	return w.hotkeyEditor.Text()
}

// SetHotkeyText replaces the hotkey field contents.
func (w *Window) SetHotkeyText(s string) {
	w.hotkeyEditor.SetText(s)
}

// Save commits the hotkey field and calls the save callback.
// An empty hotkey is rejected with an error prompt.
func (w *Window) Save() bool {
	return w.saveHotkey(w.HotkeyText())
}

func (w *Window) saveHotkey(text string) bool {
	hk := strings.TrimSpace(text)
	if hk == "" {
		w.prompter.Error(i18n.T("prompt_hotkey"), i18n.T("prompt_hotkey_empty"))
		return false
	}

	w.mu.Lock()
	callback := w.onSave
	w.mu.Unlock()

	w.config.SetHotkey(hk)
	if callback != nil {
		err := callback()
		switch {
		case errors.Is(err, ErrHotkeyNotRegistered):
			log.Printf("Settings: saved, hotkey inactive: %v", err)
			w.prompter.Error(i18n.T("prompt_saved"), i18n.Tf("prompt_saved_inactive", hk, err))
			return false
		case err != nil:
			log.Printf("Settings: save failed: %v", err)
			w.prompter.Error(i18n.T("error_save"), err.Error())
			return false
		}
	}

	w.prompter.Info(i18n.T("prompt_saved"), i18n.T("prompt_saved_text"))
	return true
}

// ask returns false when the prompt was cancelled or failed.
func (w *Window) ask(title, text, initial string) (string, bool) {
	value, err := w.prompter.Prompt(title, text, initial)
	if err != nil {
		if !errors.Is(err, dialog.ErrCanceled) {
			log.Printf("Settings: prompt failed: %v", err)
		}
		return "", false
	}
	return strings.TrimSpace(value), true
}

// SetUILanguage switches the interface language and persists it.
func (w *Window) SetUILanguage(lang i18n.Language) {
	if i18n.GetLanguage() == lang {
		return
	}
	i18n.SetLanguage(lang)
	if err := w.config.SetUILanguage(string(lang)); err != nil {
		log.Printf("Settings: save UI language: %v", err)
	}

	w.mu.Lock()
	callback := w.onUILangChange
	w.mu.Unlock()
	if callback != nil {
		callback(lang)
	}
	w.host.Invalidate()
}

// runAction runs a blocking action (native dialogs) off the window goroutine.
// Only one action runs at a time.
func (w *Window) runAction(fn func() bool) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return
	}
	w.busy = true
	w.mu.Unlock()

	go func() {
		defer func() {
			w.mu.Lock()
			w.busy = false
			w.mu.Unlock()
			w.host.Invalidate()
		}()
		fn()
	}()
}

func (w *Window) handleEvents(gtx layout.Context) {
	if w.addBtn.Clicked(gtx) {
		w.runAction(w.AddEntry)
	}
	if w.editBtn.Clicked(gtx) {
		w.runAction(w.EditSelected)
	}
	if w.removeBtn.Clicked(gtx) {
		w.runAction(w.RemoveSelected)
	}
	if w.saveBtn.Clicked(gtx) {
		// The editor belongs to the window goroutine
		text := w.hotkeyEditor.Text()
		w.runAction(func() bool { return w.saveHotkey(text) })
	}

	// Apply UI language immediately
	for lang, btn := range w.langButtons {
		if btn.Clicked(gtx) {
			w.SetUILanguage(lang)
		}
	}
}

func (w *Window) frame(gtx layout.Context) {
	w.handleEvents(gtx)
	ui.FillBackground(gtx)
	w.draw(gtx)
}
