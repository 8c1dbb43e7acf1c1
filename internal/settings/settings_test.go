package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keysheet/internal/config"
	"keysheet/internal/dialog"
	"keysheet/internal/i18n"
)

type answer struct {
	value string
	err   error
}

type message struct {
	title, text string
}

// fakePrompter replays canned answers and records shown messages.
type fakePrompter struct {
	answers []answer
	asked   []string // initial values passed to Prompt
	infos   []message
	errors  []message
}

func (p *fakePrompter) Prompt(title, text, initial string) (string, error) {
	p.asked = append(p.asked, initial)
	if len(p.answers) == 0 {
		return "", dialog.ErrCanceled
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a.value, a.err
}

func (p *fakePrompter) Info(title, text string)  { p.infos = append(p.infos, message{title, text}) }
func (p *fakePrompter) Error(title, text string) { p.errors = append(p.errors, message{title, text}) }

func newTestWindow(t *testing.T, answers ...answer) (*Window, *config.Config, *fakePrompter) {
	t.Helper()
	cfg := config.New(config.NewStore(filepath.Join(t.TempDir(), "config.json")))
	p := &fakePrompter{answers: answers}
	w := New(cfg)
	w.prompter = p
	w.host.RunLoop = func(stop <-chan struct{}) { <-stop }
	t.Cleanup(w.Hide)
	return w, cfg, p
}

func TestWindow_AddEntry(t *testing.T) {
	w, cfg, _ := newTestWindow(t,
		answer{value: "  Ctrl+Alt+Delete "},
		answer{value: "Task screen"},
	)

	require.True(t, w.AddEntry())

	entries := cfg.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, config.ShortcutEntry{Title: "Ctrl+Alt+Delete", Description: "Task screen"}, entries[2])
}

func TestWindow_AddEntryEmptyDescription(t *testing.T) {
	w, cfg, _ := newTestWindow(t, answer{value: "Win+D"}, answer{value: ""})

	require.True(t, w.AddEntry())
	assert.Equal(t, config.ShortcutEntry{Title: "Win+D"}, cfg.Entries()[2])
}

func TestWindow_AddEntryAborted(t *testing.T) {
	tests := []struct {
		name    string
		answers []answer
	}{
		{"cancel shortcut", []answer{{err: dialog.ErrCanceled}}},
		{"empty shortcut", []answer{{value: "   "}}},
		{"cancel description", []answer{{value: "Win+D"}, {err: dialog.ErrCanceled}}},
		{"prompt failure", []answer{{err: errors.New("no display")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, cfg, _ := newTestWindow(t, tt.answers...)
			assert.False(t, w.AddEntry())
			assert.Equal(t, 2, cfg.Len())
		})
	}
}

func TestWindow_EditWithoutSelection(t *testing.T) {
	w, cfg, p := newTestWindow(t)

	assert.False(t, w.EditSelected())
	require.Len(t, p.infos, 1)
	assert.Equal(t, i18n.T("prompt_select_edit"), p.infos[0].text)
	assert.Empty(t, p.asked)
	assert.Equal(t, config.DefaultConfiguration().Shortcuts, cfg.Entries())
}

func TestWindow_EditSelected(t *testing.T) {
	w, cfg, p := newTestWindow(t, answer{value: "Win+L"}, answer{value: "Lock the workstation"})
	w.Select(1)

	require.True(t, w.EditSelected())
	assert.Equal(t, []string{"Win+L", "Lock the PC"}, p.asked, "prompts prefilled with current values")
	assert.Equal(t, config.ShortcutEntry{Title: "Win+L", Description: "Lock the workstation"}, cfg.Entries()[1])
}

func TestWindow_EditCancelKeepsEntry(t *testing.T) {
	w, cfg, _ := newTestWindow(t, answer{value: "Win+X"})
	w.Select(0)

	assert.False(t, w.EditSelected())
	assert.Equal(t, config.DefaultConfiguration().Shortcuts, cfg.Entries())
}

func TestWindow_RemoveSelected(t *testing.T) {
	w, cfg, p := newTestWindow(t)

	assert.False(t, w.RemoveSelected())
	require.Len(t, p.infos, 1)
	assert.Equal(t, i18n.T("prompt_select_remove"), p.infos[0].text)

	w.Select(0)
	require.True(t, w.RemoveSelected())
	assert.Equal(t, -1, w.Selected())

	w.Select(0)
	require.True(t, w.RemoveSelected())
	assert.Zero(t, cfg.Len())

	w.Select(0)
	assert.False(t, w.RemoveSelected())
}

func TestWindow_SaveRejectsEmptyHotkey(t *testing.T) {
	w, cfg, p := newTestWindow(t)
	called := false
	w.OnSave(func() error {
		called = true
		return nil
	})

	w.SetHotkeyText("   ")
	assert.False(t, w.Save())
	assert.False(t, called)
	require.Len(t, p.errors, 1)
	assert.Equal(t, i18n.T("prompt_hotkey_empty"), p.errors[0].text)
	assert.Equal(t, config.DefaultHotkey, cfg.Hotkey())
}

func TestWindow_Save(t *testing.T) {
	w, cfg, p := newTestWindow(t)
	var saved string
	w.OnSave(func() error {
		saved = cfg.Hotkey()
		return cfg.Save()
	})

	w.SetHotkeyText(" alt+k ")
	require.True(t, w.Save())
	assert.Equal(t, "alt+k", saved)
	require.Len(t, p.infos, 1)
	assert.Equal(t, i18n.T("prompt_saved_text"), p.infos[0].text)
	assert.Empty(t, p.errors)
}

func TestWindow_SaveCallbackError(t *testing.T) {
	w, _, p := newTestWindow(t)
	w.OnSave(func() error { return errors.New("disk full") })

	assert.False(t, w.Save())
	require.Len(t, p.errors, 1)
	assert.Equal(t, message{i18n.T("error_save"), "disk full"}, p.errors[0])
	assert.Empty(t, p.infos)
}

func TestWindow_ShowResetsState(t *testing.T) {
	w, cfg, _ := newTestWindow(t)
	cfg.SetHotkey("ctrl+k")
	w.Select(1)
	w.SetHotkeyText("garbage")

	w.Show()
	assert.True(t, w.IsVisible())
	assert.Equal(t, -1, w.Selected())
	assert.Equal(t, "ctrl+k", w.HotkeyText())

	w.Hide()
	assert.False(t, w.IsVisible())
}

func TestWindow_SaveHotkeyNotRegistered(t *testing.T) {
	w, _, p := newTestWindow(t)
	w.OnSave(func() error {
		return fmt.Errorf("%w: grabbed by another client", ErrHotkeyNotRegistered)
	})

	w.SetHotkeyText("ctrl+nope")
	assert.False(t, w.Save())

	assert.Empty(t, p.infos, "no success prompt")
	require.Len(t, p.errors, 1)
	assert.Equal(t, i18n.T("prompt_saved"), p.errors[0].title)
	assert.Contains(t, p.errors[0].text, "ctrl+nope")
	assert.Contains(t, p.errors[0].text, "grabbed by another client")
}
