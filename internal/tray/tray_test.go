package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keysheet/internal/i18n"
)

func TestStatusText(t *testing.T) {
	i18n.SetLanguage(i18n.EN)

	assert.Equal(t, "Hotkey: alt+k", StatusText("alt+k"))
	assert.Equal(t, i18n.T("tray_status_none"), StatusText(""))
}

func TestTray_SetHotkeyBeforeRun(t *testing.T) {
	i18n.SetLanguage(i18n.EN)
	tr := New(Callbacks{}, true)

	// Menu items do not exist until the tray runs
	tr.SetHotkey("ctrl+shift+s")
	assert.Equal(t, "Hotkey: ctrl+shift+s", tr.statusText())
}

func TestTray_QuitBeforeRun(t *testing.T) {
	tr := New(Callbacks{}, false)

	// Without a running tray Quit must not reach systray
	tr.Quit()
	tr.Quit()
	assert.False(t, tr.running)
}
