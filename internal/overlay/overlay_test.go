package overlay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keysheet/internal/config"
)

func newTestWindow(t *testing.T) (*Window, *config.Config) {
	t.Helper()
	cfg := config.New(config.NewStore(filepath.Join(t.TempDir(), "config.json")))
	w := New(cfg, nil)
	w.SetRunLoop(func(stop <-chan struct{}) { <-stop })
	t.Cleanup(w.Hide)
	return w, cfg
}

func TestWindow_Toggle(t *testing.T) {
	w, _ := newTestWindow(t)
	require.False(t, w.IsVisible())

	w.Toggle()
	assert.True(t, w.IsVisible())

	w.Toggle()
	assert.False(t, w.IsVisible())

	w.Toggle()
	assert.True(t, w.IsVisible())
}

func TestWindow_ShowRefreshesRows(t *testing.T) {
	w, cfg := newTestWindow(t)

	w.Show()
	assert.Equal(t, cfg.Entries(), w.Rows())
	w.Hide()

	cfg.Add(config.ShortcutEntry{Title: "Win+V", Description: "Clipboard history"})
	assert.Len(t, w.Rows(), 2, "rows change only on the next show")

	w.Show()
	rows := w.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, config.ShortcutEntry{Title: "Win+V", Description: "Clipboard history"}, rows[2])
}

func TestWindow_ShowWhileVisibleRefreshes(t *testing.T) {
	w, cfg := newTestWindow(t)
	w.Show()

	require.NoError(t, cfg.Remove(0))
	require.NoError(t, cfg.Remove(0))
	w.Show()

	assert.True(t, w.IsVisible())
	assert.Empty(t, w.Rows())
}

func TestWindow_RefreshOnlyWhenVisible(t *testing.T) {
	w, cfg := newTestWindow(t)

	cfg.Add(config.ShortcutEntry{Title: "Win+D", Description: "Show desktop"})
	w.Refresh()
	assert.Empty(t, w.Rows(), "hidden window is not refreshed")

	w.Show()
	cfg.Add(config.ShortcutEntry{Title: "Win+I", Description: "Settings"})
	w.Refresh()
	assert.Len(t, w.Rows(), 4)
}

func TestWindow_HideRequestGoesThroughPoster(t *testing.T) {
	cfg := config.New(config.NewStore(filepath.Join(t.TempDir(), "config.json")))
	var posted []func()
	w := New(cfg, func(fn func()) bool {
		posted = append(posted, fn)
		return true
	})
	w.SetRunLoop(func(stop <-chan struct{}) { <-stop })
	t.Cleanup(w.Hide)

	w.Show()
	w.requestHide()
	require.Len(t, posted, 1)
	assert.True(t, w.IsVisible(), "hidden only when the posted function runs")

	posted[0]()
	assert.False(t, w.IsVisible())
}
