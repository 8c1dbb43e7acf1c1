package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhotkey "golang.design/x/hotkey"

	"keysheet/internal/config"
	"keysheet/internal/hotkey"
	"keysheet/internal/settings"
)

type fakeBinding struct {
	mu         sync.Mutex
	registered bool
	keydown    chan xhotkey.Event
}

func (f *fakeBinding) Register() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = true
	return nil
}

func (f *fakeBinding) Unregister() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = false
	return nil
}

func (f *fakeBinding) Keydown() <-chan xhotkey.Event { return f.keydown }

func (f *fakeBinding) isRegistered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registered
}

type fakeBinder struct {
	mu       sync.Mutex
	bindings []*fakeBinding
}

func (b *fakeBinder) bind(mods []xhotkey.Modifier, key xhotkey.Key) hotkey.Binding {
	b.mu.Lock()
	defer b.mu.Unlock()
	fb := &fakeBinding{keydown: make(chan xhotkey.Event, 1)}
	b.bindings = append(b.bindings, fb)
	return fb
}

func (b *fakeBinder) all() []*fakeBinding {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*fakeBinding(nil), b.bindings...)
}

// newTestApp builds an app with fake hotkeys and a headless overlay.
// The UI queue is not running until runQueue is called.
func newTestApp(t *testing.T) (*App, *config.Store, *fakeBinder) {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	binder := &fakeBinder{}
	a := newApp(store, binder.bind)
	a.notifier.SetEnabled(false)
	a.overlayWin.SetRunLoop(func(stop <-chan struct{}) { <-stop })
	t.Cleanup(a.Close)
	return a, store, binder
}

// runQueue drains the UI queue until the app is closed or the test ends.
func runQueue(t *testing.T, a *App) <-chan struct{} {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.queue.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return done
}

func TestApp_SaveReregistersHotkey(t *testing.T) {
	a, store, binder := newTestApp(t)
	runQueue(t, a)

	require.NoError(t, a.registerHotkey())
	require.Len(t, binder.all(), 1)
	assert.Equal(t, config.DefaultHotkey, a.hotkey.Current())

	a.config.SetHotkey("alt+k")
	a.config.Add(config.ShortcutEntry{Title: "Win+D", Description: "Show desktop"})
	require.NoError(t, a.requestSave())

	bindings := binder.all()
	require.Len(t, bindings, 2)
	assert.False(t, bindings[0].isRegistered(), "old combination released")
	assert.True(t, bindings[1].isRegistered(), "new combination active")
	assert.Equal(t, "alt+k", a.hotkey.Current())

	loaded := store.Load()
	assert.Equal(t, "alt+k", loaded.Hotkey)
	assert.Len(t, loaded.Shortcuts, 3)
}

func TestApp_SaveWithInvalidHotkey(t *testing.T) {
	a, store, binder := newTestApp(t)
	runQueue(t, a)
	require.NoError(t, a.registerHotkey())

	a.config.SetHotkey("ctrl+nope")
	err := a.requestSave()
	assert.ErrorIs(t, err, settings.ErrHotkeyNotRegistered)

	// The file is written even though no hotkey is bound
	assert.Equal(t, "ctrl+nope", store.Load().Hotkey)
	assert.Empty(t, a.hotkey.Current())
	assert.False(t, binder.all()[0].isRegistered())
}

func TestApp_SaveRejectsEmptyHotkey(t *testing.T) {
	a, _, _ := newTestApp(t)
	runQueue(t, a)

	a.config.SetHotkey("  ")
	err := a.requestSave()
	assert.ErrorIs(t, err, config.ErrEmptyHotkey)
	assert.NotErrorIs(t, err, settings.ErrHotkeyNotRegistered)
}

func TestApp_SaveAfterClose(t *testing.T) {
	a, _, _ := newTestApp(t)
	runQueue(t, a)
	a.Close()

	assert.ErrorIs(t, a.requestSave(), ErrStopped)
}

func TestApp_HotkeyPressTogglesOverlayOnQueue(t *testing.T) {
	a, _, binder := newTestApp(t)
	require.NoError(t, a.registerHotkey())
	b := binder.all()[0]

	// The press only posts; nothing changes until the queue runs
	b.keydown <- xhotkey.Event{}
	assert.Never(t, a.overlayWin.IsVisible, 200*time.Millisecond, 10*time.Millisecond)

	runQueue(t, a)
	assert.Eventually(t, a.overlayWin.IsVisible, time.Second, 10*time.Millisecond)

	// Past the debounce interval a second press hides it again
	time.Sleep(350 * time.Millisecond)
	b.keydown <- xhotkey.Event{}
	assert.Eventually(t, func() bool { return !a.overlayWin.IsVisible() }, time.Second, 10*time.Millisecond)
}

func TestApp_CloseWithPendingSaveLeavesNoBinding(t *testing.T) {
	a, _, binder := newTestApp(t)

	a.config.SetHotkey("alt+k")
	var saveErr error
	require.True(t, a.queue.Post(func() { saveErr = a.save() }))

	// Close before the queue gets to the save
	a.Close()
	<-runQueue(t, a)

	assert.ErrorIs(t, saveErr, hotkey.ErrClosed)
	assert.Empty(t, binder.all(), "no combination bound after Close")
	assert.Empty(t, a.hotkey.Current())
}
