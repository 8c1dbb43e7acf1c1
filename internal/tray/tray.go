// Package tray предоставляет системный трей с меню.
package tray

import (
	"log"
	"sync"

	"github.com/getlantern/systray"

	"keysheet/embedded"
	"keysheet/internal/i18n"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnShow                func()
	OnOpen                func()
	OnSettings            func()
	OnNotificationsToggle func() bool
	OnQuit                func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks     Callbacks
	notifications bool

	mu      sync.Mutex
	hotkey  string
	running bool

	status      *systray.MenuItem
	showBtn     *systray.MenuItem
	openBtn     *systray.MenuItem
	settingsBtn *systray.MenuItem
	notifyOn    *systray.MenuItem
	quitBtn     *systray.MenuItem
}

// New создаёт новый Tray. notifications задаёт начальное состояние флажка.
func New(callbacks Callbacks, notifications bool) *Tray {
	return &Tray{
		callbacks:     callbacks,
		notifications: notifications,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	t.mu.Lock()
	t.running = true
	t.mu.Unlock()

	systray.SetIcon(embedded.Icon)
	systray.SetTitle("Keysheet")
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(t.statusText(), "")
	t.status.Disable()

	systray.AddSeparator()

	t.showBtn = systray.AddMenuItem(i18n.T("tray_show"), i18n.T("tray_show_hint"))
	t.openBtn = systray.AddMenuItem(i18n.T("tray_open"), i18n.T("tray_open_hint"))
	t.settingsBtn = systray.AddMenuItem(i18n.T("tray_settings"), i18n.T("tray_settings_hint"))

	systray.AddSeparator()

	// Уведомления
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.notifications)

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.showBtn.ClickedCh:
			call(t.callbacks.OnShow)

		case <-t.openBtn.ClickedCh:
			call(t.callbacks.OnOpen)

		case <-t.settingsBtn.ClickedCh:
			call(t.callbacks.OnSettings)

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				if t.callbacks.OnNotificationsToggle() {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		// Выход: OnQuit должен вызвать Quit
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			} else {
				t.Quit()
			}
			return
		}
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// SetHotkey обновляет строку статуса. Пустая строка - клавиша не зарегистрирована.
func (t *Tray) SetHotkey(hk string) {
	t.mu.Lock()
	t.hotkey = hk
	t.mu.Unlock()

	if t.status != nil {
		t.status.SetTitle(t.statusText())
	}
}

func (t *Tray) statusText() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return StatusText(t.hotkey)
}

// StatusText возвращает текст строки статуса для комбинации hk.
func StatusText(hk string) string {
	if hk == "" {
		return i18n.T("tray_status_none")
	}
	return i18n.Tf("tray_status", hk)
}

func (t *Tray) onExit() {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
	log.Println("Трей закрыт")
}

// Quit закрывает системный трей. До Run ничего не делает.
func (t *Tray) Quit() {
	t.mu.Lock()
	running := t.running
	t.running = false
	t.mu.Unlock()

	if running {
		systray.Quit()
	}
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.status != nil {
		t.status.SetTitle(t.statusText())
	}
	items := []struct {
		item        *systray.MenuItem
		title, hint string
	}{
		{t.showBtn, "tray_show", "tray_show_hint"},
		{t.openBtn, "tray_open", "tray_open_hint"},
		{t.settingsBtn, "tray_settings", "tray_settings_hint"},
		{t.notifyOn, "tray_notifications", "tray_notifications_hint"},
		{t.quitBtn, "tray_quit", "tray_quit_hint"},
	}
	for _, it := range items {
		if it.item == nil {
			continue
		}
		it.item.SetTitle(i18n.T(it.title))
		it.item.SetTooltip(i18n.T(it.hint))
	}
}
