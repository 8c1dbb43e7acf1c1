// Package app содержит основную логику приложения.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"keysheet/internal/config"
	"keysheet/internal/dispatch"
	"keysheet/internal/hotkey"
	"keysheet/internal/i18n"
	"keysheet/internal/launcher"
	"keysheet/internal/notify"
	"keysheet/internal/overlay"
	"keysheet/internal/settings"
	"keysheet/internal/tray"
)

// ErrStopped возвращается, если очередь UI уже остановлена.
var ErrStopped = errors.New("приложение остановлено")

// App представляет главное приложение.
type App struct {
	config   *config.Config
	queue    *dispatch.Queue
	notifier *notify.Notifier
	hotkey   *hotkey.Handler
	tray     *tray.Tray

	overlayWin  *overlay.Window
	settingsWin *settings.Window
	launcherWin *launcher.Window

	closeOnce sync.Once
}

// New создаёт новое приложение с конфигурацией рядом с исполняемым файлом.
func New() *App {
	return newApp(config.NewStore(config.DefaultPath()), nil)
}

// newApp собирает приложение. binder == nil означает системные горячие клавиши.
func newApp(store *config.Store, binder hotkey.Binder) *App {
	cfg := config.New(store)
	log.Printf("Конфигурация: %s", store.Path())

	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	a := &App{
		config:   cfg,
		queue:    dispatch.New(),
		notifier: notify.New(cfg.NotificationsEnabled()),
	}

	a.overlayWin = overlay.New(cfg, a.queue.Post)
	a.settingsWin = settings.New(cfg)
	a.launcherWin = launcher.New()

	// Нажатие только ставит переключение в очередь UI
	onPress := func() { a.queue.Post(a.overlayWin.Toggle) }
	if binder != nil {
		a.hotkey = hotkey.NewWithBinder(onPress, binder)
	} else {
		a.hotkey = hotkey.New(onPress)
	}

	a.settingsWin.OnSave(a.requestSave)
	a.settingsWin.OnUILangChange(func(lang i18n.Language) {
		a.tray.RefreshUI()
		a.launcherWin.RefreshUI()
	})

	a.launcherWin.OnSettings(func() { a.queue.Post(a.settingsWin.Show) })
	a.launcherWin.OnShowShortcuts(func() { a.queue.Post(a.overlayWin.Show) })

	// Создаём системный трей с обработчиками
	a.tray = tray.New(tray.Callbacks{
		OnShow:     func() { a.queue.Post(a.overlayWin.Toggle) },
		OnOpen:     func() { a.queue.Post(a.launcherWin.Show) },
		OnSettings: func() { a.queue.Post(a.settingsWin.Show) },
		OnNotificationsToggle: func() bool {
			enabled, err := a.config.ToggleNotifications()
			if err != nil {
				log.Printf("Ошибка сохранения настроек уведомлений: %v", err)
			}
			a.notifier.SetEnabled(enabled)
			return enabled
		},
		OnQuit: a.Close,
	}, cfg.NotificationsEnabled())

	return a
}

// Run запускает приложение. Блокирует до выхода из трея.
func (a *App) Run() {
	a.tray.Run(a.start)
}

// start запускает очередь UI, регистрирует горячую клавишу и показывает главное окно.
func (a *App) start() {
	go a.queue.Run(context.Background())

	_ = a.registerHotkey() // уже залогировано и показано
	a.queue.Post(a.launcherWin.Show)
}

// requestSave выполняет сохранение в очереди UI и ждёт результата.
func (a *App) requestSave() error {
	result := make(chan error, 1)
	if !a.queue.Post(func() { result <- a.save() }) {
		return ErrStopped
	}
	return <-result
}

// save сохраняет конфигурацию и перерегистрирует горячую клавишу.
// Если клавиша не зарегистрировалась, файл уже записан, а ошибка
// оборачивает settings.ErrHotkeyNotRegistered.
func (a *App) save() error {
	if err := a.config.Save(); err != nil {
		return fmt.Errorf("сохранение конфигурации: %w", err)
	}
	log.Printf("Настройки сохранены")
	a.overlayWin.Refresh()

	if err := a.registerHotkey(); err != nil {
		return fmt.Errorf("%w: %w", settings.ErrHotkeyNotRegistered, err)
	}
	a.notifier.Saved(a.hotkey.Current())
	return nil
}

func (a *App) registerHotkey() error {
	hk := a.config.Hotkey()
	if err := a.hotkey.Register(hk); err != nil {
		if errors.Is(err, hotkey.ErrClosed) {
			return err
		}
		log.Printf("Ошибка регистрации горячей клавиши: %v", err)
		a.notifier.Error(i18n.Tf("error_hotkey_register", hk))
		a.setHotkeyStatus("")
		return err
	}
	a.setHotkeyStatus(a.hotkey.Current())
	return nil
}

func (a *App) setHotkeyStatus(hk string) {
	a.tray.SetHotkey(hk)
	a.launcherWin.SetHotkey(hk)
}

// Close останавливает очередь, освобождает горячую клавишу, закрывает окна и трей.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		// Очередь ещё доработает принятое; после hotkey.Close
		// запоздавшее сохранение уже не зарегистрирует клавишу.
		a.queue.Close()
		a.hotkey.Close()
		a.overlayWin.Hide()
		a.settingsWin.Hide()
		a.launcherWin.Hide()
		a.tray.Quit()
	})
}
