// Package notify предоставляет системные уведомления.
package notify

import (
	"sync"

	"github.com/gen2brain/beeep"

	"keysheet/internal/i18n"
)

const appName = "Keysheet"

// Notifier отправляет системные уведомления.
type Notifier struct {
	mu      sync.Mutex
	enabled bool
	send    func(title, message, icon string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, send: sendBeeep}
}

func sendBeeep(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// Saved показывает уведомление о сохранении настроек.
func (n *Notifier) Saved(hotkey string) {
	n.notify(i18n.T("notify_saved"), i18n.Tf("tray_status", hotkey))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	n.mu.Lock()
	enabled := n.enabled
	send := n.send
	n.mu.Unlock()

	if !enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	_ = send(appName+": "+title, message, "")
}
