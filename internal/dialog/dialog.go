// Package dialog предоставляет нативные диалоги ввода и сообщений.
package dialog

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrCanceled возвращается, если пользователь закрыл диалог.
var ErrCanceled = zenity.ErrCanceled

// Prompt запрашивает строку у пользователя.
// initial подставляется в поле ввода.
func Prompt(title, text, initial string) (string, error) {
	value, err := zenity.Entry(
		text,
		zenity.Title(title),
		zenity.EntryText(initial),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCanceled
	}
	return value, err
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	_ = zenity.Info(message, zenity.Title(title), zenity.InfoIcon)
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	_ = zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
}
