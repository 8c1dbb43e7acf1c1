// Package i18n provides internationalization support.
package i18n

import (
	"fmt"
	"sync"
)

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	RU Language = "ru"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":    "Keysheet",
		"app_tooltip": "Keysheet - shortcut cheat sheet",

		// Tray menu
		"tray_status":             "Hotkey: %s",
		"tray_status_none":        "Hotkey not registered",
		"tray_show":               "Show shortcuts",
		"tray_show_hint":          "Toggle the cheat sheet",
		"tray_open":               "Open Keysheet",
		"tray_open_hint":          "Show the main window",
		"tray_settings":           "Settings...",
		"tray_settings_hint":      "Hotkey and shortcut list",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Launcher window
		"launcher_title":    "Shortcut Assistant",
		"launcher_hint":     "Press your chosen hotkey to show the shortcuts list.",
		"launcher_hint2":    "Use Settings to customize the hotkey and the list.",
		"launcher_settings": "Settings",
		"launcher_show":     "Show Shortcuts",

		// Overlay window
		"overlay_window":     "Shortcuts",
		"overlay_title":      "Shortcut Cheat Sheet",
		"overlay_empty":      "No shortcuts yet. Add some in Settings.",
		"overlay_hide":       "Hide",
		"column_shortcut":    "Shortcut",
		"column_description": "Description",

		// Settings window
		"settings_title":       "Shortcut Settings",
		"settings_hotkey":      "Hotkey to show shortcuts:",
		"settings_list":        "Shortcuts you want to show:",
		"settings_add":         "Add",
		"settings_edit":        "Edit",
		"settings_remove":      "Remove",
		"settings_save":        "Save Settings",
		"settings_ui_language": "Interface language",

		// Prompts
		"prompt_shortcut":         "Shortcut",
		"prompt_shortcut_new":     "Enter shortcut (e.g. Win+E):",
		"prompt_shortcut_edit":    "Edit shortcut:",
		"prompt_description":      "Description",
		"prompt_description_new":  "What does this shortcut do?",
		"prompt_description_edit": "Edit description:",
		"prompt_select":           "Select",
		"prompt_select_edit":      "Please select a shortcut to edit.",
		"prompt_select_remove":    "Please select a shortcut to remove.",
		"prompt_hotkey":           "Hotkey",
		"prompt_hotkey_empty":     "Please enter a valid hotkey.",
		"prompt_saved":            "Saved",
		"prompt_saved_text":       "Settings saved. New hotkey is active now.",
		"prompt_saved_inactive":   "Settings saved, but hotkey %s is not active:\n%v",

		// Notifications
		"notify_saved":          "Settings saved",
		"notify_error":          "Error",
		"error_save":            "Could not save settings",
		"error_hotkey_register": "Could not register hotkey %s",
	},

	RU: {
		// App
		"app_name":    "Keysheet",
		"app_tooltip": "Keysheet - шпаргалка горячих клавиш",

		// Tray menu
		"tray_status":             "Горячая клавиша: %s",
		"tray_status_none":        "Горячая клавиша не зарегистрирована",
		"tray_show":               "Показать шпаргалку",
		"tray_show_hint":          "Показать или скрыть шпаргалку",
		"tray_open":               "Открыть Keysheet",
		"tray_open_hint":          "Показать главное окно",
		"tray_settings":           "Настройки...",
		"tray_settings_hint":      "Горячая клавиша и список",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Launcher window
		"launcher_title":    "Помощник по горячим клавишам",
		"launcher_hint":     "Нажмите выбранную комбинацию, чтобы показать список.",
		"launcher_hint2":    "В настройках можно изменить комбинацию и список.",
		"launcher_settings": "Настройки",
		"launcher_show":     "Показать список",

		// Overlay window
		"overlay_window":     "Горячие клавиши",
		"overlay_title":      "Шпаргалка горячих клавиш",
		"overlay_empty":      "Список пуст. Добавьте записи в настройках.",
		"overlay_hide":       "Скрыть",
		"column_shortcut":    "Комбинация",
		"column_description": "Описание",

		// Settings window
		"settings_title":       "Настройки шпаргалки",
		"settings_hotkey":      "Комбинация для показа списка:",
		"settings_list":        "Комбинации в шпаргалке:",
		"settings_add":         "Добавить",
		"settings_edit":        "Изменить",
		"settings_remove":      "Удалить",
		"settings_save":        "Сохранить",
		"settings_ui_language": "Язык интерфейса",

		// Prompts
		"prompt_shortcut":         "Комбинация",
		"prompt_shortcut_new":     "Введите комбинацию (например, Win+E):",
		"prompt_shortcut_edit":    "Измените комбинацию:",
		"prompt_description":      "Описание",
		"prompt_description_new":  "Что делает эта комбинация?",
		"prompt_description_edit": "Измените описание:",
		"prompt_select":           "Выбор",
		"prompt_select_edit":      "Выберите запись для изменения.",
		"prompt_select_remove":    "Выберите запись для удаления.",
		"prompt_hotkey":           "Горячая клавиша",
		"prompt_hotkey_empty":     "Введите горячую клавишу.",
		"prompt_saved":            "Сохранено",
		"prompt_saved_text":       "Настройки сохранены. Новая горячая клавиша уже работает.",
		"prompt_saved_inactive":   "Настройки сохранены, но горячая клавиша %s не работает:\n%v",

		// Notifications
		"notify_saved":          "Настройки сохранены",
		"notify_error":          "Ошибка",
		"error_save":            "Не удалось сохранить настройки",
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу %s",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// Tf formats the translation for the given key.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; ok {
		current = lang
	}
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, RU}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
