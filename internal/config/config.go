// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"errors"
	"strings"
	"sync"
)

// DefaultHotkey - горячая клавиша по умолчанию.
const DefaultHotkey = "ctrl+shift+s"

var (
	// ErrEmptyHotkey возвращается при попытке сохранить пустую горячую клавишу.
	ErrEmptyHotkey = errors.New("горячая клавиша не задана")
	// ErrIndexOutOfRange возвращается при обращении к несуществующей записи.
	ErrIndexOutOfRange = errors.New("запись с таким индексом не найдена")
)

// ShortcutEntry - одна строка шпаргалки.
type ShortcutEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Configuration - данные конфигурации.
// Порядок Shortcuts совпадает с порядком отображения, дубликаты допустимы.
type Configuration struct {
	Hotkey        string
	Shortcuts     []ShortcutEntry
	UILanguage    string
	Notifications bool
}

// DefaultConfiguration возвращает конфигурацию по умолчанию.
func DefaultConfiguration() Configuration {
	return Configuration{
		Hotkey: DefaultHotkey,
		Shortcuts: []ShortcutEntry{
			{Title: "Win+E", Description: "Open File Explorer"},
			{Title: "Win+L", Description: "Lock the PC"},
		},
		UILanguage:    "en",
		Notifications: true,
	}
}

func (c Configuration) clone() Configuration {
	out := c
	out.Shortcuts = make([]ShortcutEntry, len(c.Shortcuts))
	copy(out.Shortcuts, c.Shortcuts)
	return out
}

// Config хранит конфигурацию, общую для всех окон приложения.
//
// Записи и горячая клавиша меняются в памяти и попадают в файл только
// при явном Save. Язык интерфейса и уведомления сохраняются сразу.
type Config struct {
	mu        sync.RWMutex
	store     *Store
	current   Configuration
	persisted Configuration
}

// New создаёт конфигурацию, загружая её из store.
func New(store *Store) *Config {
	loaded := store.Load()
	return &Config{
		store:     store,
		current:   loaded.clone(),
		persisted: loaded.clone(),
	}
}

// Snapshot возвращает копию текущего состояния.
func (c *Config) Snapshot() Configuration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.clone()
}

// Hotkey возвращает текущую горячую клавишу.
func (c *Config) Hotkey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Hotkey
}

// SetHotkey устанавливает горячую клавишу (без сохранения).
func (c *Config) SetHotkey(hk string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Hotkey = hk
}

// Entries возвращает копию списка записей.
func (c *Config) Entries() []ShortcutEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ShortcutEntry, len(c.current.Shortcuts))
	copy(out, c.current.Shortcuts)
	return out
}

// Len возвращает количество записей.
func (c *Config) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.current.Shortcuts)
}

// Add добавляет запись в конец списка.
func (c *Config) Add(e ShortcutEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Shortcuts = append(c.current.Shortcuts, e)
}

// Update заменяет запись с индексом i.
func (c *Config) Update(i int, e ShortcutEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.current.Shortcuts) {
		return ErrIndexOutOfRange
	}
	c.current.Shortcuts[i] = e
	return nil
}

// Remove удаляет запись с индексом i.
func (c *Config) Remove(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.current.Shortcuts) {
		return ErrIndexOutOfRange
	}
	c.current.Shortcuts = append(c.current.Shortcuts[:i], c.current.Shortcuts[i+1:]...)
	return nil
}

// Save сохраняет текущее состояние в файл.
// Пустая горячая клавиша не сохраняется.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	hk := strings.TrimSpace(c.current.Hotkey)
	if hk == "" {
		return ErrEmptyHotkey
	}
	c.current.Hotkey = hk

	snapshot := c.current.clone()
	if err := c.store.Save(snapshot); err != nil {
		return err
	}
	c.persisted = snapshot
	return nil
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.UILanguage
}

// SetUILanguage устанавливает язык интерфейса и сразу сохраняет его.
func (c *Config) SetUILanguage(lang string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.UILanguage = lang
	c.persisted.UILanguage = lang
	return c.store.Save(c.persisted)
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Notifications
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Notifications = !c.current.Notifications
	c.persisted.Notifications = c.current.Notifications
	return c.current.Notifications, c.store.Save(c.persisted)
}
