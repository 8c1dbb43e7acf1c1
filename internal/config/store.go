package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

const fileName = "config.json"

// fileData структура для сериализации.
type fileData struct {
	Hotkey        string          `json:"hotkey"`
	Shortcuts     []ShortcutEntry `json:"shortcuts"`
	UILanguage    string          `json:"ui_language,omitempty"`
	Notifications *bool           `json:"notifications,omitempty"`
}

// Store читает и пишет конфигурацию в JSON файл.
type Store struct {
	path string
}

// NewStore создаёт хранилище для файла path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path возвращает путь к файлу конфигурации.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath возвращает путь к config.json рядом с бинарником.
// Если путь к бинарнику определить не удалось - каталог конфигурации пользователя.
func DefaultPath() string {
	execPath, err := os.Executable()
	if err == nil {
		// Резолвим симлинки
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			return filepath.Join(filepath.Dir(execPath), fileName)
		}
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "keysheet", fileName)
	}
	return fileName
}

// Load загружает конфигурацию из файла.
// Отсутствующий или повреждённый файл даёт конфигурацию по умолчанию.
func (s *Store) Load() Configuration {
	def := DefaultConfiguration()
	if s.path == "" {
		return def
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Не удалось прочитать %s: %v, используем настройки по умолчанию", s.path, err)
		}
		return def
	}

	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		log.Printf("Повреждённый файл %s: %v, используем настройки по умолчанию", s.path, err)
		return def
	}

	cfg := Configuration{
		Hotkey:        fd.Hotkey,
		Shortcuts:     make([]ShortcutEntry, 0, len(fd.Shortcuts)),
		UILanguage:    def.UILanguage,
		Notifications: def.Notifications,
	}
	if cfg.Hotkey == "" {
		cfg.Hotkey = DefaultHotkey
	}
	cfg.Shortcuts = append(cfg.Shortcuts, fd.Shortcuts...)
	if fd.UILanguage != "" {
		cfg.UILanguage = fd.UILanguage
	}
	if fd.Notifications != nil {
		cfg.Notifications = *fd.Notifications
	}
	return cfg
}

// Save сохраняет конфигурацию в файл.
func (s *Store) Save(cfg Configuration) error {
	if s.path == "" {
		return errors.New("не задан путь к файлу конфигурации")
	}

	shortcuts := cfg.Shortcuts
	if shortcuts == nil {
		shortcuts = []ShortcutEntry{}
	}
	notifications := cfg.Notifications
	fd := fileData{
		Hotkey:        cfg.Hotkey,
		Shortcuts:     shortcuts,
		UILanguage:    cfg.UILanguage,
		Notifications: &notifications,
	}

	data, err := json.MarshalIndent(fd, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация конфигурации: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("создание каталога конфигурации: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("запись %s: %w", s.path, err)
	}
	return nil
}
