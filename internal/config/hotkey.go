package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyEscape Key = "escape"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	Key0      Key = "0"
	Key1      Key = "1"
	Key2      Key = "2"
	Key3      Key = "3"
	Key4      Key = "4"
	Key5      Key = "5"
	Key6      Key = "6"
	Key7      Key = "7"
	Key8      Key = "8"
	Key9      Key = "9"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// HotkeyConfig - разобранная горячая клавиша: модификаторы и одна клавиша.
type HotkeyConfig struct {
	Modifiers []Modifier
	Key       Key
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	parts := lo.Map(h.Modifiers, func(m Modifier, _ int) string { return string(m) })
	return strings.Join(append(parts, string(h.Key)), "+")
}

var modifierAliases = map[string]Modifier{
	"control": ModCtrl,
	"option":  ModAlt,
	"win":     ModSuper,
	"cmd":     ModSuper,
	"meta":    ModSuper,
}

var keyAliases = map[string]Key{
	"enter": KeyReturn,
	"esc":   KeyEscape,
}

// ParseHotkey разбирает строку вида "ctrl+shift+s".
// Регистр и пробелы вокруг частей не важны.
func ParseHotkey(s string) (HotkeyConfig, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return HotkeyConfig{}, ErrEmptyHotkey
	}

	parts := strings.Split(strings.ToLower(s), "+")
	keyStr := strings.TrimSpace(parts[len(parts)-1])

	key, ok := lookupKey(keyStr)
	if !ok {
		return HotkeyConfig{}, fmt.Errorf("неподдерживаемая клавиша %q", keyStr)
	}

	var mods []Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod, ok := lookupModifier(p)
		if !ok {
			return HotkeyConfig{}, fmt.Errorf("неподдерживаемый модификатор %q", p)
		}
		mods = append(mods, mod)
	}

	// Повторы вроде "ctrl+control+s" схлопываются
	return HotkeyConfig{Modifiers: lo.Uniq(mods), Key: key}, nil
}

func lookupModifier(s string) (Modifier, bool) {
	if m, ok := modifierAliases[s]; ok {
		return m, true
	}
	if lo.Contains(AvailableModifiers(), Modifier(s)) {
		return Modifier(s), true
	}
	return "", false
}

func lookupKey(s string) (Key, bool) {
	if k, ok := keyAliases[s]; ok {
		return k, true
	}
	if lo.Contains(AvailableKeys(), Key(s)) {
		return Key(s), true
	}
	return "", false
}

// AvailableModifiers возвращает список доступных модификаторов.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}

// AvailableKeys возвращает список доступных клавиш.
func AvailableKeys() []Key {
	return []Key{
		KeySpace, KeyReturn, KeyTab, KeyEscape,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}
