// Package hotkey предоставляет глобальные горячие клавиши.
package hotkey

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"keysheet/internal/config"
)

// debounceInterval защищает от key repeat.
const debounceInterval = 300 * time.Millisecond

// unregisterTimeout ограничивает ожидание отмены старой регистрации.
const unregisterTimeout = 500 * time.Millisecond

// ErrClosed возвращается Register после Close.
var ErrClosed = errors.New("обработчик горячих клавиш закрыт")

// Binding - одна зарегистрированная в системе комбинация.
// *hotkey.Hotkey удовлетворяет этому интерфейсу.
type Binding interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
}

// Binder создаёт Binding для комбинации.
type Binder func(mods []hotkey.Modifier, key hotkey.Key) Binding

func systemBinder(mods []hotkey.Modifier, key hotkey.Key) Binding {
	return hotkey.New(mods, key)
}

// Handler обрабатывает события горячей клавиши.
type Handler struct {
	mu      sync.Mutex
	binder  Binder
	hk      Binding
	onPress func()
	current string
	closed  bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New создаёт обработчик горячей клавиши.
func New(onPress func()) *Handler {
	return NewWithBinder(onPress, systemBinder)
}

// NewWithBinder создаёт обработчик с заданным источником привязок.
func NewWithBinder(onPress func(), binder Binder) *Handler {
	return &Handler{
		binder:  binder,
		onPress: onPress,
	}
}

// Register регистрирует горячую клавишу.
// Предыдущая привязка полностью освобождается до установки новой.
func (h *Handler) Register(combo string) error {
	log.Printf("Регистрация горячей клавиши: %s", combo)

	parsed, err := config.ParseHotkey(combo)
	if err != nil {
		h.release()
		return fmt.Errorf("разбор горячей клавиши %q: %w", combo, err)
	}

	mods := make([]hotkey.Modifier, 0, len(parsed.Modifiers))
	for _, m := range parsed.Modifiers {
		mod, ok := modifierMap[m]
		if !ok {
			h.release()
			return fmt.Errorf("модификатор %q не поддерживается на этой платформе", m)
		}
		mods = append(mods, mod)
	}

	key, ok := keyMap[parsed.Key]
	if !ok {
		h.release()
		return fmt.Errorf("клавиша %q не поддерживается", parsed.Key)
	}

	h.release()

	h.mu.Lock()
	defer h.mu.Unlock()

	// Close мог произойти, пока освобождалась старая привязка
	if h.closed {
		return ErrClosed
	}

	hk := h.binder(mods, key)
	if err := hk.Register(); err != nil {
		log.Printf("Ошибка регистрации: %v", err)
		return fmt.Errorf("регистрация %s: %w", parsed.String(), err)
	}

	h.hk = hk
	h.current = parsed.String()
	h.stopCh = make(chan struct{})
	h.doneCh = make(chan struct{})

	log.Printf("Горячая клавиша успешно зарегистрирована: %s", h.current)
	go h.listen(hk, h.stopCh, h.doneCh)
	return nil
}

// release останавливает listener и отменяет текущую регистрацию.
func (h *Handler) release() {
	h.mu.Lock()
	oldHk := h.hk
	stopCh := h.stopCh
	doneCh := h.doneCh
	h.hk = nil
	h.stopCh = nil
	h.doneCh = nil
	h.current = ""
	h.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	// Дожидаемся завершения listener'а, чтобы старая привязка не сработала
	if doneCh != nil {
		<-doneCh
	}

	// Отменяем предыдущую регистрацию в горутине с таймаутом
	if oldHk != nil {
		done := make(chan struct{})
		go func() {
			if err := oldHk.Unregister(); err != nil {
				log.Printf("Ошибка отмены регистрации: %v", err)
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(unregisterTimeout):
			log.Printf("Hotkey unregister timeout")
		}
	}
}

func (h *Handler) listen(hk Binding, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	var lastKeydown time.Time
	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if h.onPress != nil {
				h.onPress()
			}
		}
	}
}

// Unregister отменяет регистрацию горячей клавиши.
func (h *Handler) Unregister() {
	h.release()
}

// Close отменяет регистрацию; последующие Register возвращают ErrClosed.
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.release()
}

// Current возвращает текущую зарегистрированную горячую клавишу.
func (h *Handler) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// modifierMap определён в platform-specific файлах:
// - modifiers_linux.go
// - modifiers_darwin.go
// - modifiers_windows.go

// keyMap маппинг config.Key -> hotkey.Key
var keyMap = map[config.Key]hotkey.Key{
	config.KeySpace:  hotkey.KeySpace,
	config.KeyReturn: hotkey.KeyReturn,
	config.KeyTab:    hotkey.KeyTab,
	config.KeyEscape: hotkey.KeyEscape,
	config.KeyA:      hotkey.KeyA,
	config.KeyB:      hotkey.KeyB,
	config.KeyC:      hotkey.KeyC,
	config.KeyD:      hotkey.KeyD,
	config.KeyE:      hotkey.KeyE,
	config.KeyF:      hotkey.KeyF,
	config.KeyG:      hotkey.KeyG,
	config.KeyH:      hotkey.KeyH,
	config.KeyI:      hotkey.KeyI,
	config.KeyJ:      hotkey.KeyJ,
	config.KeyK:      hotkey.KeyK,
	config.KeyL:      hotkey.KeyL,
	config.KeyM:      hotkey.KeyM,
	config.KeyN:      hotkey.KeyN,
	config.KeyO:      hotkey.KeyO,
	config.KeyP:      hotkey.KeyP,
	config.KeyQ:      hotkey.KeyQ,
	config.KeyR:      hotkey.KeyR,
	config.KeyS:      hotkey.KeyS,
	config.KeyT:      hotkey.KeyT,
	config.KeyU:      hotkey.KeyU,
	config.KeyV:      hotkey.KeyV,
	config.KeyW:      hotkey.KeyW,
	config.KeyX:      hotkey.KeyX,
	config.KeyY:      hotkey.KeyY,
	config.KeyZ:      hotkey.KeyZ,
	config.Key0:      hotkey.Key0,
	config.Key1:      hotkey.Key1,
	config.Key2:      hotkey.Key2,
	config.Key3:      hotkey.Key3,
	config.Key4:      hotkey.Key4,
	config.Key5:      hotkey.Key5,
	config.Key6:      hotkey.Key6,
	config.Key7:      hotkey.Key7,
	config.Key8:      hotkey.Key8,
	config.Key9:      hotkey.Key9,
	config.KeyF1:     hotkey.KeyF1,
	config.KeyF2:     hotkey.KeyF2,
	config.KeyF3:     hotkey.KeyF3,
	config.KeyF4:     hotkey.KeyF4,
	config.KeyF5:     hotkey.KeyF5,
	config.KeyF6:     hotkey.KeyF6,
	config.KeyF7:     hotkey.KeyF7,
	config.KeyF8:     hotkey.KeyF8,
	config.KeyF9:     hotkey.KeyF9,
	config.KeyF10:    hotkey.KeyF10,
	config.KeyF11:    hotkey.KeyF11,
	config.KeyF12:    hotkey.KeyF12,
}
