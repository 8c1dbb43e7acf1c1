package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	title, message string
}

func newTestNotifier(enabled bool) (*Notifier, *[]sent) {
	var got []sent
	n := New(enabled)
	n.send = func(title, message, _ string) error {
		got = append(got, sent{title, message})
		return errors.New("no notification daemon")
	}
	return n, &got
}

func TestNotifier_Sends(t *testing.T) {
	n, got := newTestNotifier(true)

	n.Saved("ctrl+k")
	n.Error("boom")

	require.Len(t, *got, 2)
	assert.Equal(t, "Keysheet: Settings saved", (*got)[0].title)
	assert.Equal(t, "Hotkey: ctrl+k", (*got)[0].message)
	assert.Equal(t, "boom", (*got)[1].message)
}

func TestNotifier_Disabled(t *testing.T) {
	n, got := newTestNotifier(false)
	n.Error("boom")
	assert.Empty(t, *got)

	n.SetEnabled(true)
	n.Error("boom")
	assert.Len(t, *got, 1)
}
