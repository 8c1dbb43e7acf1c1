package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func headless(h *Host) {
	h.RunLoop = func(stop <-chan struct{}) { <-stop }
}

func TestHost_OpenClose(t *testing.T) {
	var h Host
	headless(&h)

	assert.False(t, h.IsOpen())
	assert.True(t, h.Open(nil, nil))
	assert.True(t, h.IsOpen())
	assert.False(t, h.Open(nil, nil), "second Open while shown")

	h.Close()
	assert.False(t, h.IsOpen())

	// Close on a closed host is a no-op
	h.Close()

	assert.True(t, h.Open(nil, nil))
	h.Close()
}

func TestHost_WindowClosedByUser(t *testing.T) {
	var h Host
	userClose := make(chan struct{})
	h.RunLoop = func(stop <-chan struct{}) {
		select {
		case <-stop:
		case <-userClose:
		}
	}

	h.Open(nil, nil)
	close(userClose)

	assert.Eventually(t, func() bool { return !h.IsOpen() }, time.Second, 10*time.Millisecond)
	assert.True(t, h.Open(nil, nil))
	h.Close()
}
