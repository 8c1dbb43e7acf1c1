package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runQueue(t *testing.T, q *Queue) (context.CancelFunc, <-chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		q.Run(ctx)
		close(stopped)
	}()
	t.Cleanup(cancel)
	return cancel, stopped
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}

func TestQueue_RunsInOrder(t *testing.T) {
	q := New()

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	for i := 0; i < 50; i++ {
		i := i
		require.True(t, q.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			if i == 49 {
				close(done)
			}
		}))
	}

	runQueue(t, q)
	waitClosed(t, done)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestQueue_PostFromOtherGoroutines(t *testing.T) {
	q := New()
	runQueue(t, q)

	// Counter is only touched on the queue goroutine.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(func() { counter++ })
		}()
	}
	wg.Wait()

	result := make(chan int)
	q.Post(func() { result <- counter })
	select {
	case n := <-result:
		assert.Equal(t, 20, n)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}

func TestQueue_CloseDrainsAndDropsLaterPosts(t *testing.T) {
	q := New()

	ran := make(chan string, 2)
	q.Post(func() { ran <- "before" })
	q.Close()
	assert.False(t, q.Post(func() { ran <- "after" }))

	_, stopped := runQueue(t, q)
	waitClosed(t, stopped)

	close(ran)
	var got []string
	for s := range ran {
		got = append(got, s)
	}
	assert.Equal(t, []string{"before"}, got)

	// Close is idempotent
	q.Close()
}

func TestQueue_ContextCancelStopsRun(t *testing.T) {
	q := New()
	cancel, stopped := runQueue(t, q)
	cancel()
	waitClosed(t, stopped)
}

func TestQueue_PostNil(t *testing.T) {
	assert.False(t, New().Post(nil))
}
