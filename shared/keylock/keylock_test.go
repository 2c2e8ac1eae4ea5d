package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := New()

	const workers = 16

	var (
		wg      sync.WaitGroup
		counter int
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			unlock := k.Lock("room:101")
			defer unlock()

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	k := New()

	unlockA := k.Lock("room:101")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("room:102")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key should not block")
	}
}

func TestKeyedMutex_EntriesAreReleased(t *testing.T) {
	k := New()

	unlock := k.Lock("room:101")
	assert.Len(t, k.entries, 1)

	unlock()
	assert.Empty(t, k.entries)
}
