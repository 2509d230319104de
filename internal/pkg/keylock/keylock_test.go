package keylock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"inatpos/internal/pkg/keylock"
)

func Test_KeyLock(t *testing.T) {
	t.Run("should serialize goroutines on the same key", func(t *testing.T) {
		l := keylock.New()

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := l.Lock("order-1")
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, counter)
	})

	t.Run("should not block different keys", func(t *testing.T) {
		l := keylock.New()

		unlockA := l.Lock("order-a")
		defer unlockA()

		done := make(chan struct{})
		go func() {
			unlockB := l.Lock("order-b")
			unlockB()
			close(done)
		}()

		<-done
	})

	t.Run("should release entries when no holders remain", func(t *testing.T) {
		l := keylock.New()

		unlock := l.Lock("order-1")
		unlock()

		// Re-acquiring after full release must not deadlock.
		unlock = l.Lock("order-1")
		unlock()
	})
}
