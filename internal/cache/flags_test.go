package cache_test

import (
	"sync"
	"testing"

	"github.com/smulube/stashboard/internal/cache"
	"github.com/stretchr/testify/assert"
)

func TestMemoryFlags(t *testing.T) {
	f := cache.NewMemoryFlags()

	_, ok := f.Get("installed_defaults")
	assert.False(t, ok)

	assert.NoError(t, f.Add("installed_defaults", true))
	assert.ErrorIs(t, f.Add("installed_defaults", false), cache.ErrNotStored)

	v, ok := f.Get("installed_defaults")
	assert.True(t, ok)
	assert.True(t, v)
}

func TestMemoryFlags_ConcurrentAdd(t *testing.T) {
	f := cache.NewMemoryFlags()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		stored int
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.Add("k", true) == nil {
				mu.Lock()
				stored++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, stored)
}
