package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	assert.False(t, c.Has(TodayPlanningKey))
	_, ok := c.Get(TodayPlanningKey)
	assert.False(t, ok)

	c.Set(TodayPlanningKey, []string{"a"})
	assert.True(t, c.Has(TodayPlanningKey))
	v, ok := c.Get(TodayPlanningKey)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	c.Delete(TodayPlanningKey)
	assert.False(t, c.Has(TodayPlanningKey))

	// no-op
	c.Delete(TodayPlanningKey)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.Set(TodayPlanningKey, i)
		}(i)
		go func() {
			defer wg.Done()
			c.Get(TodayPlanningKey)
			c.Delete(TodayPlanningKey)
		}()
	}
	wg.Wait()
}
