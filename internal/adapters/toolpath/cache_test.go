package toolpath_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cjtool/internal/adapters/toolpath"
)

func TestCache_StoreIsWriteOnce(t *testing.T) {
	c := toolpath.NewCache()

	assert.Equal(t, "/a/cjc", c.Store("tool_path_cjc", "/a/cjc"))
	assert.Equal(t, "/a/cjc", c.Store("tool_path_cjc", "/b/cjc"))

	got, ok := c.Load("tool_path_cjc")
	assert.True(t, ok)
	assert.Equal(t, "/a/cjc", got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_LoadMiss(t *testing.T) {
	c := toolpath.NewCache()

	got, ok := c.Load("tool_path_cjc")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestCache_SnapshotIsCopy(t *testing.T) {
	c := toolpath.NewCache()
	c.Store("tool_path_cjc", "/a/cjc")

	snap := c.Snapshot()
	snap["tool_path_cjc"] = "/mutated"
	snap["tool_path_other"] = "/other"

	got, _ := c.Load("tool_path_cjc")
	assert.Equal(t, "/a/cjc", got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ConcurrentStores(t *testing.T) {
	c := toolpath.NewCache()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Store("tool_path_cjc", fmt.Sprintf("/sdk-%d/bin/cjc", i))
		}(i)
	}
	wg.Wait()

	winner, ok := c.Load("tool_path_cjc")
	assert.True(t, ok)
	for _, r := range results {
		assert.Equal(t, winner, r)
	}
}
