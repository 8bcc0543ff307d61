package icon

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_FirstInsertWins(t *testing.T) {
	cache := NewCache()
	first := image.NewRGBA(image.Rect(0, 0, 1, 1))
	second := image.NewRGBA(image.Rect(0, 0, 2, 2))

	got := cache.Put("/plugins/foo/icon.png", first)
	assert.Same(t, image.Image(first), got)

	got = cache.Put("/plugins/foo/icon.png", second)
	assert.Same(t, image.Image(first), got, "a populated key is never overwritten")

	stored, ok := cache.Get("/plugins/foo/icon.png")
	require.True(t, ok)
	assert.Same(t, image.Image(first), stored)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_IgnoresNilAndEmpty(t *testing.T) {
	cache := NewCache()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	cache.Put("key", nil)
	assert.False(t, cache.Contains("key"), "nil images are never recorded")

	cache.Put("", img)
	assert.Zero(t, cache.Len(), "empty keys are never recorded")

	_, ok := cache.Get("")
	assert.False(t, ok)
}

func TestCache_ConcurrentPutSettlesOnOneValue(t *testing.T) {
	cache := NewCache()

	const workers = 32
	results := make([]image.Image, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.Put(".exe", image.NewRGBA(image.Rect(0, 0, 1, 1)))
		}(i)
	}
	wg.Wait()

	stored, ok := cache.Get(".exe")
	require.True(t, ok)
	for i := 0; i < workers; i++ {
		assert.Same(t, stored, results[i], "every caller observes the winning value")
	}
	assert.Equal(t, 1, cache.Len())
}
