package flagcdn

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock for cache tests ---

type countingSource struct {
	calls int
	img   image.Image
	err   error
}

func (m *countingSource) Flag(context.Context, string) (image.Image, error) {
	m.calls++
	return m.img, m.err
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 1))
}

// --- CachedSource tests ---

func TestCachedSource_CacheHit(t *testing.T) {
	inner := &countingSource{img: testImage()}
	cached := NewCachedSource(inner, 10)

	img1, err := cached.Flag(context.Background(), "ph")
	require.NoError(t, err)
	require.NotNil(t, img1)

	img2, err := cached.Flag(context.Background(), "PH")
	require.NoError(t, err)
	assert.Equal(t, img1, img2)

	assert.Equal(t, 1, inner.calls, "should only call inner once")
}

func TestCachedSource_DifferentCodesMiss(t *testing.T) {
	inner := &countingSource{img: testImage()}
	cached := NewCachedSource(inner, 10)

	_, _ = cached.Flag(context.Background(), "ph")
	_, _ = cached.Flag(context.Background(), "fj")

	assert.Equal(t, 2, inner.calls)
}

func TestCachedSource_ErrorsNotCached(t *testing.T) {
	inner := &countingSource{err: errors.New("boom")}
	cached := NewCachedSource(inner, 10)

	_, err := cached.Flag(context.Background(), "ph")
	require.Error(t, err)
	_, err = cached.Flag(context.Background(), "ph")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls, "failures should be retried")
}

// --- LRU cache unit tests ---

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	_, ok := c.get("missing")
	assert.False(t, ok)

	c.put("a", testImage())
	got, ok := c.get("a")
	assert.True(t, ok)
	assert.NotNil(t, got)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", testImage())
	c.put("b", testImage())

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", testImage())

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestLRUCache_UpdateExistingKey(t *testing.T) {
	c := newLRUCache(2)

	first := image.NewRGBA(image.Rect(0, 0, 1, 1))
	second := image.NewRGBA(image.Rect(0, 0, 3, 2))

	c.put("a", first)
	c.put("a", second)

	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 3, got.Bounds().Dx())
	assert.Len(t, c.entries, 1)
}
