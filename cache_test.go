package enginepages

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCacheFillsOnce(t *testing.T) {
	c := NewRenderCache(time.Minute)
	calls := 0
	fill := func() ([]byte, error) {
		calls++
		return []byte("page"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := c.Get("/x/", fill)
			assert.NoError(t, err)
			assert.Equal(t, "page", string(b))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestRenderCacheExpires(t *testing.T) {
	c := NewRenderCache(20 * time.Millisecond)
	n := 0
	fill := func() ([]byte, error) {
		n++
		return []byte{byte(n)}, nil
	}

	b, err := c.Get("k", fill)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, b)

	time.Sleep(40 * time.Millisecond)
	b, err = c.Get("k", fill)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, b)
}

func TestRenderCacheDoesNotCacheErrors(t *testing.T) {
	c := NewRenderCache(time.Minute)
	boom := errors.New("boom")

	_, err := c.Get("k", func() ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	b, err := c.Get("k", func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}

func TestRenderCacheInvalidate(t *testing.T) {
	c := NewRenderCache(time.Minute)
	_, _ = c.Get("a", func() ([]byte, error) { return []byte("1"), nil })
	_, _ = c.Get("b", func() ([]byte, error) { return []byte("2"), nil })
	require.Equal(t, 2, c.Len())

	c.Invalidate()
	assert.Equal(t, 0, c.Len())
}

func TestRenderCacheSlowFillDoesNotBlockOtherKeys(t *testing.T) {
	c := NewRenderCache(time.Minute)
	_, err := c.Get("hot", func() ([]byte, error) { return []byte("cached"), nil })
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		b, err := c.Get("slow", func() ([]byte, error) {
			close(started)
			<-release
			return []byte("resized"), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "resized", string(b))
	}()
	<-started

	got := make(chan string, 1)
	go func() {
		b, _ := c.Get("hot", func() ([]byte, error) { return nil, errors.New("unexpected fill") })
		got <- string(b)
	}()
	select {
	case b := <-got:
		assert.Equal(t, "cached", b)
	case <-time.After(time.Second):
		t.Fatal("read of a cached key waited on another key's fill")
	}

	close(release)
	<-done
	assert.Equal(t, 2, c.Len())
}

func TestRenderCacheInvalidateDuringFill(t *testing.T) {
	c := NewRenderCache(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		b, err := c.Get("k", func() ([]byte, error) {
			close(started)
			<-release
			return []byte("old"), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "old", string(b))
	}()
	<-started
	c.Invalidate()
	close(release)
	<-done

	assert.Equal(t, 0, c.Len())
	b, err := c.Get("k", func() ([]byte, error) { return []byte("new"), nil })
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
}
