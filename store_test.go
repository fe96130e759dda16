package enginepages

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/enginepages/content"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.IndexTable(context.Background(), content.Default()))
	return s
}

func TestStoreSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hits, err := s.Search(ctx, "M838TQ", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "mclaren", hits[0].Brand)
	assert.Equal(t, "m838tq", hits[0].Engine)
	assert.NotEmpty(t, hits[0].Summary)

	hits, err = s.Search(ctx, "mclaren", 3)
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	hits, err = s.Search(ctx, "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStoreSearchEscapesWildcards(t *testing.T) {
	s := newTestStore(t)
	for _, q := range []string{"%", "_", `\`} {
		hits, err := s.Search(context.Background(), q+"zz"+q, 10)
		require.NoError(t, err, q)
		assert.Empty(t, hits, q)
	}
}

func TestStoreIndexTableReplaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := content.Default().Lookup("mclaren", "m630")
	require.NoError(t, err)
	tbl := content.NewTable(map[string]content.BrandData{
		"acme": {Name: "Acme", Engines: map[string]content.EnginePageData{"v6": p}},
	})
	require.NoError(t, s.IndexTable(ctx, tbl))

	hits, err := s.Search(ctx, "m838tq", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = s.Search(ctx, "v6", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "acme", hits[0].Brand)
}

func TestStoreViews(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, p := range []string{"/a/", "/b/", "/b/", "/c/", "/b/", "/a/"} {
		require.NoError(t, s.RecordView(ctx, p))
	}
	top, err := s.TopViews(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []ViewCount{{Path: "/b/", Views: 3}, {Path: "/a/", Views: 2}}, top)

	require.NoError(t, s.Ping(ctx))
}
