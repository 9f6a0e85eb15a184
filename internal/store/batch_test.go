package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	*Memory
	calls      int
	chunkSizes []int
	failOnCall int
}

func (c *countingStore) QueryByIDs(ctx context.Context, collection string, ids []string) ([]Doc, error) {
	c.calls++
	c.chunkSizes = append(c.chunkSizes, len(ids))
	if c.failOnCall > 0 && c.calls == c.failOnCall {
		return nil, errors.New("backend unavailable")
	}
	return c.Memory.QueryByIDs(ctx, collection, ids)
}

func seedDocs(t *testing.T, m *Memory, collection string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := m.Create(context.Background(), collection, map[string]any{"n": i})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestResolveByIDs_ChunksAtLimit(t *testing.T) {
	cs := &countingStore{Memory: NewMemory()}
	ids := seedDocs(t, cs.Memory, "beans", 23)

	docs, err := ResolveByIDs(context.Background(), cs, "beans", ids)
	require.NoError(t, err)

	assert.Len(t, docs, 23)
	assert.Equal(t, 3, cs.calls)
	assert.Equal(t, []int{10, 10, 3}, cs.chunkSizes)
}

func TestResolveByIDs_ExactMultipleOfLimit(t *testing.T) {
	cs := &countingStore{Memory: NewMemory()}
	ids := seedDocs(t, cs.Memory, "beans", 20)

	docs, err := ResolveByIDs(context.Background(), cs, "beans", ids)
	require.NoError(t, err)

	assert.Len(t, docs, 20)
	assert.Equal(t, []int{10, 10}, cs.chunkSizes)
}

func TestResolveByIDs_EmptyInputMakesNoCalls(t *testing.T) {
	cs := &countingStore{Memory: NewMemory()}

	docs, err := ResolveByIDs(context.Background(), cs, "beans", nil)
	require.NoError(t, err)

	assert.Empty(t, docs)
	assert.Zero(t, cs.calls)
}

func TestResolveByIDs_MissingIDsAreOmitted(t *testing.T) {
	cs := &countingStore{Memory: NewMemory()}
	ids := seedDocs(t, cs.Memory, "beans", 4)
	ids = append(ids, "gone-1", "gone-2")

	docs, err := ResolveByIDs(context.Background(), cs, "beans", ids)
	require.NoError(t, err)

	assert.Len(t, docs, 4)
}

func TestResolveByIDs_ChunkErrorAbortsResolve(t *testing.T) {
	cs := &countingStore{Memory: NewMemory(), failOnCall: 2}
	ids := seedDocs(t, cs.Memory, "beans", 25)

	docs, err := ResolveByIDs(context.Background(), cs, "beans", ids)
	require.Error(t, err)

	assert.Nil(t, docs)
	assert.Equal(t, 2, cs.calls, "must stop after the failing chunk")
}

func TestResolveByIDs_SingleChunkBelowLimit(t *testing.T) {
	for _, n := range []int{1, 9, 10} {
		t.Run(fmt.Sprintf("%d ids", n), func(t *testing.T) {
			cs := &countingStore{Memory: NewMemory()}
			ids := seedDocs(t, cs.Memory, "beans", n)

			docs, err := ResolveByIDs(context.Background(), cs, "beans", ids)
			require.NoError(t, err)

			assert.Len(t, docs, n)
			assert.Equal(t, 1, cs.calls)
		})
	}
}
