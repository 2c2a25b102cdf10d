package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloomOffsets(t *testing.T) {
	client, _ := redismock.NewClientMock()
	repo := NewRedisBloomRepo(client, 1024)

	offsets := repo.offsets(42)
	require.Len(t, offsets, defaultBloomHashes)
	for _, o := range offsets {
		assert.Less(t, o, uint64(1024))
	}
	assert.Equal(t, offsets, repo.offsets(42))
	assert.NotEqual(t, offsets, repo.offsets(43))
}

func TestBloomBulkAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisBloomRepo(client, 1<<20)

	for _, id := range []int64{1, 2} {
		for _, o := range repo.offsets(id) {
			mock.ExpectSetBit(KeyPostBloom, int64(o), 1).SetVal(0)
		}
	}

	require.NoError(t, repo.BulkAdd(context.TODO(), []int64{1, 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomBulkAddEmpty(t *testing.T) {
	client, mock := redismock.NewClientMock()
	require.NoError(t, NewRedisBloomRepo(client, 64).BulkAdd(context.TODO(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomExists(t *testing.T) {
	t.Run("all bits set", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewRedisBloomRepo(client, 1<<20)
		for _, o := range repo.offsets(7) {
			mock.ExpectGetBit(KeyPostBloom, int64(o)).SetVal(1)
		}

		ok, err := repo.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("one bit clear", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewRedisBloomRepo(client, 1<<20)
		offsets := repo.offsets(7)
		for i, o := range offsets {
			val := int64(1)
			if i == len(offsets)-1 {
				val = 0
			}
			mock.ExpectGetBit(KeyPostBloom, int64(o)).SetVal(val)
		}

		ok, err := repo.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := NewRedisBloomRepo(client, 1<<20)
		for _, o := range repo.offsets(7) {
			mock.ExpectGetBit(KeyPostBloom, int64(o)).SetErr(errors.New("connection refused"))
		}

		_, err := repo.Exists(context.TODO(), 7)
		assert.Error(t, err)
	})
}
