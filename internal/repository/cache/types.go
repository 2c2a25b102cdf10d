package cache

import "time"

// Entry 支持逻辑过期的数据结构
// The physical key TTL is longer than ExpireAt, so a logically expired entry can still be
// served while one caller rebuilds it.
type Entry[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`  // 逻辑过期时间
	CreatedAt time.Time `json:"created_at"` // 创建时间，用于调试
}

// IsLogicalExpired 检查是否逻辑过期
func (e *Entry[T]) IsLogicalExpired() bool {
	return time.Now().After(e.ExpireAt)
}

// NewEntry 创建带逻辑过期的数据
func NewEntry[T any](data T, ttl time.Duration) *Entry[T] {
	now := time.Now()
	return &Entry[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
