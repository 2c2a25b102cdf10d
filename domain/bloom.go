package domain

import "context"

// BloomRepository is a probabilistic set of post IDs used to reject lookups of posts that were
// never created without touching the database.
type BloomRepository interface {
	// Add marks a post ID as present.
	Add(ctx context.Context, id int64) error

	// Exists 返回 false 表示绝对不存在; true means the post may exist and the store must be asked.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd marks many IDs at once, used to warm the filter on startup.
	BulkAdd(ctx context.Context, ids []int64) error
}
