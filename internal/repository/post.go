package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/pratikw008/blog-rest-api/domain"
)

// postRepository 协调层，协调缓存和数据库
type postRepository struct {
	db         domain.PostRepository
	cache      domain.PostCache
	loadGroup  singleflight.Group
	mu         sync.Mutex
	rebuilding map[int64]bool // 正在重建的帖子ID

	// 写操作代数: bumped by every write, a load that raced a write never leaves its copy cached
	gens [genStripes]atomic.Uint64
}

const (
	rebuildTimeout = 5 * time.Second
	loadTimeout    = 5 * time.Second

	genStripes = 256
)

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository fronts the database repository with a read-through post cache.
func NewPostRepository(db domain.PostRepository, cache domain.PostCache) *postRepository {
	return &postRepository{
		db:         db,
		cache:      cache,
		rebuilding: make(map[int64]bool),
	}
}

func (r *postRepository) Fetch(ctx context.Context, pr domain.PageRequest) ([]domain.Post, error) {
	return r.db.Fetch(ctx, pr)
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Count(ctx)
}

// GetByID serves from cache. A logically expired entry is still returned while one background
// rebuild refreshes it; concurrent misses for the same id share one database load.
func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	// 1. 先从缓存获取
	post, expired, err := r.cache.GetPost(ctx, id)
	if err == nil {
		if expired {
			r.rebuildAsync(id)
		}
		return post, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("post cache get error: %v", err)
	}

	// 2. 缓存未命中，使用singleflight避免缓存击穿
	// the shared load must outlive the first caller, other callers wait on it too
	v, err, _ := r.loadGroup.Do(strconv.FormatInt(id, 10), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return r.load(loadCtx, id)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return v.(domain.Post), nil
}

func (r *postRepository) GetByIDNoCache(ctx context.Context, id int64) (domain.Post, error) {
	return r.db.GetByID(ctx, id)
}

// ExistsByID always asks the store. A cached copy can outlive the row by another instance's write.
func (r *postRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.db.ExistsByID(ctx, id)
}

func (r *postRepository) gen(id int64) *atomic.Uint64 {
	return &r.gens[uint64(id)%genStripes]
}

// load reads the post and caches it unless a write to the same id happened meanwhile.
func (r *postRepository) load(ctx context.Context, id int64) (domain.Post, error) {
	g := r.gen(id).Load()

	p, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if r.gen(id).Load() != g {
		return p, nil
	}
	if err := r.cache.SetPost(ctx, &p); err != nil {
		logrus.Warnf("failed to set post %d in cache: %v", id, err)
		return p, nil
	}
	// 写操作可能在 SetPost 途中完成了淘汰, 再删一次
	if r.gen(id).Load() != g {
		r.evict(ctx, id)
	}
	return p, nil
}

// rebuildAsync refreshes an expired entry at most once per id at a time.
func (r *postRepository) rebuildAsync(id int64) {
	r.mu.Lock()
	if r.rebuilding[id] {
		r.mu.Unlock()
		return
	}
	r.rebuilding[id] = true
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.rebuilding, id)
			r.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), rebuildTimeout)
		defer cancel()

		_, err := r.load(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			r.evict(ctx, id)
		} else if err != nil {
			logrus.Warnf("failed to rebuild cache for post %d: %v", id, err)
		}
	}()
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	return r.db.Store(ctx, p)
}

func (r *postRepository) Update(ctx context.Context, p *domain.Post) error {
	if err := r.db.Update(ctx, p); err != nil {
		return err
	}
	r.gen(p.ID).Add(1)
	r.evict(ctx, p.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	r.gen(id).Add(1)
	r.evict(ctx, id)
	return nil
}

func (r *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

func (r *postRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.DeletePost(ctx, id); err != nil {
		logrus.Warnf("failed to evict post %d from cache: %v", id, err)
	}
}
