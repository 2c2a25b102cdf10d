package post

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pratikw008/blog-rest-api/domain"
)

const postIDBatch = 1000

type Service struct {
	postRepo  domain.PostRepository
	bloomRepo domain.BloomRepository
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, b domain.BloomRepository) *Service {
	return &Service{
		postRepo:  p,
		bloomRepo: b,
	}
}

// Store persists a new post. Title uniqueness is left to the store.
func (s *Service) Store(ctx context.Context, p *domain.Post) error {
	p.ID = 0
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}
	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		logrus.Warnf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

// Fetch returns one page of posts. An empty store yields domain.EmptyPage without a page query.
func (s *Service) Fetch(ctx context.Context, pr domain.PageRequest) (domain.Page[domain.Post], error) {
	if err := pr.Validate(domain.PostSortColumns); err != nil {
		return domain.Page[domain.Post]{}, err
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	if total == 0 {
		return domain.EmptyPage[domain.Post](), nil
	}

	posts, err := s.postRepo.Fetch(ctx, pr)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}
	return domain.NewPage(posts, pr, total), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	res, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, notFound(err, id)
	}
	return res, nil
}

// Update merges patch onto the stored post. The id argument wins over anything in the body.
// The merge base is read past the cache so absent fields keep their stored values.
func (s *Service) Update(ctx context.Context, id int64, patch domain.PostPatch) (domain.Post, error) {
	existing, err := s.postRepo.GetByIDNoCache(ctx, id)
	if err != nil {
		return domain.Post{}, notFound(err, id)
	}

	patch.Apply(&existing)
	existing.ID = id
	existing.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, &existing); err != nil {
		return domain.Post{}, notFound(err, id)
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.postRepo.GetByIDNoCache(ctx, id); err != nil {
		return notFound(err, id)
	}
	return notFound(s.postRepo.Delete(ctx, id), id)
}

// InitBloomFilter loads every stored post ID into the bloom filter.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, postIDBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}

// notFound names the post in a bare ErrNotFound coming from the repository.
func notFound(err error, id int64) error {
	var nf *domain.NotFoundError
	if errors.Is(err, domain.ErrNotFound) && !errors.As(err, &nf) {
		return domain.NewNotFoundError("Post", "id", id)
	}
	return err
}
