package comment

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pratikw008/blog-rest-api/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		bloomRepo:   bloomRepo,
	}
}

// inBloom asks the bloom filter about postID. The filter can lose bits (a failed Add, a flushed
// key), so a negative answer is only a hint: callers still ask the store and heal the filter.
func (s *service) inBloom(ctx context.Context, postID int64) bool {
	exists, err := s.bloomRepo.Exists(ctx, postID)
	if err != nil {
		logrus.Warnf("bloom filter check for post %d failed: %v", postID, err)
		return true
	}
	return exists
}

// heal re-adds a stored post the bloom filter reported as absent.
func (s *service) heal(ctx context.Context, postID int64) {
	logrus.Warnf("post %d exists but is missing from the bloom filter, re-adding", postID)
	if err := s.bloomRepo.Add(ctx, postID); err != nil {
		logrus.Warnf("failed to add post %d to bloom filter: %v", postID, err)
	}
}

func (s *service) mustExist(ctx context.Context, postID int64) error {
	hinted := s.inBloom(ctx, postID)
	ok, err := s.postRepo.ExistsByID(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFoundError("Post", "id", postID)
	}
	if !hinted {
		s.heal(ctx, postID)
	}
	return nil
}

// getOwned runs the ordered checks shared by get, update and delete:
// post exists, then comment exists, then comment belongs to post.
func (s *service) getOwned(ctx context.Context, postID, commentID int64) (domain.Comment, error) {
	if err := s.mustExist(ctx, postID); err != nil {
		return domain.Comment{}, err
	}

	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Comment{}, domain.NewNotFoundError("Comment", "id", commentID)
		}
		return domain.Comment{}, err
	}

	if c.PostID != postID {
		return domain.Comment{}, domain.ErrCommentNotInPost
	}
	return c, nil
}

// Create attaches c to the loaded post and persists it.
func (s *service) Create(ctx context.Context, postID int64, c *domain.Comment) error {
	hinted := s.inBloom(ctx, postID)
	post, err := s.postRepo.GetByIDNoCache(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Post", "id", postID)
		}
		return err
	}
	if !hinted {
		s.heal(ctx, postID)
	}

	c.ID = 0
	c.PostID = post.ID
	return s.commentRepo.Store(ctx, c)
}

func (s *service) FetchByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	// any comment referencing the post proves it exists
	has, err := s.commentRepo.ExistsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !has {
		if err := s.mustExist(ctx, postID); err != nil {
			return nil, err
		}
		return []domain.Comment{}, nil
	}

	return s.commentRepo.FetchByPostID(ctx, postID)
}

func (s *service) GetByID(ctx context.Context, postID, commentID int64) (domain.Comment, error) {
	return s.getOwned(ctx, postID, commentID)
}

func (s *service) Update(ctx context.Context, postID, commentID int64, patch domain.CommentPatch) (domain.Comment, error) {
	c, err := s.getOwned(ctx, postID, commentID)
	if err != nil {
		return domain.Comment{}, err
	}

	patch.Apply(&c)
	c.UpdatedAt = time.Now()
	if err := s.commentRepo.Update(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, postID, commentID int64) error {
	if _, err := s.getOwned(ctx, postID, commentID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}
