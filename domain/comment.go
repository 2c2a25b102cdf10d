package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64
	PostID    int64 // owning post, set once on create
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentPatch is a partial update of a Comment. Nil or empty fields are left untouched.
type CommentPatch struct {
	Name  *string
	Email *string
	Body  *string
}

// Apply overwrites the fields of c that are present in the patch. PostID is never touched.
func (cp CommentPatch) Apply(c *Comment) {
	if present(cp.Name) {
		c.Name = *cp.Name
	}
	if present(cp.Email) {
		c.Email = *cp.Email
	}
	if present(cp.Body) {
		c.Body = *cp.Body
	}
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, postID int64, c *Comment) error
	FetchByPost(ctx context.Context, postID int64) ([]Comment, error)
	GetByID(ctx context.Context, postID, commentID int64) (Comment, error)
	Update(ctx context.Context, postID, commentID int64, patch CommentPatch) (Comment, error)
	Delete(ctx context.Context, postID, commentID int64) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	// GetByID returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)
	// ExistsByPostID reports whether any comment references the post.
	ExistsByPostID(ctx context.Context, postID int64) (bool, error)
	// FetchByPostID returns every comment of the post ordered by ID.
	FetchByPostID(ctx context.Context, postID int64) ([]Comment, error)
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
}
