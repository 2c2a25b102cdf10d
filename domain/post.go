package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct
type Post struct {
	ID          int64     // Store-assigned identifier
	Title       string    // Unique title
	Description string    // Short description
	Content     string    // Post body
	UpdatedAt   time.Time // Last update timestamp
	CreatedAt   time.Time // Creation timestamp
}

// PostPatch is a partial update of a Post. Nil or empty fields are left untouched.
type PostPatch struct {
	Title       *string
	Description *string
	Content     *string
}

// Apply overwrites the fields of p that are present in the patch.
func (pp PostPatch) Apply(p *Post) {
	for _, f := range []struct {
		src *string
		dst *string
	}{
		{pp.Title, &p.Title},
		{pp.Description, &p.Description},
		{pp.Content, &p.Content},
	} {
		if present(f.src) {
			*f.dst = *f.src
		}
	}
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// Fetch returns one page of posts ordered by pr.SortBy.
	Fetch(ctx context.Context, pr PageRequest) ([]Post, error)

	// Count returns the number of stored posts.
	Count(ctx context.Context) (int64, error)

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// GetByIDNoCache reads the post from the backing store even when a cache fronts it.
	// Reads that feed a write use it.
	GetByIDNoCache(ctx context.Context, id int64) (Post, error)

	// ExistsByID reports whether a post with the given ID is stored.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Store creates a new post and backfills its ID and timestamps.
	// Returns ErrConflict if the title is taken.
	Store(ctx context.Context, p *Post) error

	// Update writes every field of p.
	// Returns ErrNotFound if the post doesn't exist, ErrConflict if the title is taken.
	Update(ctx context.Context, p *Post) error

	// Delete removes a post together with its comments.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id int64) error

	// FetchIDs walks post IDs in ascending order starting after cursor.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// PostCache keeps single posts by ID with a logical expiry.
type PostCache interface {
	// GetPost returns ErrCacheMiss when the post is not cached. expired reports that the entry
	// is past its logical expiry and should be rebuilt.
	GetPost(ctx context.Context, id int64) (p Post, expired bool, err error)
	SetPost(ctx context.Context, p *Post) error
	DeletePost(ctx context.Context, id int64) error
}

// PostUsecase defines the business logic contract for posts.
type PostUsecase interface {
	// Store persists a new post. Returns ErrConflict on a duplicate title.
	Store(ctx context.Context, p *Post) error
	// Fetch returns the requested page. Returns a *ValidationError for bad paging or sort input.
	Fetch(ctx context.Context, pr PageRequest) (Page[Post], error)
	// GetByID returns a *NotFoundError when the post does not exist.
	GetByID(ctx context.Context, id int64) (Post, error)
	// Update merges patch onto the stored post identified by id.
	Update(ctx context.Context, id int64, patch PostPatch) (Post, error)
	// Delete removes the post and its comments.
	Delete(ctx context.Context, id int64) error
}
