package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pratikw008/blog-rest-api/domain"
	"github.com/pratikw008/blog-rest-api/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository will create an implementation of domain.PostRepository backed by gorm
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Fetch(ctx context.Context, pr domain.PageRequest) ([]domain.Post, error) {
	column, ok := domain.PostSortColumns[pr.SortBy]
	if !ok {
		return nil, domain.NewValidationError("sortBy", "unknown sort field '"+pr.SortBy+"'")
	}

	q := m.DB.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: pr.Desc()})
	if column != "id" {
		// stable order inside equal sort keys
		q = q.Order("id")
	}

	var posts []model.Post
	err := q.Limit(pr.PageSize).Offset(pr.Offset()).Find(&posts).Error
	if err != nil {
		return nil, translateError("fetch posts", err)
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (m *postRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.Post{}).Count(&n).Error
	return n, translateError("count posts", err)
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	err := m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return domain.Post{}, translateError("get post", err)
	}
	return post.ToDomain(), nil
}

// GetByIDNoCache is GetByID; nothing caches in front of this repository.
func (m *postRepository) GetByIDNoCache(ctx context.Context, id int64) (domain.Post, error) {
	return m.GetByID(ctx, id)
}

func (m *postRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, translateError("post exists", err)
	}
	return n > 0, nil
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	if err := m.DB.WithContext(ctx).Create(postModel).Error; err != nil {
		return translateError("store post", err)
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return nil
}

func (m *postRepository) Update(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).
		Model(postModel).
		Select("title", "description", "content", "updated_at").
		Updates(postModel)
	if result.Error != nil {
		return translateError("update post", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	p.UpdatedAt = postModel.UpdatedAt
	return nil
}

// Delete removes the comments of the post first, then the post, in one transaction.
// The schema cascades too; the explicit delete keeps the behavior when it does not.
func (m *postRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return translateError("delete post comments", err)
		}

		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return translateError("delete post", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return ids, translateError("fetch post ids", err)
}
