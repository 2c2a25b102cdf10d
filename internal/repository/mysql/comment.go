package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/pratikw008/blog-rest-api/domain"
	"github.com/pratikw008/blog-rest-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	row := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(row).Error; err != nil {
		return translateError("store comment", err)
	}
	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt
	comment.UpdatedAt = row.UpdatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return domain.Comment{}, translateError("get comment", err)
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) ExistsByPostID(ctx context.Context, postID int64) (bool, error) {
	var n int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID).Limit(1).Count(&n).Error
	if err != nil {
		return false, translateError("comments exist", err)
	}
	return n > 0, nil
}

func (c *commentRepository) FetchByPostID(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, translateError("fetch comments", err)
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

// Update writes the mutable fields only; post_id is never rewritten.
func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	row := model.NewCommentFromDomain(comment)
	result := c.DB.WithContext(ctx).
		Model(row).
		Select("name", "email", "body", "updated_at").
		Updates(row)
	if result.Error != nil {
		return translateError("update comment", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	comment.UpdatedAt = row.UpdatedAt
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return translateError("delete comment", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
