package request

import "github.com/pratikw008/blog-rest-api/domain"

// PostMessages holds the violation messages for post bodies, keyed by "field.tag".
var PostMessages = map[string]string{
	"title.min":       "Post title should have atleast 2 characters",
	"description.min": "Post description should have atleast 10 characters",
}

// Post is the body of a create request. Any id sent by the client is ignored.
type Post struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" binding:"required,min=2"`
	Description string `json:"description" binding:"required,min=10"`
	Content     string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Post) ToDomain() domain.Post {
	return domain.Post{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
	}
}

// PostPatch is the body of an update request; absent fields keep their stored value.
type PostPatch struct {
	ID          *int64  `json:"id"` // the path id is authoritative
	Title       *string `json:"title" binding:"omitempty,min=2"`
	Description *string `json:"description" binding:"omitempty,min=10"`
	Content     *string `json:"content"`
}

func (r *PostPatch) ToDomain() domain.PostPatch {
	return domain.PostPatch{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
	}
}
