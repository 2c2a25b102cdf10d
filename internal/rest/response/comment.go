package response

import "github.com/pratikw008/blog-rest-api/domain"

type Comment struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Body  string `json:"body"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Body:  c.Body,
	}
}

func NewCommentsFromDomain(cs []domain.Comment) []Comment {
	res := make([]Comment, len(cs))
	for i := range cs {
		res[i] = NewCommentFromDomain(&cs[i])
	}
	return res
}
