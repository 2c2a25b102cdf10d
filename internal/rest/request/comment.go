package request

import "github.com/pratikw008/blog-rest-api/domain"

// CommentMessages holds the violation messages for comment bodies, keyed by "field.tag".
var CommentMessages = map[string]string{
	"name.required":  "Name should not be empty or null",
	"name.min":       "Comment name must have 2 characters",
	"email.required": "Email should not be empty or null",
	"body.min":       "Comment body must have 10 characters",
}

type Comment struct {
	ID    int64  `json:"id"` // ignored on create
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Body  string `json:"body" binding:"required,min=10"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		Name:  r.Name,
		Email: r.Email,
		Body:  r.Body,
	}
}

type CommentPatch struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name" binding:"omitempty,min=2"`
	Email *string `json:"email" binding:"omitempty,email"`
	Body  *string `json:"body" binding:"omitempty,min=10"`
}

func (r *CommentPatch) ToDomain() domain.CommentPatch {
	return domain.CommentPatch{
		Name:  r.Name,
		Email: r.Email,
		Body:  r.Body,
	}
}
