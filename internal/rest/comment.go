package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pratikw008/blog-rest-api/domain"
	"github.com/pratikw008/blog-rest-api/internal/rest/request"
	"github.com/pratikw008/blog-rest-api/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request.Comment
	if !bindJSON(c, &req, request.CommentMessages) {
		return
	}

	comment := req.ToDomain()
	if err := h.Service.Create(c.Request.Context(), postID, &comment); err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", childLocation(c, comment.ID))
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) FetchCommentsByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.Service.FetchByPost(c.Request.Context(), postID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentsFromDomain(comments))
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	postID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	comment, err := h.Service.GetByID(c.Request.Context(), postID, commentID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	postID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	var req request.CommentPatch
	if !bindJSON(c, &req, request.CommentMessages) {
		return
	}

	comment, err := h.Service.Update(c.Request.Context(), postID, commentID, req.ToDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, commentID, ok := commentPath(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), postID, commentID); err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusOK, "Comment deleted successfully")
}

func commentPath(c *gin.Context) (postID, commentID int64, ok bool) {
	if postID, ok = pathID(c, "id"); !ok {
		return
	}
	commentID, ok = pathID(c, "commentId")
	return
}
