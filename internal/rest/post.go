package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pratikw008/blog-rest-api/domain"
	"github.com/pratikw008/blog-rest-api/internal/rest/request"
	"github.com/pratikw008/blog-rest-api/internal/rest/response"
)

// PostHandler  represent the httphandler for post
type PostHandler struct {
	Service domain.PostUsecase
}

func NewPostHandler(svc domain.PostUsecase) *PostHandler {
	return &PostHandler{
		Service: svc,
	}
}

// Store will store the post by given request body
func (h *PostHandler) Store(c *gin.Context) {
	var req request.Post
	if !bindJSON(c, &req, request.PostMessages) {
		return
	}

	post := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &post); err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", childLocation(c, post.ID))
	c.JSON(http.StatusCreated, response.NewPostFromDomain(&post))
}

// Fetch will fetch one page of posts based on given query params
func (h *PostHandler) Fetch(c *gin.Context) {
	verr := &domain.ValidationError{}
	pr := domain.PageRequest{
		PageNo:   queryInt(c, "pageNo", domain.DefaultPageNo, verr),
		PageSize: queryInt(c, "pageSize", domain.DefaultPageSize, verr),
		SortBy:   c.DefaultQuery("sortBy", domain.DefaultSortBy),
		SortDir:  c.DefaultQuery("sortDir", domain.DefaultSortDir),
	}
	if err := verr.OrNil(); err != nil {
		_ = c.Error(err)
		return
	}

	page, err := h.Service.Fetch(c.Request.Context(), pr)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.NewPostPage(page))
}

// GetByID will get post by given id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Update will merge the non-empty fields of the body onto the post
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request.PostPatch
	if !bindJSON(c, &req, request.PostMessages) {
		return
	}

	post, err := h.Service.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromDomain(&post))
}

// Delete will delete the post and its comments
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusOK, "Post deleted successfully")
}

// childLocation is the URL of a resource created under the current request path.
func childLocation(c *gin.Context, id int64) string {
	return strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + strconv.FormatInt(id, 10)
}
