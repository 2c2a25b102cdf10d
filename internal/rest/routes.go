package rest

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the post and comment endpoints under /api/posts.
// The post id wildcard is ":id" on every route so gin's tree accepts the nesting.
func RegisterRoutes(r gin.IRouter, posts *PostHandler, comments *CommentHandler) {
	api := r.Group("/api/posts")
	{
		api.POST("", posts.Store)
		api.GET("", posts.Fetch)
		api.GET("/:id", posts.GetByID)
		api.PUT("/:id", posts.Update)
		api.DELETE("/:id", posts.Delete)

		api.POST("/:id/comments", comments.CreateComment)
		api.GET("/:id/comments", comments.FetchCommentsByPost)
		api.GET("/:id/comments/:commentId", comments.GetComment)
		api.PUT("/:id/comments/:commentId", comments.UpdateComment)
		api.DELETE("/:id/comments/:commentId", comments.DeleteComment)
	}
}
