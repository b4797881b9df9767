package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/dto"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/service"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Root GET /api/
func (h *PostHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "SocialRipple API"})
}

// ListPosts GET /api/posts?category=
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context(), c.Query("category"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
