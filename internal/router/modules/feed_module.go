package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/snapfeed/snapfeed-api/internal/interface/http"
	"github.com/snapfeed/snapfeed-api/internal/interface/middleware"
	"github.com/snapfeed/snapfeed-api/pkg/helpers"
)

// FeedModule wires the post and comment routes.
// Protected: POST /posts, GET /posts, POST /posts/:post_id/comments
type FeedModule struct {
	Handler *handlers.FeedHandler
	JWT     *helpers.JWTManager
}

func NewFeedModule(h *handlers.FeedHandler, jwt *helpers.JWTManager) *FeedModule {
	return &FeedModule{Handler: h, JWT: jwt}
}

func (m *FeedModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.JWT))
	{
		auth.POST("/posts", m.Handler.CreatePost)
		auth.GET("/posts", m.Handler.ListPosts)
		auth.POST("/posts/:post_id/comments", m.Handler.AddComment)
	}
}
