package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/snapfeed/snapfeed-api/internal/application"
	"github.com/snapfeed/snapfeed-api/internal/interface/middleware"
	"github.com/snapfeed/snapfeed-api/pkg/response"
	"github.com/snapfeed/snapfeed-api/pkg/validation"
)

type FeedHandler struct {
	Svc    *application.FeedService
	Logger *logrus.Logger
}

func NewFeedHandler(svc *application.FeedService, logger *logrus.Logger) *FeedHandler {
	return &FeedHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Caption string `json:"caption" binding:"required"`
	Image   string `json:"image" binding:"required"`
}

type addCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type postPayload struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Caption string `json:"caption"`
	Image   string `json:"image"`
}

type commentPayload struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"post_id"`
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// CreatePost POST /posts (auth required)
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "caption and image are required", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.CreatePost(c.Request.Context(), middleware.UserID(c), req.Caption, req.Image)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, "unknown user", nil)
			return
		}
		h.Logger.WithError(err).Error("create post failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg": "post created successfully",
		"post": postPayload{
			ID:      p.ID,
			UserID:  p.UserID,
			Caption: p.Caption,
			Image:   p.Image,
		},
	})
}

// AddComment POST /posts/:post_id/comments (auth required)
func (h *FeedHandler) AddComment(c *gin.Context) {
	// A non-numeric post id can never reference a post.
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "post not found", nil)
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "text is required", validation.ToDetails(err))
		return
	}

	cm, err := h.Svc.AddComment(c.Request.Context(), middleware.UserID(c), postID, req.Text)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).Error("add comment failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg": "comment added successfully",
		"comment": commentPayload{
			ID:     cm.ID,
			PostID: cm.PostID,
			UserID: cm.UserID,
			Text:   cm.Text,
		},
	})
}

// ListPosts GET /posts (auth required)
func (h *FeedHandler) ListPosts(c *gin.Context) {
	feed, err := h.Svc.ListFeed(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, feed)
}
