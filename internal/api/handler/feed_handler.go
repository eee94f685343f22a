package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

func pageParam(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return page
}

// Index serves the global feed through the page cache. The payload is the
// rendered bytes, so repeated hits inside the TTL are byte-identical.
func (h *Handler) Index(c *gin.Context) {
	payload, err := h.feedSvc.Index(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessRaw(c, payload)
}

// GroupPosts lists one group's posts.
func (h *Handler) GroupPosts(c *gin.Context) {
	view, err := h.feedSvc.ListByGroup(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view)
}

// Profile lists an author's posts with their post count and whether the
// viewer follows them.
func (h *Handler) Profile(c *gin.Context) {
	view, err := h.feedSvc.ListByAuthor(
		c.Request.Context(),
		c.Param("username"),
		middleware.UserID(c),
		pageParam(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view)
}

// Feed serves the personalized followed-authors feed. Auth required.
func (h *Handler) Feed(c *gin.Context) {
	view, err := h.feedSvc.ListFollowed(c.Request.Context(), middleware.UserID(c), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view)
}

// PostDetail shows one post with its comments.
func (h *Handler) PostDetail(c *gin.Context) {
	view, err := h.feedSvc.GetPostDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view)
}

// ClearCache drops all cached index pages.
func (h *Handler) ClearCache(c *gin.Context) {
	if err := h.feedSvc.ClearCache(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
