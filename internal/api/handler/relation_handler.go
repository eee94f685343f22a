package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

// Follow subscribes the caller to an author's posts. Idempotent.
func (h *Handler) Follow(c *gin.Context) {
	if err := h.relSvc.Follow(c.Request.Context(), middleware.UserID(c), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow removes the edge; unfollowing someone never followed is NotFound.
func (h *Handler) Unfollow(c *gin.Context) {
	if err := h.relSvc.Unfollow(c.Request.Context(), middleware.UserID(c), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
