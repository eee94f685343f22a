package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/pkg/response"
)

type groupRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"required,max=20,slugfield"`
	Description string `json:"description" binding:"max=100"`
}

func (h *Handler) CreateGroup(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	group, err := h.groupSvc.Create(c.Request.Context(), req.Title, req.Slug, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"slug": group.Slug})
}

func (h *Handler) DeleteGroup(c *gin.Context) {
	if err := h.groupSvc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
