package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

type postRequest struct {
	Text  string `form:"text" binding:"required"`
	Group string `form:"group"`
}

// saveImage stores an optional multipart image under the media dir and
// returns its relative path, or "" when no image was attached.
func (h *Handler) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.cfg.Server.MediaDir, "posts", name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return filepath.Join("posts", name), nil
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	imagePath, err := h.saveImage(c)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	post, err := h.postSvc.Create(c.Request.Context(), middleware.UserID(c), req.Text, req.Group, imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"id": post.ID, "created_at": post.CreatedAt})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	imagePath, err := h.saveImage(c)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.postSvc.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Text, req.Group, imagePath); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.postSvc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.commentSvc.Add(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"id": comment.ID, "created_at": comment.CreatedAt})
}
