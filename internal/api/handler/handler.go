package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

type Handler struct {
	cfg        *config.Config
	feedSvc    service.FeedService
	postSvc    service.PostService
	commentSvc service.CommentService
	groupSvc   service.GroupService
	userSvc    service.UserService
	relSvc     service.RelationshipService
}

func New(
	cfg *config.Config,
	feedSvc service.FeedService,
	postSvc service.PostService,
	commentSvc service.CommentService,
	groupSvc service.GroupService,
	userSvc service.UserService,
	relSvc service.RelationshipService,
) *Handler {
	return &Handler{
		cfg:        cfg,
		feedSvc:    feedSvc,
		postSvc:    postSvc,
		commentSvc: commentSvc,
		groupSvc:   groupSvc,
		userSvc:    userSvc,
		relSvc:     relSvc,
	}
}

// respondError maps service sentinels onto the response envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNotFollowing):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrBadCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrFollowSelf):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
